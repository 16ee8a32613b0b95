// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package driver runs the analyzer over source trees.
package driver

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/spanguard/analyzer"
	"fillmore-labs.com/spanguard/internal/fix"
)

// Driver checks and fixes C# source files in parallel.
type Driver struct {
	analyzer *analyzer.Analyzer
	metrics  *Metrics
	jobs     int
}

// New creates a [Driver] running a with at most jobs files in parallel.
// A non-positive jobs value uses GOMAXPROCS.
func New(a *analyzer.Analyzer, jobs int) *Driver {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	return &Driver{analyzer: a, metrics: NewMetrics(), jobs: jobs}
}

// Metrics returns the counters of this driver.
func (d *Driver) Metrics() *Metrics { return d.metrics }

// FileResult is the outcome for one source file.
type FileResult struct {
	Path string

	// Report is nil when the file could not be read or checked.
	Report *analyzer.Report

	// Fix is set after fixing, it is nil when no fix applied.
	Fix *fix.Result

	Err error
}

// Check analyzes files, registering them in fset. Results are in the order of files.
// Unreadable files are reported in their result, only cancellation fails the run.
func (d *Driver) Check(ctx context.Context, fset *token.FileSet, files []string) ([]FileResult, error) {
	return d.run(ctx, fset, files, nil)
}

// Fix analyzes files and applies the suggested fixes. With write set, changed files are
// rewritten in place.
func (d *Driver) Fix(ctx context.Context, fset *token.FileSet, files []string, mode fix.ApplyMode, write bool) ([]FileResult, error) {
	return d.run(ctx, fset, files, func(r *FileResult) {
		res, err := fix.Apply(r.Report.File, r.Report.Src, r.Report.Diagnostics, mode)
		switch {
		case errors.Is(err, fix.ErrNoFixes):
			if len(res.Skipped) > 0 {
				r.Fix = res
			}

			return

		case err != nil:
			r.Err = fmt.Errorf("%s: %w", r.Path, err)
			d.metrics.errors.Inc()

			return
		}

		r.Fix = res
		d.metrics.fixes.Add(res.Applied)

		if !write {
			return
		}

		if err := writeFile(r.Path, res.Src); err != nil {
			r.Err = err
			d.metrics.errors.Inc()
		}
	})
}

func (d *Driver) run(ctx context.Context, fset *token.FileSet, files []string, post func(*FileResult)) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(d.jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r := &results[i] // each goroutine owns one slot
			r.Path = path

			d.check(gctx, fset, r)

			if r.Err == nil && post != nil {
				post(r)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *Driver) check(ctx context.Context, fset *token.FileSet, r *FileResult) {
	defer d.metrics.duration.UpdateDuration(time.Now())

	src, err := os.ReadFile(r.Path)
	if err != nil {
		r.Err = err
		d.metrics.errors.Inc()

		return
	}

	report, err := d.analyzer.Check(ctx, fset, r.Path, src)
	if err != nil {
		r.Err = fmt.Errorf("%s: %w", r.Path, err)
		d.metrics.errors.Inc()

		return
	}

	r.Report = report

	d.metrics.files.Inc()
	d.metrics.declarations.Add(report.Declarations)
	d.metrics.diagnostics.Add(len(report.Diagnostics))

	if report.Generated {
		d.metrics.generated.Inc()
		slog.DebugContext(ctx, "Skipped generated file", slog.String("file", r.Path))

		return
	}

	slog.DebugContext(ctx, "Checked file",
		slog.String("file", r.Path),
		slog.Int("declarations", report.Declarations),
		slog.Int("diagnostics", len(report.Diagnostics)))
}

func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, info.Mode().Perm())
}

// Summary totals a run.
type Summary struct {
	Files       int
	Generated   int
	Diagnostics int
	Fixes       int
	Errors      int
}

// Summarize totals results.
func Summarize(results []FileResult) Summary {
	var s Summary

	for _, r := range results {
		if r.Err != nil {
			s.Errors++
		}

		if r.Report == nil {
			continue
		}

		s.Files++
		s.Diagnostics += len(r.Report.Diagnostics)

		if r.Report.Generated {
			s.Generated++
		}

		if r.Fix != nil {
			s.Fixes += r.Fix.Applied
		}
	}

	return s
}
