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

package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/spanguard/internal/astutil"
	"fillmore-labs.com/spanguard/internal/config"
	"fillmore-labs.com/spanguard/internal/match"
	"fillmore-labs.com/spanguard/internal/pass"
	"fillmore-labs.com/spanguard/internal/report"
	"fillmore-labs.com/spanguard/internal/syntax"
	"fillmore-labs.com/spanguard/internal/types"
)

// ErrFileMissing is returned when a pass carries no valid file.
var ErrFileMissing = errors.New("file information missing")

// Result summarizes the analysis of one file.
type Result struct {
	// Declarations is the number of field declarations inspected.
	Declarations int

	// Reported is the number of diagnostics reported.
	Reported int

	// Generated is true when the file was skipped as generated code.
	Generated bool
}

// Run executes the spanguard analyzer's pipeline on one file.
func (r *Options) Run(ctx context.Context, p *pass.Pass) (*Result, error) {
	if p == nil || p.File == nil || p.Syntax == nil {
		return nil, fmt.Errorf("spanguard: %w", ErrFileMissing)
	}

	ctx, task := trace.NewTask(ctx, "SpanGuard")
	defer task.End()

	trace.Log(ctx, "file", p.File.Name())

	currentFile := astutil.NewCurrentFile(p.File, p.Syntax, report.ID)
	if !currentFile.Valid() {
		return nil, fmt.Errorf("spanguard: %s %w", p.File.Name(), ErrFileMissing)
	}

	result := &Result{Declarations: len(p.Syntax.Fields)}

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		result.Generated = true

		return result, nil
	}

	// Stage 1: Match every field declaration once
	matches, err := r.matchFields(ctx, p, currentFile)
	if err != nil {
		return nil, err
	}

	// Stage 2: Generate diagnostics with suggested fixes
	result.Reported = report.ProcessDiagnostics(ctx, p, matches, r.MultiVariable)

	return result, nil
}

func (r *Options) matchFields(ctx context.Context, p *pass.Pass, currentFile astutil.CurrentFile) ([]match.Result, error) {
	defer trace.StartRegion(ctx, "Match").End()

	matcher := r.Matcher()

	// Using directives are shared by all declarations of a namespace
	scopes := make(map[string]*types.Scope)

	var matches []match.Result

	for _, decl := range p.Syntax.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		scope, ok := scopes[decl.Namespace]
		if !ok {
			scope = types.NewScope(p.Syntax, decl.Namespace)
			scopes[decl.Namespace] = scope
		}

		m := matcher.Match(decl, scope)
		if !m.Eligible {
			slog.DebugContext(ctx, "Skipping field",
				slog.String("field", fieldName(decl)),
				slog.String("reason", m.Reason.String()))

			continue
		}

		// Skip suppressed declarations
		if currentFile.Suppressed(decl.Pos()) || currentFile.NoLintComment(decl.End()) {
			slog.DebugContext(ctx, "Suppressed field",
				slog.String("field", fieldName(decl)),
				slog.Int("lines", currentFile.Lines(decl)))

			continue
		}

		matches = append(matches, m)
	}

	return matches, nil
}

// fieldName returns the qualified name of the first variable, for logging.
func fieldName(decl *syntax.FieldDecl) string {
	parts := make([]string, 0, len(decl.Container)+2)
	if decl.Namespace != "" {
		parts = append(parts, decl.Namespace)
	}

	parts = append(parts, decl.Container...)

	if len(decl.Variables) > 0 {
		parts = append(parts, decl.Variables[0].Name.Name())
	}

	return strings.Join(parts, ".")
}
