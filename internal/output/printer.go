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

// Package output prints analysis and fix results as text or JSON.
package output

import (
	"fmt"
	"go/token"
	"io"
	"strconv"

	"github.com/fatih/color"

	"fillmore-labs.com/spanguard/internal/driver"
	"fillmore-labs.com/spanguard/internal/pass"
)

// Printer writes results to an [io.Writer].
type Printer struct {
	w      io.Writer
	format Format

	path    *color.Color
	info    *color.Color
	warning *color.Color
	failure *color.Color
	detail  *color.Color
	success *color.Color
}

// NewPrinter creates a [Printer]. Colors apply to the text format only.
func NewPrinter(w io.Writer, format Format, colorize bool) *Printer {
	return &Printer{
		w:       w,
		format:  format,
		path:    newColor(colorize, color.Bold),
		info:    newColor(colorize, color.FgCyan),
		warning: newColor(colorize, color.FgYellow, color.Bold),
		failure: newColor(colorize, color.FgRed, color.Bold),
		detail:  newColor(colorize, color.Faint),
		success: newColor(colorize, color.FgGreen),
	}
}

func newColor(colorize bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

// Check prints the diagnostics and errors of a check run.
func (p *Printer) Check(fset *token.FileSet, results []driver.FileResult) error {
	if p.format == FormatJSON {
		return p.checkJSON(fset, results)
	}

	ew := errWriter{w: p.w}

	for _, r := range results {
		if r.Err != nil {
			ew.printf("%s: %v\n", p.failure.Sprint("error"), r.Err)

			continue
		}

		for _, d := range r.Report.Diagnostics {
			p.diagnostic(&ew, fset, d)
		}
	}

	s := driver.Summarize(results)
	ew.printf("%s in %s", plural(s.Diagnostics, "diagnostic"), plural(s.Files, "file"))

	if s.Generated > 0 {
		ew.printf(", %s skipped", plural(s.Generated, "generated file"))
	}

	ew.printf(".\n")

	return ew.err
}

func (p *Printer) diagnostic(ew *errWriter, fset *token.FileSet, d pass.Diagnostic) {
	ew.printf("%s: %s: %s %s\n",
		p.path.Sprint(position(fset, d.Pos)),
		p.severity(d.Severity),
		d.Message,
		p.detail.Sprint("["+d.ID+"]"))

	for _, f := range d.SuggestedFixes {
		ew.printf("\tfix: %s\n", f.Message)
	}
}

func (p *Printer) severity(s pass.Severity) string {
	switch s {
	case pass.SeverityError:
		return p.failure.Sprint(s)

	case pass.SeverityWarning:
		return p.warning.Sprint(s)

	default:
		return p.info.Sprint(s)
	}
}

// Fix prints the outcome of a fix run. Without write the fixes were computed but not saved.
func (p *Printer) Fix(fset *token.FileSet, results []driver.FileResult, write bool) error {
	if p.format == FormatJSON {
		return p.fixJSON(fset, results, write)
	}

	ew := errWriter{w: p.w}

	verb := "applied"
	if !write {
		verb = "would apply"
	}

	changed := 0

	for _, r := range results {
		if r.Err != nil {
			ew.printf("%s: %v\n", p.failure.Sprint("error"), r.Err)
		}

		if r.Fix == nil {
			continue
		}

		if r.Fix.Applied > 0 {
			changed++
			ew.printf("%s: %s %s\n", p.path.Sprint(r.Path), p.success.Sprint(verb), plural(r.Fix.Applied, "fix"))
		}

		for _, s := range r.Fix.Skipped {
			ew.printf("%s: %s %q: %s\n", p.path.Sprint(position(fset, s.Pos)), p.warning.Sprint("skipped"), s.Title, s.Reason)
		}
	}

	s := driver.Summarize(results)
	if s.Fixes == 0 {
		ew.printf("No applicable fixes found.\n")

		return ew.err
	}

	ew.printf("%s %s in %s.\n", capitalize(verb), plural(s.Fixes, "fix"), plural(changed, "file"))

	return ew.err
}

func position(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)
	if !p.IsValid() {
		return "-"
	}

	return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

func plural(n int, noun string) string {
	switch {
	case n == 1:
		return "1 " + noun

	case noun[len(noun)-1] == 'x':
		return strconv.Itoa(n) + " " + noun + "es"

	default:
		return strconv.Itoa(n) + " " + noun + "s"
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}

	return string(s[0]-'a'+'A') + s[1:]
}

// errWriter remembers the first write error and skips writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}

	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
