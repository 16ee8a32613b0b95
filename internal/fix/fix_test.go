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

package fix_test

import (
	"errors"
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/spanguard/internal/fix"
	"fillmore-labs.com/spanguard/internal/pass"
)

const src = "0123456789"

func newFile(t *testing.T) *token.File {
	t.Helper()

	file := token.NewFileSet().AddFile("a.cs", -1, len(src))
	file.SetLinesForContent([]byte(src))

	return file
}

func edit(file *token.File, pos, end int, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: file.Pos(pos), End: file.Pos(end), NewText: []byte(text)}
}

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	file := newFile(t)

	tests := []struct {
		name  string
		edits []analysis.TextEdit
		want  string
		err   error
	}{
		{"None", nil, src, nil},
		{"Replace", []analysis.TextEdit{edit(file, 2, 4, "ab")}, "01ab456789", nil},
		{"Unordered", []analysis.TextEdit{edit(file, 8, 9, "x"), edit(file, 0, 1, "y")}, "y1234567x9", nil},
		{"Insert", []analysis.TextEdit{{Pos: file.Pos(3), NewText: []byte("-")}}, "012-3456789", nil},
		{"Delete at end", []analysis.TextEdit{edit(file, 8, 10, "")}, "01234567", nil},
		{"Duplicate", []analysis.TextEdit{edit(file, 2, 4, "ab"), edit(file, 2, 4, "ab")}, "01ab456789", nil},
		{"Overlap", []analysis.TextEdit{edit(file, 2, 5, "a"), edit(file, 4, 6, "b")}, "", ErrOverlap},
		{"Adjacent", []analysis.TextEdit{edit(file, 2, 4, "a"), edit(file, 4, 6, "b")}, "01ab6789", nil},
		{"Out of range", []analysis.TextEdit{{Pos: file.Pos(2), End: file.Pos(2) + 20}}, "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ApplyEdits(file, []byte(src), tt.edits)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if err == nil && string(got) != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func diagnostic(file *token.File, pos, end int, text string) pass.Diagnostic {
	e := edit(file, pos, end, text)

	return pass.Diagnostic{Diagnostic: analysis.Diagnostic{
		Pos:            e.Pos,
		SuggestedFixes: []analysis.SuggestedFix{{Message: text, TextEdits: []analysis.TextEdit{e}}},
	}}
}

func TestApply(t *testing.T) {
	t.Parallel()

	file := newFile(t)

	diags := []pass.Diagnostic{
		diagnostic(file, 6, 8, "c"),
		{Diagnostic: analysis.Diagnostic{Pos: file.Pos(0)}}, // no fix
		diagnostic(file, 1, 3, "a"),
		diagnostic(file, 2, 4, "b"),
	}

	tests := []struct {
		name    string
		mode    ApplyMode
		want    string
		applied int
		skipped int
	}{
		{"All", ApplyModeAll, "0a345c89", 2, 1},
		{"Once", ApplyModeOnce, "0a3456789", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Apply(file, []byte(src), diags, tt.mode)
			if err != nil {
				t.Fatalf("Apply() failed: %v", err)
			}

			if string(res.Src) != tt.want || res.Applied != tt.applied || len(res.Skipped) != tt.skipped {
				t.Errorf("Got %q, %d applied, %d skipped, want %q, %d, %d",
					res.Src, res.Applied, len(res.Skipped), tt.want, tt.applied, tt.skipped)
			}
		})
	}
}

func TestApplyNoFixes(t *testing.T) {
	t.Parallel()

	file := newFile(t)

	res, err := Apply(file, []byte(src), []pass.Diagnostic{{}}, ApplyModeAll)
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("Got error %v, want %v", err, ErrNoFixes)
	}

	if string(res.Src) != src {
		t.Errorf("Got %q, want unchanged source", res.Src)
	}
}
