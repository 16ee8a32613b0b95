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

package astutil_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/spanguard/internal/astutil"
	"fillmore-labs.com/spanguard/internal/syntax"
)

func newCurrentFile(t *testing.T, name, src string) (CurrentFile, *syntax.File) {
	t.Helper()

	handle := token.NewFileSet().AddFile(name, -1, len(src))
	handle.SetLinesForContent([]byte(src))

	file := syntax.Parse([]byte(src))

	return NewCurrentFile(handle, file, "SG0001"), file
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, filename, src string
		want                bool
	}{
		{"Plain", "a.cs", "class C { }", false},
		{"Designer", "Form1.Designer.cs", "class C { }", true},
		{"G", "a.g.cs", "class C { }", true},
		{"GI", "a.g.i.cs", "class C { }", true},
		{"Generated", "dir/A.generated.cs", "class C { }", true},
		{"Temporary", "TemporaryGeneratedFile_1234.cs", "class C { }", true},
		{"Header", "a.cs", "// <auto-generated>\n// </auto-generated>\nclass C { }", true},
		{"Old header", "a.cs", "/* <autogenerated /> */\nclass C { }", true},
		{"Marker later", "a.cs", "class C { }\n// <auto-generated>\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newCurrentFile(t, tt.filename, tt.src)

			if !c.Valid() {
				t.Fatal("Invalid CurrentFile")
			}

			if got := c.Generated(); got != tt.want {
				t.Errorf("Got Generated() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	src := `class C {
    static readonly byte[] a = { 1 }; //nolint:spanguard
    static readonly byte[] b = { 1 }; // nolint:other,all
    static readonly byte[] c = { 1 }; // nolint:other
    static readonly byte[] d = { 1 };
    // nolint:spanguard
}
`

	c, f := newCurrentFile(t, "a.cs", src)

	want := []bool{true, true, false, false}
	for i, d := range f.Fields {
		if got := c.NoLintComment(d.End()); got != want[i] {
			t.Errorf("Got NoLintComment(%s) = %t, want %t", d.Variables[0].Name.Text, got, want[i])
		}
	}
}

func TestSuppressed(t *testing.T) {
	t.Parallel()

	src := `class C {
    static readonly byte[] a = { 1 };
#pragma warning disable SG0001 // reason
    static readonly byte[] b = { 1 };
#pragma warning restore SG0001
    static readonly byte[] c = { 1 };
#pragma warning disable CS0168, SG9999
    static readonly byte[] d = { 1 };
#pragma warning restore
#pragma warning disable
    static readonly byte[] e = { 1 };
}
`

	c, f := newCurrentFile(t, "a.cs", src)

	want := map[string]bool{"a": false, "b": true, "c": false, "d": false, "e": true}
	for _, d := range f.Fields {
		name := d.Variables[0].Name.Text
		if got := c.Suppressed(d.Pos()); got != want[name] {
			t.Errorf("Got Suppressed(%s) = %t, want %t", name, got, want[name])
		}
	}

	if len(f.Fields) != len(want) {
		t.Errorf("Got %d fields, want %d", len(f.Fields), len(want))
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	src := "class C {\n    static readonly byte[] a = {\n        1,\n    };\n}\n"

	c, f := newCurrentFile(t, "a.cs", src)

	if got, want := c.Lines(f.Fields[0]), 3; got != want {
		t.Errorf("Got Lines() = %d, want %d", got, want)
	}
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	for comment, want := range map[string]bool{
		"//nolint:spanguard":        true,
		"// nolint:SpanGuard":       true,
		"//nolint:a, spanguard":     false,
		"//nolint:a,spanguard":      true,
		"/* nolint:spanguard */":    false,
		"// see nolint:spanguard":   false,
		"//nolint:all // some text": true,
	} {
		if got := CommentHasNoLint(comment); got != want {
			t.Errorf("Got CommentHasNoLint(%q) = %t, want %t", comment, got, want)
		}
	}
}
