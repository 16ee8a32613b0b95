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

package driver_test

import (
	"bytes"
	"context"
	"errors"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/spanguard/analyzer"
	. "fillmore-labs.com/spanguard/internal/driver"
	"fillmore-labs.com/spanguard/internal/fix"
)

const (
	tables = `class Tables
{
    static readonly byte[] A = { 1 };
    static readonly byte[] B = { 2 };
}
`
	fixed = `class Tables
{
    static ReadOnlySpan<byte> A => new byte[] { 1 };
    static ReadOnlySpan<byte> B => new byte[] { 2 };
}
`
	clean = `class Clean
{
    static readonly int[] A = { 1 };
}
`
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Can't create directory: %v", err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return root
}

func relative(t *testing.T, root string, files []string) []string {
	t.Helper()

	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("Can't relativize %s: %v", f, err)
		}

		rel[i] = filepath.ToSlash(r)
	}

	return rel
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"Program.cs":                  clean,
		"Lib/Tables.cs":               tables,
		"Lib/Upper.CS":                clean,
		"Lib/readme.md":               "",
		"Lib/bin/Debug/Gen.cs":        tables,
		"Lib/obj/Gen.cs":              tables,
		"Migrations/0001_Initial.cs":  tables,
		"Tests/Migrations/Helpers.cs": clean,
	})

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name: "All",
			want: []string{"Lib/Tables.cs", "Lib/Upper.CS", "Migrations/0001_Initial.cs", "Program.cs", "Tests/Migrations/Helpers.cs"},
		},
		{
			name:    "Exclude",
			exclude: []string{"**/Migrations/**"},
			want:    []string{"Lib/Tables.cs", "Lib/Upper.CS", "Program.cs"},
		},
		{
			name:    "ExcludeTopLevel",
			exclude: []string{"Migrations", "Lib/*.CS"},
			want:    []string{"Lib/Tables.cs", "Program.cs", "Tests/Migrations/Helpers.cs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := Discover([]string{root}, tt.exclude)
			if err != nil {
				t.Fatalf("Discover failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, relative(t, root, files)); diff != "" {
				t.Errorf("Discover mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscoverExplicit(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"Lib/Tables.cs":  tables,
		"Lib/script.csx": tables,
	})

	explicit := filepath.Join(root, "Lib", "script.csx")

	files, err := Discover([]string{explicit, filepath.Join(root, "Lib"), explicit}, []string{"**/*.csx"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Lib/Tables.cs", "Lib/script.csx"}, relative(t, root, files)); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverErrors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	if _, err := Discover([]string{root}, []string{"[a-"}); !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("Got error %v, want %v", err, doublestar.ErrBadPattern)
	}

	if _, err := Discover([]string{filepath.Join(root, "missing")}, nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v, want %v", err, os.ErrNotExist)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"Tables.cs":             tables,
		"Clean.cs":              clean,
		"Resources.Designer.cs": tables,
	})

	files, err := Discover([]string{root}, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	files = append(files, filepath.Join(root, "Missing.cs"))

	d := New(analyzer.New(), 2)

	results, err := d.Check(t.Context(), token.NewFileSet(), files)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(results) != len(files) {
		t.Fatalf("Got %d results, want %d", len(results), len(files))
	}

	for i, r := range results {
		if r.Path != files[i] {
			t.Errorf("Got result %d for %s, want %s", i, r.Path, files[i])
		}
	}

	want := Summary{Files: 3, Generated: 1, Diagnostics: 2, Errors: 1}
	if diff := cmp.Diff(want, Summarize(results)); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}

	if err := results[len(results)-1].Err; !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v for missing file, want %v", err, os.ErrNotExist)
	}

	var buf bytes.Buffer
	d.Metrics().WritePrometheus(&buf)

	for _, line := range []string{
		"spanguard_files_total 3",
		"spanguard_generated_files_total 1",
		"spanguard_declarations_total 5",
		"spanguard_diagnostics_total 2",
		"spanguard_errors_total 1",
	} {
		if !strings.Contains(buf.String(), line+"\n") {
			t.Errorf("Metrics missing %q in:\n%s", line, buf.String())
		}
	}
}

func TestFix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mode  fix.ApplyMode
		write bool
		want  string
		fixes int
	}{
		{
			name:  "Write",
			mode:  fix.ApplyModeAll,
			write: true,
			want:  fixed,
			fixes: 2,
		},
		{
			name:  "DryRun",
			mode:  fix.ApplyModeAll,
			want:  tables,
			fixes: 2,
		},
		{
			name:  "Once",
			mode:  fix.ApplyModeOnce,
			write: true,
			want:  strings.Replace(tables, "static readonly byte[] A = { 1 };", "static ReadOnlySpan<byte> A => new byte[] { 1 };", 1),
			fixes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writeTree(t, map[string]string{"Tables.cs": tables, "Clean.cs": clean})

			files, err := Discover([]string{root}, nil)
			if err != nil {
				t.Fatalf("Discover failed: %v", err)
			}

			results, err := New(analyzer.New(), 0).Fix(t.Context(), token.NewFileSet(), files, tt.mode, tt.write)
			if err != nil {
				t.Fatalf("Fix failed: %v", err)
			}

			if got := Summarize(results).Fixes; got != tt.fixes {
				t.Errorf("Got %d fixes, want %d", got, tt.fixes)
			}

			content, err := os.ReadFile(filepath.Join(root, "Tables.cs"))
			if err != nil {
				t.Fatalf("Can't read fixed file: %v", err)
			}

			if diff := cmp.Diff(tt.want, string(content)); diff != "" {
				t.Errorf("File content mismatch (-want +got):\n%s", diff)
			}

			for _, r := range results {
				if filepath.Base(r.Path) == "Clean.cs" && r.Fix != nil {
					t.Errorf("Got fix result for clean file: %+v", r.Fix)
				}
			}
		})
	}
}

func TestCheckCanceled(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"Tables.cs": tables})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := New(analyzer.New(), 1).Check(ctx, token.NewFileSet(), []string{filepath.Join(root, "Tables.cs")}); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}
