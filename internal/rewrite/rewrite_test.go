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

package rewrite_test

import (
	"errors"
	"strings"
	"testing"

	"fillmore-labs.com/spanguard/internal/match"
	. "fillmore-labs.com/spanguard/internal/rewrite"
	"fillmore-labs.com/spanguard/internal/syntax"
)

func parseField(t *testing.T, src string) *syntax.FieldDecl {
	t.Helper()

	f := syntax.Parse([]byte(src))
	if len(f.Fields) != 1 {
		t.Fatalf("Got %d fields, want 1", len(f.Fields))
	}

	return f.Fields[0]
}

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl string
		want string
	}{
		{
			name: "Byte",
			decl: "static readonly byte[] test = new byte[1] { 1 };",
			want: "static ReadOnlySpan<byte> test => new byte[1] { 1 };",
		},
		{
			name: "SByte",
			decl: "static readonly sbyte[] test = new sbyte[1] { 1 };",
			want: "static ReadOnlySpan<sbyte> test => new sbyte[1] { 1 };",
		},
		{
			name: "Modifiers",
			decl: "private readonly static byte[] test = new byte[] { 1 };",
			want: "private static ReadOnlySpan<byte> test => new byte[] { 1 };",
		},
		{
			name: "Qualified element",
			decl: "static readonly global::System.Byte[] test = Load();",
			want: "static ReadOnlySpan<global::System.Byte> test => Load();",
		},
		{
			name: "Attributes",
			decl: "[Obsolete] [A(1)]\n    static readonly byte[] test = new byte[] { 1 };",
			want: "[Obsolete] [A(1)]\n    static ReadOnlySpan<byte> test => new byte[] { 1 };",
		},
		{
			name: "Array initializer",
			decl: "static readonly byte[] test = { 1, 2 };",
			want: "static ReadOnlySpan<byte> test => new byte[] { 1, 2 };",
		},
		{
			name: "First variable",
			decl: "static readonly byte[] a = new byte[] { 1 }, b = new byte[] { 2 };",
			want: "static ReadOnlySpan<byte> a => new byte[] { 1 };",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := "class C\n{\n    " + tt.decl + " // keep\n}\n"
			decl := parseField(t, src)

			p, err := Transform(decl)
			if err != nil {
				t.Fatalf("Transform() failed: %v", err)
			}

			want := "    " + tt.want + " // keep\n"
			if got := syntax.String(p); got != want {
				t.Errorf("Got %q, want %q", got, want)
			}

			if got, want := src[decl.FullPos():decl.FullEnd()], "    "+tt.decl+" // keep\n"; got != want {
				t.Errorf("Got replaced span %q, want %q", got, want)
			}
		})
	}
}

func TestTransformNotEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		decl   string
		reason match.Reason
	}{
		{"Not static", "readonly byte[] test = { 1 };", match.NotStatic},
		{"Not readonly", "static byte[] test = { 1 };", match.NotReadOnly},
		{"Not array", "static readonly byte test = 1;", match.NotArray},
		{"Sized", "static readonly byte[4] test;", match.Sized},
		{"Jagged", "static readonly byte[][] test = { };", match.Rank},
		{"No initializer", "static readonly byte[] test;", match.NoInitializer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Transform(parseField(t, "class C { "+tt.decl+" }"))
			if !errors.Is(err, ErrNotEligible) {
				t.Fatalf("Got error %v, want %v", err, ErrNotEligible)
			}

			if !strings.HasSuffix(err.Error(), tt.reason.String()) {
				t.Errorf("Got error %q, want reason %q", err, tt.reason)
			}
		})
	}

	if _, err := Transform(nil); !errors.Is(err, ErrNotEligible) {
		t.Errorf("Got error %v for nil declaration, want %v", err, ErrNotEligible)
	}
}

func TestTransformEach(t *testing.T) {
	t.Parallel()

	src := "class C\n{\n    [A] static readonly byte[] a = { 1 }, b = new byte[] { 2 };\n}\n"
	decl := parseField(t, src)

	props, err := TransformEach(decl)
	if err != nil {
		t.Fatalf("TransformEach() failed: %v", err)
	}

	var b strings.Builder
	for _, p := range props {
		if err := syntax.Fprint(&b, p); err != nil {
			t.Fatalf("Fprint() failed: %v", err)
		}
	}

	want := "    [A] static ReadOnlySpan<byte> a => new byte[] { 1 };\n" +
		"    [A] static ReadOnlySpan<byte> b => new byte[] { 2 };\n"
	if got := b.String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	missing := parseField(t, "class C { static readonly byte[] a = { 1 }, b; }")
	if _, err := TransformEach(missing); !errors.Is(err, ErrNotEligible) {
		t.Errorf("Got error %v, want %v", err, ErrNotEligible)
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	decl := parseField(t, "class C { static readonly sbyte[] a = { 1 }; }")

	if got, want := Title(decl), "Change to ReadOnlySpan<sbyte>"; got != want {
		t.Errorf("Got Title() = %q, want %q", got, want)
	}
}
