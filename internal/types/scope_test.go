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

package types_test

import (
	"testing"

	"fillmore-labs.com/spanguard/internal/syntax"
	. "fillmore-labs.com/spanguard/internal/types"
)

func TestScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		usings string
		ns     string
		typ    string
		want   Identity
		ok     bool
	}{
		{"Keyword", "", "", "byte", Special(Byte), true},
		{"Keyword sbyte", "", "", "sbyte", Special(SByte), true},
		{"Keyword bool", "", "", "bool", Special(Boolean), true},
		{"Qualified", "", "", "System.Byte", Special(Byte), true},
		{"Global qualified", "", "", "global::System.SByte", Special(SByte), true},
		{"Simple without import", "", "", "Byte", Identity{Kind: Named, Name: "Byte"}, true},
		{"Simple with import", "using System;", "", "Byte", Special(Byte), true},
		{"Global import", "global using global::System;", "N", "Boolean", Special(Boolean), true},
		{"Inside System", "", "System.Text", "Byte", Special(Byte), true},
		{"Namespace import", "namespace N { using System; }", "N.M", "Byte", Special(Byte), true},
		{"Other namespace import", "namespace N { using System; }", "M", "Byte", Identity{Kind: Named, Name: "Byte"}, true},
		{"Alias", "using B = System.Byte;", "", "B", Special(Byte), true},
		{"Keyword alias", "using B = byte;", "", "B", Special(Byte), true},
		{"Namespace alias", "using S = System;", "", "S.Byte", Special(Byte), true},
		{"Alias to alias", "using S = System; using B = S.Byte;", "", "B", Identity{Kind: Named, Name: "S.Byte"}, true},
		{"Short", "", "", "ushort", Special(UInt16), true},
		{"Generic", "", "", "List<byte>", Identity{Kind: Named, Name: "List<byte>"}, true},
		{"Nullable", "", "", "byte?", Identity{Kind: Named, Name: "byte?"}, true},
		{"Extern alias", "", "", "lib::System.Byte", Identity{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := syntax.Parse([]byte(tt.usings + "\nclass C { " + tt.typ + " f; }"))
			if len(f.Fields) != 1 {
				t.Fatalf("Got %d fields, want 1", len(f.Fields))
			}

			got, ok := NewScope(f, tt.ns).ResolveType(f.Fields[0].Type)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Got ResolveType() = %v, %t, want %v, %t", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKindSet(t *testing.T) {
	t.Parallel()

	s := NewKindSet(SByte, Byte, Boolean)

	for k := Invalid; k <= UIntPtr; k++ {
		want := k == SByte || k == Byte || k == Boolean
		if got := s.Contains(k); got != want {
			t.Errorf("Got Contains(%v) = %t, want %t", k, got, want)
		}
	}

	if s.Without(Boolean).Contains(Boolean) {
		t.Error("Got Boolean after Without(Boolean)")
	}
}
