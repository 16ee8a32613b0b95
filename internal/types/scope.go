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

package types

import (
	"strings"

	"fillmore-labs.com/spanguard/internal/syntax"
)

var keywordTypes = map[string]Kind{
	"sbyte":   SByte,
	"byte":    Byte,
	"bool":    Boolean,
	"short":   Int16,
	"ushort":  UInt16,
	"int":     Int32,
	"uint":    UInt32,
	"long":    Int64,
	"ulong":   UInt64,
	"char":    Char,
	"float":   Single,
	"double":  Double,
	"decimal": Decimal,
	"string":  String,
	"object":  Object,
	"nint":    IntPtr,
	"nuint":   UIntPtr,
}

// systemTypes maps the simple names of special types, like "Byte".
var systemTypes = func() map[string]Kind {
	m := make(map[string]Kind, UIntPtr-SByte+1)
	for k := SByte; k <= UIntPtr; k++ {
		m[strings.TrimPrefix(k.String(), "System.")] = k
	}

	return m
}()

// Scope resolves type references declared in one namespace of a file, following the
// using directives visible there.
//
// Resolution is syntactic: simple names of special types resolve when the System namespace
// is imported or encloses the declaration, qualified names resolve by their spelling.
// Types declared in the compilation itself that shadow a System type are not detected.
type Scope struct {
	system  bool                   // System namespace imported or enclosing
	aliases map[string]syntax.Type // using aliases
}

// NewScope creates a [Scope] for declarations in namespace of file f.
func NewScope(f *syntax.File, namespace string) *Scope {
	s := &Scope{
		system:  encloses("System", namespace),
		aliases: make(map[string]syntax.Type),
	}

	for _, u := range f.Usings {
		if !u.Global && !encloses(u.Namespace, namespace) {
			continue
		}

		switch {
		case u.Alias != "":
			s.aliases[u.Alias] = u.Target

		case u.Static:

		default:
			if name, ok := qualifiedName(u.Target); ok && name == "System" {
				s.system = true
			}
		}
	}

	return s
}

// encloses reports whether inner is the same as or nested in outer.
func encloses(outer, inner string) bool {
	return outer == "" || inner == outer || strings.HasPrefix(inner, outer+".")
}

// ResolveType implements [Resolver].
func (s *Scope) ResolveType(t syntax.Type) (Identity, bool) {
	return s.resolve(t, true)
}

func (s *Scope) resolve(t syntax.Type, aliases bool) (Identity, bool) {
	switch t := t.(type) {
	case *syntax.PredefinedType:
		if k, ok := keywordTypes[t.Keyword.Text]; ok {
			return Special(k), true
		}

	case *syntax.NamedType:
		return s.resolveNamed(t, aliases)

	case *syntax.ArrayType, *syntax.NullableType, *syntax.PointerType, *syntax.TupleType:
		return Identity{Kind: Named, Name: syntax.String(t)}, true
	}

	return Identity{}, false
}

func (s *Scope) resolveNamed(t *syntax.NamedType, aliases bool) (Identity, bool) {
	if t.Generic() {
		return Identity{Kind: Named, Name: syntax.String(t)}, true
	}

	names := t.Names()

	switch {
	case t.Qualifier != nil:
		if t.Qualifier.Name() != "global" {
			return Identity{}, false // extern alias
		}

	case aliases:
		target, ok := s.aliases[names[0]]
		if !ok {
			break
		}

		if len(names) == 1 {
			// alias targets do not see sibling aliases
			return s.resolve(target, false)
		}

		prefix, ok := qualifiedName(target)
		if !ok {
			return Identity{}, false
		}

		return qualified(prefix + "." + strings.Join(names[1:], ".")), true
	}

	if len(names) == 1 && t.Qualifier == nil && s.system {
		if k, ok := systemTypes[names[0]]; ok {
			return Special(k), true
		}
	}

	return qualified(strings.Join(names, ".")), true
}

func qualified(name string) Identity {
	if simple, ok := strings.CutPrefix(name, "System."); ok {
		if k, ok := systemTypes[simple]; ok {
			return Special(k)
		}
	}

	return Identity{Kind: Named, Name: name}
}

// qualifiedName returns the dotted name of a non-generic type or namespace reference.
func qualifiedName(t syntax.Type) (string, bool) {
	nt, ok := t.(*syntax.NamedType)
	if !ok || nt.Generic() || nt.Qualifier != nil && nt.Qualifier.Name() != "global" {
		return "", false
	}

	return strings.Join(nt.Names(), "."), true
}
