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

package syntax

// Modifier is a declaration modifier keyword.
type Modifier uint8

const (
	Static Modifier = iota
	ReadOnly
	Public
	Private
	Internal
	Protected
	Const
	Volatile
	New
	Unsafe
	Required
	Fixed
	Extern
	Ref
	FileLocal // the `file` accessibility modifier
	Abstract
	Virtual
	Override
	Sealed
	Partial
	Async
)

var modifierKeywords = map[string]Modifier{
	"static":    Static,
	"readonly":  ReadOnly,
	"public":    Public,
	"private":   Private,
	"internal":  Internal,
	"protected": Protected,
	"const":     Const,
	"volatile":  Volatile,
	"new":       New,
	"unsafe":    Unsafe,
	"required":  Required,
	"fixed":     Fixed,
	"extern":    Extern,
	"ref":       Ref,
	"file":      FileLocal,
	"abstract":  Abstract,
	"virtual":   Virtual,
	"override":  Override,
	"sealed":    Sealed,
	"partial":   Partial,
	"async":     Async,
}

// LookupModifier returns the [Modifier] for a keyword.
func LookupModifier(word string) (Modifier, bool) {
	m, ok := modifierKeywords[word]

	return m, ok
}

// ModifierToken is a modifier keyword as it appears in source.
type ModifierToken struct {
	Kind  Modifier
	Token Token
}

// NewModifierToken synthesizes a modifier token.
func NewModifierToken(kind Modifier, keyword string) ModifierToken {
	return ModifierToken{Kind: kind, Token: Synthesized(Ident, keyword)}
}

// ModifierSet is a set of [Modifier] flags.
type ModifierSet uint32

// NewModifierSet creates a [ModifierSet] with the given modifiers.
func NewModifierSet(mods ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s = s.With(m)
	}

	return s
}

// Has reports whether m is in the set.
func (s ModifierSet) Has(m Modifier) bool { return s&(1<<m) != 0 }

// HasAny reports whether any of mods is in the set.
func (s ModifierSet) HasAny(mods ...Modifier) bool {
	return s&NewModifierSet(mods...) != 0
}

// With returns the set including m.
func (s ModifierSet) With(m Modifier) ModifierSet { return s | 1<<m }

// Without returns the set excluding m.
func (s ModifierSet) Without(m Modifier) ModifierSet { return s &^ (1 << m) }
