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

// Package match decides whether a field declaration can be turned into a read-only span property.
package match

import (
	"fillmore-labs.com/spanguard/internal/syntax"
	"fillmore-labs.com/spanguard/internal/types"
)

// DefaultElements are the element types of arrays that qualify for the rewrite.
var DefaultElements = types.NewKindSet(types.SByte, types.Byte, types.Boolean)

// Matcher is a predicate over field declarations. The zero value matches nothing.
type Matcher struct {
	elements       types.KindSet
	rejectMultiple bool
}

// New creates a [Matcher] accepting arrays of the given element kinds.
// When rejectMultiple is set, declarations with more than one variable do not match.
func New(elements types.KindSet, rejectMultiple bool) Matcher {
	return Matcher{elements: elements, rejectMultiple: rejectMultiple}
}

// Result is the outcome of [Matcher.Match].
type Result struct {
	Eligible bool
	Decl     *syntax.FieldDecl
	Reason   Reason
	Elem     types.Identity // resolved element type, when the declaration has the right shape
}

// Match evaluates the declaration. It is total: any input yields a result and never panics.
func (m Matcher) Match(decl *syntax.FieldDecl, r types.Resolver) Result {
	res := Result{Decl: decl}
	res.Reason, res.Elem = m.match(decl, r)
	res.Eligible = res.Reason == Eligible

	return res
}

func (m Matcher) match(decl *syntax.FieldDecl, r types.Resolver) (Reason, types.Identity) {
	if decl == nil || decl.Type == nil || r == nil {
		return Invalid, types.Identity{}
	}

	mods := decl.ModifierSet()

	if reason := StorageClass(mods); reason != Eligible {
		return reason, types.Identity{}
	}

	if !Accessible(mods, decl.Interface) {
		return Visible, types.Identity{}
	}

	arr, reason := ArrayShape(decl.Type)
	if reason != Eligible {
		return reason, types.Identity{}
	}

	elem, ok := r.ResolveType(arr.Elem)
	if !ok {
		return Unresolved, types.Identity{}
	}

	if !m.elements.Contains(elem.Kind) {
		return ElementType, elem
	}

	switch n := len(decl.Variables); {
	case n == 0:
		return NoVariables, elem

	case n > 1 && m.rejectMultiple:
		return MultipleVariables, elem
	}

	return Eligible, elem
}
