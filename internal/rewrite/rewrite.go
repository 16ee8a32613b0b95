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

// Package rewrite turns eligible array fields into expression-bodied read-only span properties.
package rewrite

import (
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/spanguard/internal/match"
	"fillmore-labs.com/spanguard/internal/syntax"
)

// ViewTypeName is the generic type replacing the array type.
const ViewTypeName = "ReadOnlySpan"

// ErrNotEligible is returned when a declaration does not have the shape required for rewriting.
var ErrNotEligible = errors.New("declaration not eligible for rewrite")

// ViewType returns `ReadOnlySpan<elem>`.
func ViewType(elem syntax.Type) *syntax.NamedType {
	return syntax.NewGenericType(ViewTypeName, elem)
}

// Title returns the fix title for an eligible declaration.
func Title(decl *syntax.FieldDecl) string {
	arr, reason := match.ArrayShape(decl.Type)
	if reason != match.Eligible {
		return "Change to " + ViewTypeName
	}

	return "Change to " + syntax.String(ViewType(arr.Elem))
}

// Transform rewrites the first variable of decl into a property declaration, keeping attributes,
// trivia, the remaining modifiers and the terminator.
func Transform(decl *syntax.FieldDecl) (*syntax.PropertyDecl, error) {
	arr, err := check(decl)
	if err != nil {
		return nil, err
	}

	v := decl.Variables[0]
	if v.Init == nil {
		return nil, notEligible(match.NoInitializer)
	}

	p := property(decl, arr, v)
	p.Leading, p.Trailing = decl.Leading, decl.Trailing

	return p, nil
}

// TransformEach rewrites every variable of decl into its own property declaration. Each property
// after the first starts on a new line with the indentation of the declaration.
func TransformEach(decl *syntax.FieldDecl) ([]*syntax.PropertyDecl, error) {
	arr, err := check(decl)
	if err != nil {
		return nil, err
	}

	for _, v := range decl.Variables {
		if v.Init == nil {
			return nil, notEligible(match.NoInitializer)
		}
	}

	lineBreak, indent := lineBreak(decl.Trailing), syntax.Indentation(decl.Leading)

	props := make([]*syntax.PropertyDecl, len(decl.Variables))
	for i, v := range decl.Variables {
		p := property(decl, arr, v)

		if i == 0 {
			p.Leading = decl.Leading
		} else {
			p.Leading = indent
		}

		if i == len(props)-1 {
			p.Trailing = decl.Trailing
		} else {
			p.Trailing = lineBreak
		}

		props[i] = p
	}

	return props, nil
}

func notEligible(reason match.Reason) error {
	return fmt.Errorf("%w: %v", ErrNotEligible, reason)
}

func check(decl *syntax.FieldDecl) (*syntax.ArrayType, error) {
	if decl == nil || decl.Type == nil {
		return nil, notEligible(match.Invalid)
	}

	if reason := match.StorageClass(decl.ModifierSet()); reason != match.Eligible {
		return nil, notEligible(reason)
	}

	arr, reason := match.ArrayShape(decl.Type)
	if reason != match.Eligible {
		return nil, notEligible(reason)
	}

	if len(decl.Variables) == 0 {
		return nil, notEligible(match.NoVariables)
	}

	return arr, nil
}

func property(decl *syntax.FieldDecl, arr *syntax.ArrayType, v *syntax.Variable) *syntax.PropertyDecl {
	mods := make([]syntax.ModifierToken, 0, len(decl.Modifiers))
	for _, m := range decl.Modifiers {
		if m.Kind != syntax.ReadOnly {
			mods = append(mods, m)
		}
	}

	return &syntax.PropertyDecl{
		Attributes: decl.Attributes,
		Modifiers:  mods,
		Type:       ViewType(arr.Elem),
		Name:       v.Name,
		Body:       body(arr, v.Init),
		Semicolon:  decl.Semicolon,
	}
}

// body turns the initializer into an expression. An array initializer `{ ... }` is only valid
// in declarations and becomes an array creation expression.
func body(arr *syntax.ArrayType, init *syntax.Expr) *syntax.Expr {
	if !strings.HasPrefix(init.Text, "{") {
		return init
	}

	return &syntax.Expr{
		StartPos: syntax.NoPos,
		EndPos:   syntax.NoPos,
		Text:     "new " + syntax.String(arr) + " " + init.Text,
	}
}

func lineBreak(trailing []syntax.Trivia) []syntax.Trivia {
	for _, t := range trailing {
		if t.Kind == syntax.Newline {
			return []syntax.Trivia{t}
		}
	}

	return []syntax.Trivia{{Kind: syntax.Newline, Pos: syntax.NoPos, End: syntax.NoPos, Text: "\n"}}
}
