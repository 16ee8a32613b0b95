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

// Node is a syntax tree node spanning [Pos, End) in the source. Synthesized nodes report [NoPos].
type Node interface {
	Pos() int
	End() int
}

// File is a parsed C# compilation unit, reduced to the parts the analysis needs.
type File struct {
	Src        []byte
	Header     []Trivia // trivia before the first token
	Comments   []Trivia // all comments, in source order
	Directives []Trivia // all preprocessor lines, in source order
	Usings     []*UsingDirective
	Fields     []*FieldDecl
}

// UsingDirective is a `using` directive at file or namespace level.
type UsingDirective struct {
	UsingPos  int
	EndPos    int
	Global    bool
	Static    bool
	Alias     string // alias name for `using A = T;`
	Target    Type   // imported namespace or aliased type
	Namespace string // enclosing namespace, "" at file level
}

func (u *UsingDirective) Pos() int { return u.UsingPos }
func (u *UsingDirective) End() int { return u.EndPos }

// FieldDecl is a field declaration at type member level:
//
//	[Attr] static readonly byte[] name = initializer;
type FieldDecl struct {
	Attributes []*AttributeList
	Modifiers  []ModifierToken
	Type       Type
	Variables  []*Variable
	Semicolon  Token
	Leading    []Trivia // trivia before the declaration on its own lines
	Trailing   []Trivia // trivia after the terminator, up to and including the line break
	Namespace  string   // enclosing namespace, "" for the global namespace
	Container  []string // names of enclosing types, outermost first
	Interface  bool     // declared directly in an interface body
}

// Pos returns the offset of the first attribute, modifier or type token.
func (d *FieldDecl) Pos() int {
	switch {
	case len(d.Attributes) > 0:
		return d.Attributes[0].Pos()
	case len(d.Modifiers) > 0:
		return d.Modifiers[0].Token.Pos
	default:
		return d.Type.Pos()
	}
}

// End returns the offset after the terminating semicolon.
func (d *FieldDecl) End() int { return d.Semicolon.End }

// FullPos returns the start offset including leading trivia.
func (d *FieldDecl) FullPos() int {
	if len(d.Leading) > 0 {
		return d.Leading[0].Pos
	}

	return d.Pos()
}

// FullEnd returns the end offset including trailing trivia.
func (d *FieldDecl) FullEnd() int {
	if n := len(d.Trailing); n > 0 {
		return d.Trailing[n-1].End
	}

	return d.End()
}

// ModifierSet returns the modifiers as a typed set.
func (d *FieldDecl) ModifierSet() ModifierSet {
	var s ModifierSet
	for _, m := range d.Modifiers {
		s = s.With(m.Kind)
	}

	return s
}

// AttributeList is an opaque `[...]` attribute section.
type AttributeList struct {
	LBracket Token
	RBracket Token
	Text     string
	Trailing []Trivia // trivia between this section and the next token
}

func (a *AttributeList) Pos() int { return a.LBracket.Pos }
func (a *AttributeList) End() int { return a.RBracket.End }

// Variable is a single declarator `name` or `name = initializer`.
type Variable struct {
	Name   Token
	Assign *Token // nil without initializer
	Init   *Expr  // nil without initializer
}

func (v *Variable) Pos() int { return v.Name.Pos }

func (v *Variable) End() int {
	if v.Init != nil {
		return v.Init.End()
	}

	return v.Name.End
}

// Expr is an opaque expression, kept as its verbatim source text.
type Expr struct {
	StartPos int
	EndPos   int
	Text     string
}

func (e *Expr) Pos() int { return e.StartPos }
func (e *Expr) End() int { return e.EndPos }

// PropertyDecl is an expression-bodied property declaration:
//
//	[Attr] static ReadOnlySpan<byte> name => body;
type PropertyDecl struct {
	Attributes []*AttributeList
	Modifiers  []ModifierToken
	Type       Type
	Name       Token
	Body       *Expr
	Semicolon  Token
	Leading    []Trivia
	Trailing   []Trivia
}

// Pos returns [NoPos], property declarations are synthesized.
func (*PropertyDecl) Pos() int { return NoPos }

// End returns [NoPos], property declarations are synthesized.
func (*PropertyDecl) End() int { return NoPos }
