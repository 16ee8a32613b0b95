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

// Type is a type reference as written in source.
type Type interface {
	Node
	typeNode()
}

// PredefinedType is a keyword type like `byte` or `bool`.
type PredefinedType struct {
	Keyword Token
}

// NamedType is a possibly qualified, possibly generic type name:
//
//	global::System.Collections.Generic.List<byte>
type NamedType struct {
	Qualifier *Token // alias qualifier before `::`, nil if absent
	Segments  []*NameSegment
}

// NameSegment is one dot-separated part of a [NamedType].
type NameSegment struct {
	Name Token
	Args *TypeArgs // nil for non-generic segments
}

// TypeArgs is a type argument list `<T1, T2>`.
type TypeArgs struct {
	Lt   Token
	List []Type
	Gt   Token
}

// ArrayType is an element type followed by one or more rank specifiers.
type ArrayType struct {
	Elem  Type
	Ranks []*RankSpecifier
}

// RankSpecifier is the bracketed dimension part `[]`, `[,]` or `[4]` of an array type.
type RankSpecifier struct {
	LBracket Token
	Sizes    []*Expr // one entry per dimension, nil when the size is omitted
	RBracket Token
}

// NullableType is `T?`.
type NullableType struct {
	Elem     Type
	Question Token
}

// PointerType is `T*`.
type PointerType struct {
	Elem Type
	Star Token
}

// TupleType is a tuple type `(int, string)`, kept as verbatim text.
type TupleType struct {
	LParen Token
	RParen Token
	Text   string
}

func (*PredefinedType) typeNode() {}
func (*NamedType) typeNode()      {}
func (*ArrayType) typeNode()      {}
func (*NullableType) typeNode()   {}
func (*PointerType) typeNode()    {}
func (*TupleType) typeNode()      {}

func (t *PredefinedType) Pos() int { return t.Keyword.Pos }
func (t *PredefinedType) End() int { return t.Keyword.End }

func (t *NamedType) Pos() int {
	if t.Qualifier != nil {
		return t.Qualifier.Pos
	}

	return t.Segments[0].Name.Pos
}

func (t *NamedType) End() int {
	last := t.Segments[len(t.Segments)-1]
	if last.Args != nil {
		return last.Args.Gt.End
	}

	return last.Name.End
}

// Generic reports whether any segment carries type arguments.
func (t *NamedType) Generic() bool {
	for _, s := range t.Segments {
		if s.Args != nil {
			return true
		}
	}

	return false
}

// Names returns the segment names without type arguments.
func (t *NamedType) Names() []string {
	names := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		names[i] = s.Name.Name()
	}

	return names
}

func (t *ArrayType) Pos() int { return t.Elem.Pos() }
func (t *ArrayType) End() int { return t.Ranks[len(t.Ranks)-1].RBracket.End }

func (r *RankSpecifier) Pos() int { return r.LBracket.Pos }
func (r *RankSpecifier) End() int { return r.RBracket.End }

// Omitted reports whether the specifier has a single dimension without size.
func (r *RankSpecifier) Omitted() bool {
	return len(r.Sizes) == 1 && r.Sizes[0] == nil
}

func (t *NullableType) Pos() int { return t.Elem.Pos() }
func (t *NullableType) End() int { return t.Question.End }

func (t *PointerType) Pos() int { return t.Elem.Pos() }
func (t *PointerType) End() int { return t.Star.End }

func (t *TupleType) Pos() int { return t.LParen.Pos }
func (t *TupleType) End() int { return t.RParen.End }

// NewGenericType synthesizes a single-segment generic type `name<args...>`.
func NewGenericType(name string, args ...Type) *NamedType {
	return &NamedType{
		Segments: []*NameSegment{{
			Name: Synthesized(Ident, name),
			Args: &TypeArgs{
				Lt:   Synthesized(Lt, "<"),
				List: args,
				Gt:   Synthesized(Gt, ">"),
			},
		}},
	}
}

func (a *TypeArgs) Pos() int { return a.Lt.Pos }
func (a *TypeArgs) End() int { return a.Gt.End }
