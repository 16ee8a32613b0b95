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

import (
	"slices"
	"strings"
)

// Parse parses C# source text into a [File].
//
// Only the declarations needed for field analysis are materialized: using directives,
// namespaces and field declarations of class, struct, record and interface bodies.
// Parsing never fails, unrecognized members are skipped up to the next `;` or
// balanced block.
func Parse(src []byte) *File {
	p := &parser{
		src:  src,
		toks: NewLexer(src).All(),
		file: &File{Src: src},
	}

	p.file.Header = p.toks[0].Leading
	p.collectTrivia()
	p.namespaceMembers(false)

	return p.file
}

type parser struct {
	src   []byte
	toks  []Token // always terminated by EOF
	i     int
	file  *File
	ns    []string // enclosing namespace names
	types []string // enclosing type names
	iface bool     // innermost enclosing type is an interface
}

func (p *parser) tok() Token { return p.toks[p.i] }

func (p *parser) peek(n int) Token {
	if p.i+n < len(p.toks) {
		return p.toks[p.i+n]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) next() Token {
	t := p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}

	return t
}

func (p *parser) namespace() string { return strings.Join(p.ns, ".") }

func (p *parser) collectTrivia() {
	for _, t := range p.toks {
		for _, tr := range t.Leading {
			switch {
			case tr.IsComment():
				p.file.Comments = append(p.file.Comments, tr)

			case tr.Kind == Directive:
				p.file.Directives = append(p.file.Directives, tr)
			}
		}
	}
}

// namespaceMembers parses the compilation unit or a namespace body.
func (p *parser) namespaceMembers(block bool) {
	for {
		before := p.i

		switch t := p.tok(); {
		case t.Kind == EOF:
			return

		case t.Kind == RBrace:
			p.next()

			if block {
				return
			}

		case t.Is("extern") && p.peek(1).Is("alias"):
			p.skipMember()

		case t.Is("global") && p.peek(1).Is("using"):
			p.next()
			p.using(t)

		case t.Is("using") && p.usingDirective():
			p.using(p.tok())

		case t.Is("namespace"):
			p.namespaceDecl()

		default:
			p.member(false)
		}

		if p.i == before {
			p.next()
		}
	}
}

// usingDirective distinguishes `using X;` from using statements in top-level code.
func (p *parser) usingDirective() bool {
	n := p.peek(1)
	if n.Kind != Ident {
		return false
	}

	return !n.Is("var") || p.peek(2).Kind != Ident
}

func (p *parser) using(first Token) {
	u := &UsingDirective{
		UsingPos:  first.Pos,
		Global:    first.Is("global"),
		Namespace: p.namespace(),
	}

	p.next() // using

	if p.tok().Is("static") {
		p.next()

		u.Static = true
	}

	if p.tok().Kind == Ident && p.peek(1).Kind == Assign {
		u.Alias = p.next().Name()
		p.next()
	}

	target, ok := p.parseType()
	p.skipMember()

	u.EndPos = p.toks[max(p.i-1, 0)].End

	if ok {
		u.Target = target
		p.file.Usings = append(p.file.Usings, u)
	}
}

func (p *parser) namespaceDecl() {
	p.next() // namespace

	var parts []string

	for p.tok().Kind == Ident {
		parts = append(parts, p.next().Name())

		if p.tok().Kind != Dot {
			break
		}

		p.next()
	}

	switch p.tok().Kind {
	case Semicolon: // file-scoped, applies to the rest of the file
		p.next()

		p.ns = append(p.ns, parts...)

	case LBrace:
		p.next()

		outer := len(p.ns)
		p.ns = append(p.ns, parts...)
		p.namespaceMembers(true)
		p.ns = p.ns[:outer]

	default:
		p.skipMember()
	}
}

// member parses one namespace or type member. Field declarations are only recognized in type bodies.
func (p *parser) member(inType bool) {
	leading := p.tok().Leading
	attrs := p.attributes()
	mods := p.modifiers()

	switch t := p.tok(); {
	case t.Is("class"), t.Is("struct"), t.Is("interface"), t.Is("record"):
		p.typeDecl()

		return

	case !inType, t.Is("enum"), t.Is("delegate"), t.Is("event"),
		t.Is("implicit"), t.Is("explicit"), t.Kind != Ident && t.Kind != LParen:
		p.skipMember()

		return
	}

	typ, ok := p.parseType()
	if !ok || !p.fieldStart() {
		p.skipMember()

		return
	}

	decl := &FieldDecl{
		Attributes: attrs,
		Modifiers:  mods,
		Type:       typ,
		Namespace:  p.namespace(),
		Container:  slices.Clone(p.types),
		Interface:  p.iface,
	}
	_, decl.Leading = SplitTrivia(leading)

	if !p.variables(decl) {
		p.skipMember()

		return
	}

	decl.Semicolon = p.next()
	decl.Trailing, _ = SplitTrivia(p.tok().Leading)

	p.file.Fields = append(p.file.Fields, decl)
}

// fieldStart reports whether the current token starts a variable declarator.
func (p *parser) fieldStart() bool {
	t := p.tok()
	if t.Kind != Ident || t.Text == "this" || t.Text == "operator" {
		return false
	}

	switch p.peek(1).Kind {
	case Assign, Semicolon, Comma, LBracket:
		return true
	}

	return false
}

// variables parses the declarators up to, but excluding, the terminating semicolon.
func (p *parser) variables(decl *FieldDecl) bool {
	for {
		if p.tok().Kind != Ident {
			return false
		}

		v := &Variable{Name: p.next()}

		if p.tok().Kind == LBracket { // fixed size buffer
			end := p.matching(p.i)
			if end < 0 {
				return false
			}

			p.i = end + 1
		}

		if p.tok().Kind == Assign {
			assign := p.next()
			v.Assign = &assign

			if v.Init = p.expression(); v.Init == nil {
				return false
			}
		}

		decl.Variables = append(decl.Variables, v)

		switch p.tok().Kind {
		case Comma:
			p.next()

		case Semicolon:
			return true

		default:
			return false
		}
	}
}

func (p *parser) attributes() []*AttributeList {
	var attrs []*AttributeList

	for p.tok().Kind == LBracket {
		end := p.matching(p.i)
		if end < 0 {
			break
		}

		lb, rb := p.tok(), p.toks[end]
		p.i = end + 1

		attrs = append(attrs, &AttributeList{
			LBracket: lb,
			RBracket: rb,
			Text:     string(p.src[lb.Pos:rb.End]),
			Trailing: p.tok().Leading,
		})
	}

	return attrs
}

func (p *parser) modifiers() []ModifierToken {
	var mods []ModifierToken

	for {
		t := p.tok()
		if t.Kind != Ident {
			return mods
		}

		m, ok := LookupModifier(t.Text)
		if !ok {
			return mods
		}

		// a contextual keyword used as a name
		switch p.peek(1).Kind {
		case Assign, Semicolon, Comma, Dot, Lt, ColonColon:
			return mods
		}

		mods = append(mods, ModifierToken{Kind: m, Token: p.next()})
	}
}

// typeDecl parses a class, struct, interface or record declaration.
func (p *parser) typeDecl() {
	iface := p.tok().Is("interface")
	p.next() // keyword

	if t := p.tok(); t.Is("class") || t.Is("struct") {
		p.next() // record class / record struct
	}

	name := p.tok()
	if name.Kind != Ident {
		p.skipMember()

		return
	}

	p.next()

	for { // type parameters, primary constructor, base list and constraints
		switch p.tok().Kind {
		case EOF, RBrace:
			return

		case Semicolon:
			p.next()

			return

		case LBrace:
			p.next()

			outer := p.iface
			p.types, p.iface = append(p.types, name.Name()), iface
			p.typeMembers()
			p.types, p.iface = p.types[:len(p.types)-1], outer

			return

		case LParen, LBracket:
			end := p.matching(p.i)
			if end < 0 {
				p.i = len(p.toks) - 1

				return
			}

			p.i = end + 1

		default:
			p.next()
		}
	}
}

func (p *parser) typeMembers() {
	for {
		switch p.tok().Kind {
		case EOF:
			return

		case RBrace:
			p.next()

			return
		}

		before := p.i
		p.member(true)

		if p.i == before {
			p.next()
		}
	}
}

// skipMember skips to after the next `;` or balanced block at the current nesting level.
func (p *parser) skipMember() {
	depth := 0

	for {
		switch p.tok().Kind {
		case EOF:
			return

		case LParen, LBracket:
			depth++

		case RParen, RBracket:
			if depth > 0 {
				depth--
			}

		case LBrace:
			if depth > 0 {
				depth++

				break
			}

			end := p.matching(p.i)
			if end < 0 {
				p.i = len(p.toks) - 1

				return
			}

			p.i = end + 1

			if p.tok().Kind == Assign { // property initializer
				continue
			}

			return

		case RBrace:
			if depth == 0 {
				return
			}

			depth--

		case Semicolon:
			if depth == 0 {
				p.next()

				return
			}
		}

		p.next()
	}
}

// matching returns the index of the bracket closing the one at index i, or -1.
func (p *parser) matching(i int) int {
	depth := 0

	for j := i; j < len(p.toks); j++ {
		switch p.toks[j].Kind {
		case LParen, LBracket, LBrace:
			depth++

		case RParen, RBracket, RBrace:
			depth--
			if depth == 0 {
				return j
			}

		case EOF:
			return -1
		}
	}

	return -1
}

// expression scans an opaque expression up to a `,`, `;` or unbalanced closing bracket.
// It returns nil for an empty expression.
func (p *parser) expression() *Expr {
	start, depth := p.i, 0

loop:
	for {
		switch p.tok().Kind {
		case EOF:
			break loop

		case LParen, LBracket, LBrace:
			depth++

		case RParen, RBracket, RBrace:
			if depth == 0 {
				break loop
			}

			depth--

		case Comma, Semicolon:
			if depth == 0 {
				break loop
			}

		case Lt:
			if end := p.typeArgsEnd(p.i); end > 0 {
				p.i = end

				continue
			}
		}

		p.next()
	}

	if p.i == start {
		return nil
	}

	first, last := p.toks[start], p.toks[p.i-1]

	return &Expr{StartPos: first.Pos, EndPos: last.End, Text: string(p.src[first.Pos:last.End])}
}

// typeArgsEnd checks whether the `<` at index i opens a type argument list inside an
// expression and returns the index after the closing `>`, or 0.
func (p *parser) typeArgsEnd(i int) int {
	if i == 0 || p.toks[i-1].Kind != Ident {
		return 0
	}

	depth := 0

	for j := i; j < len(p.toks); j++ {
		switch p.toks[j].Kind {
		case Lt:
			depth++

		case Gt:
			depth--
			if depth > 0 {
				continue
			}

			switch p.toks[j+1].Kind {
			case LParen, RParen, RBracket, RBrace, LBracket, LBrace,
				Colon, Semicolon, Comma, Dot, Question, Gt, Operator, EOF:
				return j + 1
			}

			return 0

		case Ident, Dot, Comma, ColonColon, Question, Star, LBracket, RBracket, LParen, RParen:

		default:
			return 0
		}
	}

	return 0
}

// parseType parses a type reference including array, nullable and pointer suffixes.
func (p *parser) parseType() (Type, bool) {
	t, ok := p.nonArrayType()
	if !ok {
		return nil, false
	}

	for {
		switch p.tok().Kind {
		case Question:
			t = &NullableType{Elem: t, Question: p.next()}

		case Star:
			t = &PointerType{Elem: t, Star: p.next()}

		case LBracket:
			arr, isArray := t.(*ArrayType)
			if !isArray {
				arr = &ArrayType{Elem: t}
				t = arr
			}

			rank, ok := p.rankSpecifier()
			if !ok {
				return nil, false
			}

			arr.Ranks = append(arr.Ranks, rank)

		default:
			return t, true
		}
	}
}

func (p *parser) rankSpecifier() (*RankSpecifier, bool) {
	r := &RankSpecifier{LBracket: p.next()}

	for {
		var size *Expr
		if k := p.tok().Kind; k != Comma && k != RBracket {
			if size = p.expression(); size == nil {
				return nil, false
			}
		}

		r.Sizes = append(r.Sizes, size)

		switch p.tok().Kind {
		case Comma:
			p.next()

		case RBracket:
			r.RBracket = p.next()

			return r, true

		default:
			return nil, false
		}
	}
}

var predefinedTypes = map[string]struct{}{
	"bool": {}, "byte": {}, "sbyte": {}, "char": {}, "decimal": {}, "double": {}, "float": {},
	"int": {}, "uint": {}, "nint": {}, "nuint": {}, "long": {}, "ulong": {}, "short": {},
	"ushort": {}, "object": {}, "string": {}, "void": {},
}

// IsPredefinedType reports whether word is a C# keyword type.
func IsPredefinedType(word string) bool {
	_, ok := predefinedTypes[word]

	return ok
}

func (p *parser) nonArrayType() (Type, bool) {
	switch t := p.tok(); {
	case t.Kind == LParen:
		end := p.matching(p.i)
		if end < 0 {
			return nil, false
		}

		rp := p.toks[end]
		p.i = end + 1

		return &TupleType{LParen: t, RParen: rp, Text: string(p.src[t.Pos:rp.End])}, true

	case t.Kind == Ident && IsPredefinedType(t.Text):
		return &PredefinedType{Keyword: p.next()}, true

	case t.Kind == Ident:
		return p.namedType()
	}

	return nil, false
}

func (p *parser) namedType() (Type, bool) {
	nt := &NamedType{}

	if p.peek(1).Kind == ColonColon {
		q := p.next()
		nt.Qualifier = &q

		p.next()
	}

	for {
		if p.tok().Kind != Ident {
			return nil, false
		}

		seg := &NameSegment{Name: p.next()}

		if p.tok().Kind == Lt {
			args, ok := p.typeArgs()
			if !ok {
				return nil, false
			}

			seg.Args = args
		}

		nt.Segments = append(nt.Segments, seg)

		if p.tok().Kind != Dot || p.peek(1).Kind != Ident {
			return nt, true
		}

		p.next()
	}
}

func (p *parser) typeArgs() (*TypeArgs, bool) {
	args := &TypeArgs{Lt: p.next()}

	for {
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}

		args.List = append(args.List, t)

		switch p.tok().Kind {
		case Comma:
			p.next()

		case Gt:
			args.Gt = p.next()

			return args, true

		default:
			return nil, false
		}
	}
}
