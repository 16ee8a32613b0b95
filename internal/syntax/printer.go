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
	"io"
	"strings"
)

// Fprint writes the source form of node to w.
//
// Types, expressions and attribute lists print in canonical form. A [PropertyDecl]
// prints with its leading and trailing trivia, attributes keep the trivia that followed
// them in the original declaration.
func Fprint(w io.Writer, node Node) error {
	_, err := io.WriteString(w, String(node))

	return err
}

// String returns the source form of node.
func String(node Node) string {
	var b strings.Builder
	printNode(&b, node)

	return b.String()
}

// Source returns the verbatim source text of a parsed node.
func Source(src []byte, node Node) string {
	pos, end := node.Pos(), node.End()
	if pos == NoPos || end == NoPos {
		return String(node)
	}

	return string(src[pos:end])
}

func printNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *PredefinedType:
		b.WriteString(n.Keyword.Text)

	case *NamedType:
		if n.Qualifier != nil {
			b.WriteString(n.Qualifier.Text)
			b.WriteString("::")
		}

		for i, s := range n.Segments {
			if i > 0 {
				b.WriteByte('.')
			}

			b.WriteString(s.Name.Text)

			if s.Args != nil {
				printNode(b, s.Args)
			}
		}

	case *TypeArgs:
		b.WriteByte('<')

		for i, a := range n.List {
			if i > 0 {
				b.WriteString(", ")
			}

			printNode(b, a)
		}

		b.WriteByte('>')

	case *ArrayType:
		printNode(b, n.Elem)

		for _, r := range n.Ranks {
			printNode(b, r)
		}

	case *RankSpecifier:
		b.WriteByte('[')

		for i, s := range n.Sizes {
			if i > 0 {
				b.WriteByte(',')
			}

			if s != nil {
				b.WriteString(s.Text)
			}
		}

		b.WriteByte(']')

	case *NullableType:
		printNode(b, n.Elem)
		b.WriteByte('?')

	case *PointerType:
		printNode(b, n.Elem)
		b.WriteByte('*')

	case *TupleType:
		b.WriteString(n.Text)

	case *Expr:
		b.WriteString(n.Text)

	case *AttributeList:
		b.WriteString(n.Text)

	case *PropertyDecl:
		printProperty(b, n)
	}
}

func printProperty(b *strings.Builder, n *PropertyDecl) {
	b.WriteString(TriviaText(n.Leading))

	for _, a := range n.Attributes {
		b.WriteString(a.Text)

		if sep := TriviaText(a.Trailing); sep != "" {
			b.WriteString(sep)
		} else {
			b.WriteByte(' ')
		}
	}

	for _, m := range n.Modifiers {
		b.WriteString(m.Token.Text)
		b.WriteByte(' ')
	}

	printNode(b, n.Type)
	b.WriteByte(' ')
	b.WriteString(n.Name.Text)
	b.WriteString(" => ")

	if n.Body != nil {
		b.WriteString(n.Body.Text)
	}

	b.WriteString(n.Semicolon.Text)
	b.WriteString(TriviaText(n.Trailing))
}
