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

// NoPos marks offsets of synthesized tokens and trivia that have no source location.
const NoPos = -1

// Kind is the lexical class of a [Token].
type Kind uint8

//go:generate go tool stringer -type Kind
const (
	EOF Kind = iota
	Illegal
	Ident
	Number
	StringLit
	Char
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
	LParen     // (
	RParen     // )
	Lt         // <
	Gt         // >
	Comma      // ,
	Semicolon  // ;
	Assign     // =
	Arrow      // =>
	Dot        // .
	Colon      // :
	ColonColon // ::
	Question   // ?
	Star       // *
	Operator   // any other operator or punctuation
)

// Token is a single significant token with the trivia preceding it.
type Token struct {
	Kind    Kind
	Pos     int // byte offset, inclusive
	End     int // byte offset, exclusive
	Text    string
	Leading []Trivia
}

// Synthesized returns a token without source location.
func Synthesized(kind Kind, text string) Token {
	return Token{Kind: kind, Pos: NoPos, End: NoPos, Text: text}
}

// Is reports whether the token is the identifier or contextual keyword word.
func (t Token) Is(word string) bool {
	return t.Kind == Ident && t.Text == word
}

// Name returns the identifier value with a verbatim '@' prefix removed.
func (t Token) Name() string {
	if t.Kind == Ident && len(t.Text) > 1 && t.Text[0] == '@' {
		return t.Text[1:]
	}

	return t.Text
}
