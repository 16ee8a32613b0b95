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
	"unicode"
	"unicode/utf8"
)

// Lexer splits C# source text into significant tokens, attaching all trivia
// seen since the previous token as leading trivia.
//
// The lexer never fails: unknown input becomes [Illegal] tokens, unterminated
// strings and comments extend to the end of the line or file.
type Lexer struct {
	src       []byte
	off       int
	lineStart bool     // only blanks seen since the last line break
	look      *Token   // one token lookahead buffer
	hold      []Trivia // accumulated leading trivia
}

// NewLexer creates a [Lexer] for src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, lineStart: true}
}

// Next returns the next significant token. After the end of input it keeps returning [EOF].
// The trivia at the end of the file is attached to the [EOF] token.
func (lx *Lexer) Next() Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil

		return tok
	}

	lx.collectTrivia()

	var tok Token
	if lx.off >= len(lx.src) {
		tok = Token{Kind: EOF, Pos: lx.off, End: lx.off}
	} else {
		tok = lx.scanToken()
		lx.lineStart = false
	}

	tok.Leading, lx.hold = lx.hold, nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() Token {
	tok := lx.Next()
	lx.look = &tok

	return tok
}

// All scans the remaining input. The result always ends with an [EOF] token.
func (lx *Lexer) All() []Token {
	var toks []Token

	for {
		tok := lx.Next()
		toks = append(toks, tok)

		if tok.Kind == EOF {
			return toks
		}
	}
}

func (lx *Lexer) collectTrivia() {
	for lx.off < len(lx.src) {
		start := lx.off

		switch c := lx.src[lx.off]; {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			for lx.off < len(lx.src) && isBlank(lx.src[lx.off]) {
				lx.off++
			}

			lx.emit(Space, start)

		case c == '\n':
			lx.off++
			lx.emit(Newline, start)
			lx.lineStart = true

		case c == '\r':
			lx.off++
			if lx.off < len(lx.src) && lx.src[lx.off] == '\n' {
				lx.off++
			}

			lx.emit(Newline, start)
			lx.lineStart = true

		case c == '/' && lx.at(1) == '/':
			kind := LineComment
			if lx.at(2) == '/' && lx.at(3) != '/' {
				kind = DocComment
			}

			lx.skipLine()
			lx.emit(kind, start)

		case c == '/' && lx.at(1) == '*':
			lx.off += 2
			for lx.off < len(lx.src) && (lx.src[lx.off] != '*' || lx.at(1) != '/') {
				lx.off++
			}

			lx.off = min(lx.off+2, len(lx.src))
			lx.emit(BlockComment, start)

		case c == '#' && lx.lineStart:
			lx.skipLine()
			lx.emit(Directive, start)

		default:
			if r, size := utf8.DecodeRune(lx.src[lx.off:]); r == '\uFEFF' || (r != utf8.RuneError && unicode.Is(unicode.Zs, r)) {
				lx.off += size
				lx.emit(Space, start)

				continue
			}

			return
		}
	}
}

func (lx *Lexer) emit(kind TriviaKind, start int) {
	lx.hold = append(lx.hold, Trivia{Kind: kind, Pos: start, End: lx.off, Text: string(lx.src[start:lx.off])})
}

func (lx *Lexer) skipLine() {
	for lx.off < len(lx.src) && lx.src[lx.off] != '\n' && lx.src[lx.off] != '\r' {
		lx.off++
	}
}

// at returns the byte at offset i from the current position, or 0 past the end.
func (lx *Lexer) at(i int) byte {
	if lx.off+i < len(lx.src) {
		return lx.src[lx.off+i]
	}

	return 0
}

func (lx *Lexer) scanToken() Token {
	start := lx.off
	c := lx.src[lx.off]

	var kind Kind

	switch {
	case c == '@' && lx.at(1) == '"',
		c == '$' && (lx.at(1) == '"' || lx.at(1) == '@' || lx.at(1) == '$'),
		c == '@' && lx.at(1) == '$':
		lx.scanPrefixedString()

		kind = StringLit

	case c == '"':
		lx.scanString(false, 0)

		kind = StringLit

	case c == '\'':
		lx.scanChar()

		kind = Char

	case c == '@' && isIdentStart(lx.runeAt(1)):
		lx.off++
		lx.scanIdent()

		kind = Ident

	case isDigit(c) || (c == '.' && isDigit(lx.at(1))):
		lx.scanNumber()

		kind = Number

	case isIdentStart(lx.runeAt(0)):
		lx.scanIdent()

		kind = Ident

	default:
		kind = lx.scanOperator()
	}

	return Token{Kind: kind, Pos: start, End: lx.off, Text: string(lx.src[start:lx.off])}
}

func (lx *Lexer) runeAt(i int) rune {
	if lx.off+i >= len(lx.src) {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRune(lx.src[lx.off+i:])

	return r
}

func (lx *Lexer) scanIdent() {
	for lx.off < len(lx.src) {
		r, size := utf8.DecodeRune(lx.src[lx.off:])
		if !isIdentPart(r) {
			return
		}

		lx.off += size
	}
}

func (lx *Lexer) scanNumber() {
	for lx.off < len(lx.src) {
		c := lx.src[lx.off]

		switch {
		case isDigit(c) || isLetter(c) || c == '_':
			if (c == 'e' || c == 'E') && (lx.at(1) == '+' || lx.at(1) == '-') && !lx.hexPrefix() {
				lx.off++
			}

			lx.off++

		case c == '.' && isDigit(lx.at(1)):
			lx.off++

		default:
			return
		}
	}
}

// hexPrefix reports whether the number being scanned starts with 0x, where 'e' is a digit.
func (lx *Lexer) hexPrefix() bool {
	i := lx.off
	for i > 0 && (isDigit(lx.src[i-1]) || isLetter(lx.src[i-1]) || lx.src[i-1] == '_') {
		i--
	}

	return i+1 < len(lx.src) && lx.src[i] == '0' && (lx.src[i+1] == 'x' || lx.src[i+1] == 'X')
}

func (lx *Lexer) scanChar() {
	lx.off++ // opening quote

	for lx.off < len(lx.src) {
		switch lx.src[lx.off] {
		case '\\':
			lx.off = min(lx.off+2, len(lx.src))

		case '\'':
			lx.off++

			return

		case '\n', '\r':
			return

		default:
			lx.off++
		}
	}
}

// scanPrefixedString handles verbatim (@"), interpolated ($") and combined prefixes.
func (lx *Lexer) scanPrefixedString() {
	verbatim, dollars := false, 0

	for lx.off < len(lx.src) {
		switch lx.src[lx.off] {
		case '@':
			verbatim = true
		case '$':
			dollars++
		default:
			if verbatim {
				lx.scanVerbatim(dollars)
			} else {
				lx.scanString(true, dollars)
			}

			return
		}

		lx.off++
	}
}

// scanString scans a regular or raw string literal starting at the opening quote.
func (lx *Lexer) scanString(interpolated bool, dollars int) {
	if lx.at(1) == '"' && lx.at(2) == '"' {
		lx.scanRaw()

		return
	}

	lx.off++ // opening quote

	for lx.off < len(lx.src) {
		switch c := lx.src[lx.off]; {
		case c == '\\':
			lx.off = min(lx.off+2, len(lx.src))

		case c == '"':
			lx.off++

			return

		case c == '\n' || c == '\r':
			return

		case c == '{' && interpolated:
			lx.scanHole(dollars)

		default:
			lx.off++
		}
	}
}

func (lx *Lexer) scanVerbatim(dollars int) {
	lx.off++ // opening quote

	for lx.off < len(lx.src) {
		switch c := lx.src[lx.off]; {
		case c == '"' && lx.at(1) == '"':
			lx.off += 2

		case c == '"':
			lx.off++

			return

		case c == '{' && dollars > 0:
			lx.scanHole(dollars)

		default:
			lx.off++
		}
	}
}

// scanRaw scans a raw string literal delimited by three or more quotes.
func (lx *Lexer) scanRaw() {
	n := 0
	for lx.off < len(lx.src) && lx.src[lx.off] == '"' {
		n++
		lx.off++
	}

	for lx.off < len(lx.src) {
		if lx.src[lx.off] != '"' {
			lx.off++

			continue
		}

		m := 0
		for lx.off < len(lx.src) && lx.src[lx.off] == '"' {
			m++
			lx.off++
		}

		if m >= n {
			return
		}
	}
}

// scanHole skips an interpolation hole `{...}` including nested literals.
func (lx *Lexer) scanHole(dollars int) {
	if dollars <= 1 && lx.at(1) == '{' {
		lx.off += 2 // escaped brace

		return
	}

	depth := 0

	for lx.off < len(lx.src) {
		switch c := lx.src[lx.off]; {
		case c == '{':
			depth++
			lx.off++

		case c == '}':
			depth--
			lx.off++

			if depth == 0 {
				return
			}

		case c == '"':
			lx.scanString(false, 0)

		case c == '@' && lx.at(1) == '"', c == '$' && (lx.at(1) == '"' || lx.at(1) == '@'):
			lx.scanPrefixedString()

		case c == '\'':
			lx.scanChar()

		default:
			lx.off++
		}
	}
}

func (lx *Lexer) scanOperator() Kind {
	c, next := lx.src[lx.off], lx.at(1)
	lx.off++

	switch c {
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '[':
		return LBracket
	case ']':
		return RBracket
	case '(':
		return LParen
	case ')':
		return RParen
	case ',':
		return Comma
	case ';':
		return Semicolon
	case '.':
		return Dot
	case '<':
		if next == '=' || next == '<' {
			lx.off++

			return Operator
		}

		return Lt
	case '>':
		// '>>' is left as two tokens to close nested type argument lists.
		if next == '=' {
			lx.off++

			return Operator
		}

		return Gt
	case '=':
		switch next {
		case '>':
			lx.off++

			return Arrow
		case '=':
			lx.off++

			return Operator
		}

		return Assign
	case ':':
		if next == ':' {
			lx.off++

			return ColonColon
		}

		return Colon
	case '?':
		if next == '?' || next == '.' {
			return lx.compound(c, next)
		}

		return Question
	case '*':
		if next == '=' {
			lx.off++

			return Operator
		}

		return Star
	case '!', '+', '-', '/', '%', '&', '|', '^', '~':
		return lx.compound(c, next)
	}

	if c >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(lx.src[lx.off-1:])
		lx.off += size - 1
	}

	return Illegal
}

// compound consumes the second character of a two-character operator.
func (lx *Lexer) compound(c, next byte) Kind {
	switch {
	case next == '=' && c != '?',
		next == c && (c == '+' || c == '-' || c == '&' || c == '|' || c == '?'),
		c == '-' && next == '>',
		c == '?' && next == '.':
		lx.off++
	}

	return Operator
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' || c == '\f' || c == '\v' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isIdentStart(r rune) bool {
	return r == '_' || r < utf8.RuneSelf && isLetter(byte(r)) || r >= utf8.RuneSelf && unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	if r < utf8.RuneSelf {
		c := byte(r)

		return c == '_' || isLetter(c) || isDigit(c)
	}

	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc, unicode.Cf))
}
