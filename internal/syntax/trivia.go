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

import "strings"

// TriviaKind classifies formatting and comment payload between tokens.
type TriviaKind uint8

const (
	// Space is a run of blanks and tabs.
	Space TriviaKind = iota

	// Newline is a single line break ("\n", "\r\n" or "\r").
	Newline

	// LineComment is a `//` comment, excluding the line break.
	LineComment

	// BlockComment is a `/* ... */` comment.
	BlockComment

	// DocComment is a `///` documentation comment line.
	DocComment

	// Directive is a preprocessor line such as `#pragma` or `#region`.
	Directive
)

// Trivia is a piece of non-significant source text.
type Trivia struct {
	Kind TriviaKind
	Pos  int
	End  int
	Text string
}

// IsComment reports whether the trivia is a comment of any kind.
func (t Trivia) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment || t.Kind == DocComment
}

// SplitTrivia splits the trivia between two tokens into the part trailing the
// previous token (up to and including the first line break) and the part leading
// the next token.
func SplitTrivia(ts []Trivia) (trailing, leading []Trivia) {
	for i, t := range ts {
		if t.Kind == Newline {
			return ts[:i+1], ts[i+1:]
		}
	}

	return ts, nil
}

// TriviaText concatenates the source text of the trivia.
func TriviaText(ts []Trivia) string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.Text) // ignore error
	}

	return b.String()
}

// Indentation returns the whitespace trivia after the last line break.
func Indentation(ts []Trivia) []Trivia {
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i].Kind != Space {
			return ts[i+1:]
		}
	}

	return ts
}
