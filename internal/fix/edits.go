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

// Package fix applies suggested fixes to source files.
package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when text edits overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrOutOfRange is returned for edits outside of the file.
	ErrOutOfRange = errors.New("edit span out of range")
)

// span is a text edit converted to byte offsets.
type span struct {
	pos, end int
	text     []byte
}

func (s span) overlaps(o span) bool {
	if s.pos == s.end && o.pos == o.end {
		return false // insertions at the same offset are applied in order
	}

	return s.pos < o.end && o.pos < s.end
}

// ApplyEdits applies text edits to the content src of file. Identical edits are applied once.
func ApplyEdits(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	spans, err := toSpans(file, src, edits)
	if err != nil {
		return nil, err
	}

	return splice(src, spans)
}

func toSpans(file *token.File, src []byte, edits []analysis.TextEdit) ([]span, error) {
	spans := make([]span, 0, len(edits))

	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		base := token.Pos(file.Base())
		if e.Pos < base || end < e.Pos || int(end-base) > len(src) {
			return nil, fmt.Errorf("%w: [%d, %d) in %s", ErrOutOfRange, e.Pos, end, file.Name())
		}

		spans = append(spans, span{pos: int(e.Pos - base), end: int(end - base), text: e.NewText})
	}

	return spans, nil
}

func splice(src []byte, spans []span) ([]byte, error) {
	slices.SortStableFunc(spans, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.pos, b.pos), cmp.Compare(a.end, b.end))
	})

	spans = slices.CompactFunc(spans, func(a, b span) bool {
		return a.pos == b.pos && a.end == b.end && bytes.Equal(a.text, b.text)
	})

	var (
		out  bytes.Buffer
		last int
	)

	for i, s := range spans {
		if i > 0 && s.overlaps(spans[i-1]) {
			return nil, fmt.Errorf("%w at offset %d", ErrOverlap, s.pos)
		}

		out.Write(src[last:s.pos]) // ignore error
		out.Write(s.text)          // ignore error
		last = s.end
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
