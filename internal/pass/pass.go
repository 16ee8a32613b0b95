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

// Package pass defines the unit of work for analyzing one C# source file.
package pass

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/spanguard/internal/syntax"
)

// Pass provides the information for analyzing a single source file.
type Pass struct {
	Fset   *token.FileSet
	File   *token.File
	Src    []byte
	Syntax *syntax.File
	Report func(Diagnostic)
}

// New parses src and registers it as filename in fset.
func New(fset *token.FileSet, filename string, src []byte, report func(Diagnostic)) *Pass {
	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	return &Pass{
		Fset:   fset,
		File:   file,
		Src:    src,
		Syntax: syntax.Parse(src),
		Report: report,
	}
}

// Pos converts a byte offset into a [token.Pos].
func (p *Pass) Pos(offset int) token.Pos {
	return p.File.Pos(offset)
}

// Range returns the position range of a parsed node.
func (p *Pass) Range(n syntax.Node) analysis.Range {
	return Span{p.Pos(n.Pos()), p.Pos(n.End())}
}

// Position returns the line and column of pos.
func (p *Pass) Position(pos token.Pos) token.Position {
	return p.Fset.PositionFor(pos, false)
}

// Span is a [token.Pos] range implementing [analysis.Range].
type Span struct {
	Start, Stop token.Pos
}

func (s Span) Pos() token.Pos { return s.Start }
func (s Span) End() token.Pos { return s.Stop }
