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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/spanguard/internal/syntax"
)

// spanguard is the name of the linter.
const spanguard = "spanguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file       *syntax.File
	handle     *token.File
	generated  bool
	suppressed []region
}

// NewCurrentFile creates a new [CurrentFile] from a [token.File] and a parsed [syntax.File].
// Diagnostics with the given ID can be suppressed by `#pragma warning disable` directives.
func NewCurrentFile(handle *token.File, file *syntax.File, id string) CurrentFile {
	if handle == nil || file == nil {
		return CurrentFile{}
	}

	generated := IsGenerated(handle.Name(), file)
	suppressed := pragmaRegions(file.Directives, id)

	return CurrentFile{file, handle, generated, suppressed}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(n syntax.Node) int {
	return c.line(n.End()) - c.line(n.Pos()) + 1
}

func (c CurrentFile) line(offset int) int {
	return c.handle.Line(c.handle.Pos(offset))
}

// NoLintComment checks if a declaration ending at offset is followed by a //nolint:spanguard comment.
func (c CurrentFile) NoLintComment(offset int) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the declaration
	i, _ := slices.BinarySearchFunc(c.file.Comments, offset,
		func(t syntax.Trivia, off int) int { return t.Pos - off })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i]

	if c.line(comment.Pos) != c.line(offset) {
		return false // not on this line
	}

	return CommentHasNoLint(comment.Text)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:spanguard` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == spanguard || l == "all" {
			return true
		}
	}

	return false
}
