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
	"path/filepath"
	"strings"

	"fillmore-labs.com/spanguard/internal/syntax"
)

var generatedSuffixes = []string{".designer.cs", ".generated.cs", ".g.cs", ".g.i.cs"}

// IsGenerated reports whether a source file is generated code, judged by its name or an
// `<auto-generated>` marker in the comments before the first token.
func IsGenerated(filename string, file *syntax.File) bool {
	base := strings.ToLower(filepath.Base(filename))
	if strings.HasPrefix(base, "temporarygeneratedfile_") {
		return true
	}

	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	for _, t := range file.Header {
		if !t.IsComment() {
			continue
		}

		if text := strings.ToLower(t.Text); strings.Contains(text, "<auto-generated") || strings.Contains(text, "<autogenerated") {
			return true
		}
	}

	return false
}
