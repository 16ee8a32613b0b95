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

package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceExt is the extension of C# source files.
const SourceExt = ".cs"

// skipDirs are build output and tooling directories never descended into.
var skipDirs = []string{"bin", "obj", ".git", ".vs", ".idea"}

// Discover returns the C# source files named by paths, sorted and without duplicates.
//
// Directories are walked recursively. Files and directories below them whose slash-separated
// path relative to the walked directory matches one of the exclude patterns are skipped.
// Patterns use doublestar syntax, like `**/Migrations/**`. Files named explicitly are
// always included.
func Discover(paths, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("exclude %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(path))

			continue
		}

		found, err := walk(path, exclude)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func walk(root string, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if slices.Contains(skipDirs, d.Name()) || excluded(rel, exclude) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(path), SourceExt) || excluded(rel, exclude) {
			return nil
		}

		files = append(files, path)

		return nil
	})

	return files, err
}

func excluded(rel string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok { // patterns are validated
			return true
		}
	}

	return false
}
