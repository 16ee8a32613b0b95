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
	"slices"
	"strings"

	"fillmore-labs.com/spanguard/internal/syntax"
)

// region is a half-open byte range [start, end).
type region struct{ start, end int }

// Suppressed reports whether a diagnostic at offset is disabled by a `#pragma warning` directive.
func (c CurrentFile) Suppressed(offset int) bool {
	_, found := slices.BinarySearchFunc(c.suppressed, offset, func(r region, off int) int {
		switch {
		case r.end <= off:
			return -1
		case r.start > off:
			return 1
		default:
			return 0
		}
	})

	return found
}

// pragmaRegions computes the ranges where warnings with the given ID are disabled.
func pragmaRegions(directives []syntax.Trivia, id string) []region {
	var (
		regions  []region
		disabled bool
		start    int
	)

	for _, d := range directives {
		action, ids, ok := parsePragmaWarning(d.Text)
		if !ok || len(ids) > 0 && !slices.Contains(ids, id) {
			continue
		}

		switch {
		case action == "disable" && !disabled:
			disabled, start = true, d.End

		case action == "restore" && disabled:
			disabled = false
			regions = append(regions, region{start, d.Pos})
		}
	}

	if disabled {
		regions = append(regions, region{start, int(^uint(0) >> 1)})
	}

	return regions
}

// parsePragmaWarning parses `#pragma warning disable|restore [id, ...]`.
func parsePragmaWarning(line string) (action string, ids []string, ok bool) {
	text, _, _ := strings.Cut(line, "//")

	rest, ok := strings.CutPrefix(strings.TrimSpace(strings.TrimPrefix(text, "#")), "pragma")
	if !ok {
		return "", nil, false
	}

	fields := strings.Fields(rest)
	if len(fields) < 2 || fields[0] != "warning" {
		return "", nil, false
	}

	action = fields[1]
	if action != "disable" && action != "restore" {
		return "", nil, false
	}

	for _, f := range fields[2:] {
		for id := range strings.SplitSeq(f, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	return action, ids, true
}
