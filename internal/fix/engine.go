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

package fix

import (
	"cmp"
	"errors"
	"go/token"
	"slices"

	"fillmore-labs.com/spanguard/internal/pass"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines the selection strategy for fixes.
type ApplyMode uint8

//go:generate go tool stringer -type ApplyMode -linecomment
const (
	ApplyModeAll  ApplyMode = iota // all
	ApplyModeOnce                  // once
)

// Skipped records a fix that was not applied.
type Skipped struct {
	Title  string
	Pos    token.Pos
	Reason string
}

// Result is the outcome of [Apply] for one file.
type Result struct {
	Src     []byte
	Applied int
	Skipped []Skipped
}

type candidate struct {
	diag  pass.Diagnostic
	order int
}

// Apply applies the first suggested fix of the selected diagnostics to src.
//
// Candidates are ordered by position. A fix whose edits conflict with an already selected fix is
// skipped, a later run on the updated source picks it up again.
func Apply(file *token.File, src []byte, diagnostics []pass.Diagnostic, mode ApplyMode) (*Result, error) {
	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return &Result{Src: src}, ErrNoFixes
	}

	result := &Result{}

	var accepted []span

	for _, c := range candidates {
		fix := c.diag.SuggestedFixes[0]

		spans, err := toSpans(file, src, fix.TextEdits)
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{fix.Message, c.diag.Pos, err.Error()})

			continue
		}

		if conflicts(accepted, spans) {
			result.Skipped = append(result.Skipped, Skipped{fix.Message, c.diag.Pos, "conflicts with previously applied edits"})

			continue
		}

		accepted = append(accepted, spans...)
		result.Applied++

		if mode == ApplyModeOnce {
			break
		}
	}

	if result.Applied == 0 {
		result.Src = src

		return result, ErrNoFixes
	}

	out, err := splice(src, accepted)
	if err != nil {
		return nil, err
	}

	result.Src = out

	return result, nil
}

func gatherCandidates(diagnostics []pass.Diagnostic) []candidate {
	var candidates []candidate

	for i, d := range diagnostics {
		if len(d.SuggestedFixes) == 0 || len(d.SuggestedFixes[0].TextEdits) == 0 {
			continue
		}

		candidates = append(candidates, candidate{diag: d, order: i})
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.diag.Pos, b.diag.Pos), cmp.Compare(a.order, b.order))
	})

	return candidates
}

func conflicts(accepted, spans []span) bool {
	for _, s := range spans {
		for _, a := range accepted {
			if s.overlaps(a) {
				return true
			}
		}
	}

	return false
}
