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

// Package report turns eligible declarations into diagnostics with suggested fixes.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/spanguard/internal/config"
	"fillmore-labs.com/spanguard/internal/match"
	"fillmore-labs.com/spanguard/internal/pass"
	"fillmore-labs.com/spanguard/internal/syntax"
)

const (
	// ID identifies diagnostics of this analyzer.
	ID = "PreferReadOnlySpansOverByteArrays"

	// Category is the diagnostic category.
	Category = "Performance"
)

// ProcessDiagnostics reports one diagnostic per eligible declaration and returns the number reported.
//
// A suggested fix replacing the declaration with a read-only span property is attached when
// the declaration can be rewritten under the multi-variable policy.
func ProcessDiagnostics(ctx context.Context, p *pass.Pass, matches []match.Result, policy config.MultiVariable) int {
	defer trace.StartRegion(ctx, "Report").End()

	reported := 0

	for _, m := range matches {
		if !m.Eligible {
			continue
		}

		decl := m.Decl

		diagnostic := analysis.Diagnostic{
			Pos:      p.Pos(decl.Pos()),
			End:      p.Pos(decl.End()),
			Category: Category,
			Message:  createMessage(p.Src, decl),
		}

		if fix, ok := createFix(p, decl, policy); ok {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{fix}
		}

		p.Report(pass.Diagnostic{Diagnostic: diagnostic, ID: ID, Severity: pass.SeverityWarning})
		reported++
	}

	return reported
}

// createMessage quotes the declaration without its surrounding trivia.
func createMessage(src []byte, decl *syntax.FieldDecl) string {
	return fmt.Sprintf("Field declaration '%s' can be improved by changing its type.", syntax.Source(src, decl))
}
