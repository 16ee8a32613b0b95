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

package report

import (
	"bytes"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/spanguard/internal/astutil"
	"fillmore-labs.com/spanguard/internal/config"
	"fillmore-labs.com/spanguard/internal/pass"
	"fillmore-labs.com/spanguard/internal/rewrite"
	"fillmore-labs.com/spanguard/internal/syntax"
)

// createFix replaces the declaration, including its own lines' trivia, with the rewritten properties.
func createFix(p *pass.Pass, decl *syntax.FieldDecl, policy config.MultiVariable) (analysis.SuggestedFix, bool) {
	if !initialized(decl, policy) {
		return analysis.SuggestedFix{}, false // a property needs an expression body
	}

	props, err := transform(decl, policy)
	if err != nil {
		astutil.InternalError(p, p.Range(decl), "Can't rewrite declaration: %s", err)

		return analysis.SuggestedFix{}, false
	}

	var buf bytes.Buffer
	for _, prop := range props {
		if err := syntax.Fprint(&buf, prop); err != nil {
			astutil.InternalError(p, p.Range(decl), "Can't render declaration: %s", err)

			return analysis.SuggestedFix{}, false
		}
	}

	return analysis.SuggestedFix{
		Message: rewrite.Title(decl),
		TextEdits: []analysis.TextEdit{{
			Pos:     p.Pos(decl.FullPos()),
			End:     p.Pos(decl.FullEnd()),
			NewText: buf.Bytes(),
		}},
	}, true
}

// initialized reports whether the variables the fix keeps have initializers.
func initialized(decl *syntax.FieldDecl, policy config.MultiVariable) bool {
	vars := decl.Variables
	if len(vars) == 0 {
		return false
	}

	if policy != config.MultiSplit {
		vars = vars[:1]
	}

	for _, v := range vars {
		if v.Init == nil {
			return false
		}
	}

	return true
}

func transform(decl *syntax.FieldDecl, policy config.MultiVariable) ([]*syntax.PropertyDecl, error) {
	if policy == config.MultiSplit {
		return rewrite.TransformEach(decl)
	}

	prop, err := rewrite.Transform(decl)
	if err != nil {
		return nil, err
	}

	return []*syntax.PropertyDecl{prop}, nil
}
