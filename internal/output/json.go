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

package output

import (
	"go/token"

	"github.com/valyala/fastjson"

	"fillmore-labs.com/spanguard/internal/driver"
	"fillmore-labs.com/spanguard/internal/pass"
)

func (p *Printer) checkJSON(fset *token.FileSet, results []driver.FileResult) error {
	var a fastjson.Arena

	diagnostics := a.NewArray()
	n := 0

	for _, r := range results {
		if r.Report == nil {
			continue
		}

		for _, d := range r.Report.Diagnostics {
			diagnostics.SetArrayItem(n, diagnosticJSON(&a, fset, d))
			n++
		}
	}

	root := a.NewObject()
	root.Set("diagnostics", diagnostics)
	root.Set("errors", errorsJSON(&a, results))
	root.Set("summary", summaryJSON(&a, driver.Summarize(results)))

	return p.writeJSON(root)
}

func (p *Printer) fixJSON(fset *token.FileSet, results []driver.FileResult, write bool) error {
	var a fastjson.Arena

	files := a.NewArray()
	n := 0

	for _, r := range results {
		if r.Fix == nil {
			continue
		}

		skipped := a.NewArray()
		for i, s := range r.Fix.Skipped {
			o := a.NewObject()
			o.Set("title", a.NewString(s.Title))
			o.Set("position", a.NewString(position(fset, s.Pos)))
			o.Set("reason", a.NewString(s.Reason))
			skipped.SetArrayItem(i, o)
		}

		o := a.NewObject()
		o.Set("file", a.NewString(r.Path))
		o.Set("applied", a.NewNumberInt(r.Fix.Applied))
		o.Set("skipped", skipped)
		files.SetArrayItem(n, o)
		n++
	}

	root := a.NewObject()
	root.Set("written", boolJSON(&a, write))
	root.Set("files", files)
	root.Set("errors", errorsJSON(&a, results))
	root.Set("summary", summaryJSON(&a, driver.Summarize(results)))

	return p.writeJSON(root)
}

func (p *Printer) writeJSON(v *fastjson.Value) error {
	_, err := p.w.Write(append(v.MarshalTo(nil), '\n'))

	return err
}

func diagnosticJSON(a *fastjson.Arena, fset *token.FileSet, d pass.Diagnostic) *fastjson.Value {
	start, end := fset.Position(d.Pos), fset.Position(d.End)

	fixes := a.NewArray()
	for i, f := range d.SuggestedFixes {
		edits := a.NewArray()
		for j, e := range f.TextEdits {
			edit := a.NewObject()
			edit.Set("offset", a.NewNumberInt(fset.Position(e.Pos).Offset))
			edit.Set("end", a.NewNumberInt(fset.Position(e.End).Offset))
			edit.Set("newText", a.NewString(string(e.NewText)))
			edits.SetArrayItem(j, edit)
		}

		fix := a.NewObject()
		fix.Set("message", a.NewString(f.Message))
		fix.Set("edits", edits)
		fixes.SetArrayItem(i, fix)
	}

	o := a.NewObject()
	o.Set("file", a.NewString(start.Filename))
	o.Set("line", a.NewNumberInt(start.Line))
	o.Set("column", a.NewNumberInt(start.Column))
	o.Set("endLine", a.NewNumberInt(end.Line))
	o.Set("endColumn", a.NewNumberInt(end.Column))
	o.Set("id", a.NewString(d.ID))
	o.Set("severity", a.NewString(d.Severity.String()))
	o.Set("category", a.NewString(d.Category))
	o.Set("message", a.NewString(d.Message))
	o.Set("fixes", fixes)

	return o
}

func errorsJSON(a *fastjson.Arena, results []driver.FileResult) *fastjson.Value {
	errs := a.NewArray()
	n := 0

	for _, r := range results {
		if r.Err == nil {
			continue
		}

		o := a.NewObject()
		o.Set("file", a.NewString(r.Path))
		o.Set("message", a.NewString(r.Err.Error()))
		errs.SetArrayItem(n, o)
		n++
	}

	return errs
}

func summaryJSON(a *fastjson.Arena, s driver.Summary) *fastjson.Value {
	o := a.NewObject()
	o.Set("files", a.NewNumberInt(s.Files))
	o.Set("generated", a.NewNumberInt(s.Generated))
	o.Set("diagnostics", a.NewNumberInt(s.Diagnostics))
	o.Set("fixes", a.NewNumberInt(s.Fixes))
	o.Set("errors", a.NewNumberInt(s.Errors))

	return o
}

func boolJSON(a *fastjson.Arena, b bool) *fastjson.Value {
	if b {
		return a.NewTrue()
	}

	return a.NewFalse()
}
