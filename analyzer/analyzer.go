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

package analyzer

import (
	"context"
	"flag"
	"go/token"

	"fillmore-labs.com/spanguard/internal/pass"
	"fillmore-labs.com/spanguard/internal/run"
)

// Public API constants for the spanguard analyzer.
const (
	name = "spanguard"
	doc  = `spanguard detects static readonly byte arrays that can be read-only span properties`
	url  = "https://pkg.go.dev/fillmore-labs.com/spanguard"
)

// Diagnostic is a finding in a C# source file, with an optional suggested fix.
type Diagnostic = pass.Diagnostic

// Analyzer checks C# source files.
type Analyzer struct {
	Name string
	Doc  string
	URL  string

	// Flags defines the flags accepted by the analyzer. Parsing them changes its configuration.
	Flags flag.FlagSet

	options *run.Options
}

// New creates a new instance of the spanguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Analyzer{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}

	registerFlags(&a.Flags, r)

	return a
}

// Default is a pre-configured [Analyzer] for detecting arrays that can be read-only spans.
var Default = New()

// Configure applies options to an existing analyzer.
func (a *Analyzer) Configure(opts ...Option) {
	Options(opts).apply(a.options)
}

// Report is the outcome of checking one source file.
type Report struct {
	// File is the file as registered in the [token.FileSet] passed to [Analyzer.Check].
	File *token.File

	// Src is the analyzed content.
	Src []byte

	// Diagnostics holds the findings in source order.
	Diagnostics []Diagnostic

	// Declarations is the number of field declarations inspected.
	Declarations int

	// Generated is true when the file was skipped as generated code.
	Generated bool
}

// Check analyzes the C# source src, registering it as filename in fset.
// It is safe for concurrent use with the same fset.
func (a *Analyzer) Check(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*Report, error) {
	var diagnostics []Diagnostic

	p := pass.New(fset, filename, src, func(d Diagnostic) { diagnostics = append(diagnostics, d) })

	res, err := a.options.Run(ctx, p)
	if err != nil {
		return nil, err
	}

	return &Report{
		File:         p.File,
		Src:          src,
		Diagnostics:  diagnostics,
		Declarations: res.Declarations,
		Generated:    res.Generated,
	}, nil
}
