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

package main

import (
	"go/token"

	"github.com/spf13/cobra"

	"fillmore-labs.com/spanguard/internal/driver"
)

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] [path...]",
		Short: "Report array fields that can be read-only span properties",
		Long: `Check analyzes the C# files named on the command line, or found below the named
directories, and reports each eligible field declaration. The exit status is 1 when
diagnostics are reported.`,
		RunE: c.runCheck,
	}
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	p, err := c.printer(cmd)
	if err != nil {
		return err
	}

	files, err := c.discover(args)
	if err != nil {
		return err
	}

	d := driver.New(c.analyzer, c.jobs)
	fset := token.NewFileSet()

	results, err := d.Check(cmd.Context(), fset, files)
	if err != nil {
		return err
	}

	if err := p.Check(fset, results); err != nil {
		return err
	}

	if err := c.writeMetrics(d); err != nil {
		return err
	}

	switch s := driver.Summarize(results); {
	case s.Errors > 0:
		return errFailed

	case s.Diagnostics > 0:
		return errFindings
	}

	return nil
}
