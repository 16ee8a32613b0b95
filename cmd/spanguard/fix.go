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
	"fillmore-labs.com/spanguard/internal/fix"
)

type fixOptions struct {
	dryRun bool
	once   bool
}

func (c *cli) fixCmd() *cobra.Command {
	var o fixOptions

	cmd := &cobra.Command{
		Use:   "fix [flags] [path...]",
		Short: "Rewrite array fields into read-only span properties",
		Long: `Fix applies the suggested fixes to the C# files named on the command line, or found
below the named directories. Conflicting fixes are skipped and reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFix(cmd, args, o)
		},
	}

	cmd.Flags().BoolVarP(&o.dryRun, "dry-run", "n", false, "report the fixes without writing files")
	cmd.Flags().BoolVar(&o.once, "once", false, "apply only the first fix of each file")

	return cmd
}

func (c *cli) runFix(cmd *cobra.Command, args []string, o fixOptions) error {
	p, err := c.printer(cmd)
	if err != nil {
		return err
	}

	files, err := c.discover(args)
	if err != nil {
		return err
	}

	mode := fix.ApplyModeAll
	if o.once {
		mode = fix.ApplyModeOnce
	}

	d := driver.New(c.analyzer, c.jobs)
	fset := token.NewFileSet()

	results, err := d.Fix(cmd.Context(), fset, files, mode, !o.dryRun)
	if err != nil {
		return err
	}

	if err := p.Fix(fset, results, !o.dryRun); err != nil {
		return err
	}

	if err := c.writeMetrics(d); err != nil {
		return err
	}

	if driver.Summarize(results).Errors > 0 {
		return errFailed
	}

	return nil
}
