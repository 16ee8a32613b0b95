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
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/spanguard/analyzer"
	"fillmore-labs.com/spanguard/internal/driver"
	"fillmore-labs.com/spanguard/internal/output"
	"fillmore-labs.com/spanguard/settings"
)

var (
	errFindings     = errors.New("diagnostics found")
	errFailed       = errors.New("some files could not be processed")
	errInvalidColor = errors.New("invalid color mode")
)

// cli holds the state of one command line invocation.
type cli struct {
	analyzer *analyzer.Analyzer

	config      string
	color       string
	format      output.Format
	jobs        int
	verbose     bool
	metricsFile string
	exclude     []string
}

func newRootCmd(a *analyzer.Analyzer) *cobra.Command {
	c := &cli{analyzer: a}

	root := &cobra.Command{
		Use:   "spanguard",
		Short: "Find static readonly byte arrays that can be read-only span properties",
		Long: `Spanguard checks C# sources for static readonly fields of byte, sbyte or bool arrays
that are not publicly visible. Such fields can be expression-bodied ReadOnlySpan<T>
properties, which the compiler backs with data embedded in the assembly.`,
		Version:           version(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.config, "config", "", "configuration file (default "+settings.FileName+" in the checked directory or a parent)")
	flags.StringVar(&c.color, "color", "auto", "colorize output (auto|on|off)")
	flags.Var(&c.format, "format", "output format (text|json)")
	flags.IntVarP(&c.jobs, "jobs", "j", 0, "number of files processed in parallel (default GOMAXPROCS)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug information")
	flags.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flags.StringSliceVar(&c.exclude, "exclude", nil, "doublestar patterns of paths to skip")
	flags.AddGoFlagSet(&a.Flags)

	root.AddCommand(c.checkCmd(), c.fixCmd())

	return root
}

// setup configures logging and applies the project settings.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	path := c.config
	if path == "" {
		found, ok, err := settings.Find(startDir(args))
		if err != nil || !ok {
			return err
		}

		path = found
	}

	s, err := settings.Load(path)
	if err != nil {
		return err
	}

	opts := s.Options()
	slog.DebugContext(cmd.Context(), "Loaded settings",
		slog.String("file", path),
		slog.Any("options", analyzer.Options(opts)))

	return c.configure(cmd, s, opts)
}

// configure applies settings to the analyzer, keeping values set on the command line.
func (c *cli) configure(cmd *cobra.Command, s *settings.Settings, opts []analyzer.Option) error {
	fs := &c.analyzer.Flags

	changed := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		if cmd.Flags().Changed(f.Name) {
			changed[f.Name] = f.Value.String()
		}
	})

	c.analyzer.Configure(opts...)

	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}

	if s.Jobs != nil && !cmd.Flags().Changed("jobs") {
		c.jobs = *s.Jobs
	}

	c.exclude = append(s.Exclude, c.exclude...)

	return nil
}

// startDir is the directory the settings file search starts in.
func startDir(args []string) string {
	if len(args) == 0 {
		return "."
	}

	if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
		return filepath.Dir(args[0])
	}

	return args[0]
}

func (c *cli) discover(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	return driver.Discover(args, c.exclude)
}

func (c *cli) printer(cmd *cobra.Command) (*output.Printer, error) {
	var colorize bool

	switch c.color {
	case "auto":
		colorize = !color.NoColor

	case "on", "always":
		colorize = true

	case "off", "never":

	default:
		return nil, fmt.Errorf("%w: %q (want auto, on or off)", errInvalidColor, c.color)
	}

	return output.NewPrinter(cmd.OutOrStdout(), c.format, colorize), nil
}

func (c *cli) writeMetrics(d *driver.Driver) error {
	if c.metricsFile == "" {
		return nil
	}

	f, err := os.Create(c.metricsFile)
	if err != nil {
		return err
	}

	d.Metrics().WritePrometheus(f)

	return f.Close()
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}
