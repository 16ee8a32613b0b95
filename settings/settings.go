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

package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/spanguard/analyzer"
)

// FileName is the name of the configuration file.
const FileName = ".spanguard.toml"

// ErrUnknownKey is returned for configuration keys not understood by [Settings].
var ErrUnknownKey = errors.New("unknown configuration key")

// Settings represents the configuration options of a project.
type Settings struct {
	// Generated enables checking of generated files.
	Generated *bool `toml:"generated"`
	// Boolean enables reporting of bool arrays.
	Boolean *bool `toml:"bool"`
	// MultiVariable selects the handling of declarations with several variables.
	MultiVariable *analyzer.MultiVariable `toml:"multi-variable"`
	// Exclude lists doublestar patterns of paths to skip.
	Exclude []string `toml:"exclude"`
	// Jobs limits the number of files checked in parallel.
	Jobs *int `toml:"jobs"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the spanguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Boolean, analyzer.WithBoolean)
	opts = appendOption(opts, s.MultiVariable, analyzer.WithMultiVariable)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Load reads the settings file at path.
func Load(path string) (*Settings, error) {
	var s Settings

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &s, nil
}

// Find walks up from dir to locate the settings file.
func Find(dir string) (path string, ok bool, err error) {
	if dir == "" {
		dir = "."
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("can't resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)

		switch _, err := os.Stat(candidate); {
		case err == nil:
			return candidate, true, nil

		case !errors.Is(err, os.ErrNotExist):
			return "", false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}
