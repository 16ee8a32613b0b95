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
	"errors"
	"fmt"
)

// Format selects how results are printed.
type Format uint8

//go:generate go tool stringer -type Format -linecomment
const (
	// FormatText prints one line per diagnostic, optionally colored.
	FormatText Format = iota // text

	// FormatJSON prints a single JSON document.
	FormatJSON // json
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the [Format] named s.
func ParseFormat(s string) (Format, error) {
	for f := FormatText; f <= FormatJSON; f++ {
		if f.String() == s {
			return f, nil
		}
	}

	return FormatText, fmt.Errorf("%w: %q (want text or json)", ErrUnknownFormat, s)
}

// Set implements the flag value interface.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// Type returns the value type name shown in command line help.
func (*Format) Type() string { return "format" }
