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

package config

import (
	"errors"
	"fmt"
)

// MultiVariable selects how declarations with more than one variable are handled.
type MultiVariable uint8

//go:generate go tool stringer -type MultiVariable -linecomment
const (
	// MultiFirst flags the declaration as a unit, the fix keeps only the first variable.
	MultiFirst MultiVariable = iota // first

	// MultiReject does not flag declarations with more than one variable.
	MultiReject // reject

	// MultiSplit flags the declaration once, the fix emits one property per variable.
	MultiSplit // split
)

// ErrInvalidPolicy is returned for unknown multi-variable policy names.
var ErrInvalidPolicy = errors.New("invalid multi-variable policy")

// ParseMultiVariable converts a policy name to a [MultiVariable].
func ParseMultiVariable(s string) (MultiVariable, error) {
	for m := MultiFirst; m <= MultiSplit; m++ {
		if m.String() == s {
			return m, nil
		}
	}

	return MultiFirst, fmt.Errorf("%w: %q (want first, reject or split)", ErrInvalidPolicy, s)
}

// Set implements [flag.Value].
func (m *MultiVariable) Set(s string) error {
	v, err := ParseMultiVariable(s)
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m MultiVariable) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *MultiVariable) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
