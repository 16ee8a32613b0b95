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

package config_test

import (
	"errors"
	"flag"
	"testing"

	. "fillmore-labs.com/spanguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated)

	if !b.Enabled(IncludeGenerated) || b.Enabled(AllowBoolean) {
		t.Errorf("Got %08b, want only IncludeGenerated", b.Value())
	}

	b.Set(AllowBoolean, true)
	b.Set(IncludeGenerated, false)

	if got, want := b.Value(), AllowBoolean; got != want {
		t.Errorf("Got %08b, want %08b", got, want)
	}
}

func TestMultiVariable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want MultiVariable
		err  error
	}{
		{"first", MultiFirst, nil},
		{"reject", MultiReject, nil},
		{"split", MultiSplit, nil},
		{"Split", MultiFirst, ErrInvalidPolicy},
		{"", MultiFirst, ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMultiVariable(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiVariableFlag(t *testing.T) {
	t.Parallel()

	var m MultiVariable

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&m, "multi-variable", "policy")

	if err := fs.Parse([]string{"-multi-variable=split"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if m != MultiSplit {
		t.Errorf("Got %v, want %v", m, MultiSplit)
	}

	text, err := m.MarshalText()
	if err != nil || string(text) != "split" {
		t.Errorf("Got MarshalText() = %q, %v, want \"split\"", text, err)
	}

	if err := m.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("Got error %v, want %v", err, ErrInvalidPolicy)
	}
}
