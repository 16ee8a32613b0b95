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

package run_test

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"fillmore-labs.com/spanguard/internal/config"
	"fillmore-labs.com/spanguard/internal/pass"
	. "fillmore-labs.com/spanguard/internal/run"
)

const source = `using System;

class C
{
    static readonly byte[] a = { 1 };
    static readonly Boolean[] b = { true };
    static readonly byte[] c = { 1 }, d = { 2 };
#pragma warning disable PreferReadOnlySpansOverByteArrays
    static readonly byte[] e = { 1 };
#pragma warning restore PreferReadOnlySpansOverByteArrays
    static readonly byte[] f = { 1 }; // nolint:spanguard
    public static readonly byte[] g = { 1 };
}
`

func TestRun(t *testing.T) {
	t.Parallel()

	generated := config.NewBitMask(config.IncludeGenerated, config.AllowBoolean)

	tests := []struct {
		name     string
		filename string
		options  Options
		reported int
		skipped  bool
	}{
		{"Default", "a.cs", *DefaultOptions(), 3, false},
		{"No boolean", "a.cs", Options{}, 2, false},
		{"Reject", "a.cs", Options{Behavior: config.NewBitMask(config.AllowBoolean), MultiVariable: config.MultiReject}, 2, false},
		{"Generated", "a.g.cs", *DefaultOptions(), 0, true},
		{"Include generated", "a.g.cs", Options{Behavior: generated}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var diags []pass.Diagnostic

			p := pass.New(token.NewFileSet(), tt.filename, []byte(source), func(d pass.Diagnostic) { diags = append(diags, d) })

			res, err := tt.options.Run(context.Background(), p)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			if res.Declarations != 6 {
				t.Errorf("Got %d declarations, want 6", res.Declarations)
			}

			if res.Reported != tt.reported || len(diags) != tt.reported {
				t.Errorf("Got %d reported (%d diagnostics), want %d", res.Reported, len(diags), tt.reported)
			}

			if res.Generated != tt.skipped {
				t.Errorf("Got Generated = %t, want %t", res.Generated, tt.skipped)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	if _, err := DefaultOptions().Run(context.Background(), &pass.Pass{}); !errors.Is(err, ErrFileMissing) {
		t.Errorf("Got error %v, want %v", err, ErrFileMissing)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := pass.New(token.NewFileSet(), "a.cs", []byte(source), func(pass.Diagnostic) {})
	if _, err := DefaultOptions().Run(ctx, p); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}
