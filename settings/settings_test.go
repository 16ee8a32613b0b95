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

package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/spanguard/analyzer"
	. "fillmore-labs.com/spanguard/settings"
)

const allSettings = `
generated = true
bool = false
multi-variable = "split"
exclude = ["**/Migrations/**"]
jobs = 2
`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, 3},
		{"none", ``, 0},
		{"partial", `bool = true`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var s Settings
			if _, err := toml.Decode(tc.settings, &s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), analyzer.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Can't write settings: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, t.TempDir(), allSettings)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	generated, boolean, policy, jobs := true, false, analyzer.MultiSplit, 2
	want := &Settings{
		Generated:     &generated,
		Boolean:       &boolean,
		MultiVariable: &policy,
		Exclude:       []string{"**/Migrations/**"},
		Jobs:          &jobs,
	}

	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "UnknownKey", content: "bools = true\n", wantErr: ErrUnknownKey},
		{name: "Policy", content: "multi-variable = \"all\"\n"},
		{name: "Syntax", content: "bool = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeSettings(t, t.TempDir(), tt.content))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	want := writeSettings(t, root, "")

	nested := filepath.Join(root, "src", "Lib")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("Can't create directory: %v", err)
	}

	for _, dir := range []string{root, nested} {
		path, ok, err := Find(dir)
		if err != nil {
			t.Fatalf("Find(%s) failed: %v", dir, err)
		}

		if !ok || path != want {
			t.Errorf("Find(%s) = %q, %t, want %q, true", dir, path, ok, want)
		}
	}
}
