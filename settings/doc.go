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

// Package settings reads the project configuration of the [spanguard] command.
//
// # Usage
//
// Add a file `.spanguard.toml` to your project root:
//
//	generated = false
//	bool = true
//	multi-variable = "split"
//	exclude = ["**/Migrations/**", "**/*.Designer.cs"]
//	jobs = 4
//
// The command looks for the file in the current directory and its parents.
// Command line flags take precedence over the file.
//
// [spanguard]: https://github.com/fillmore-labs/spanguard#spanguard
package settings
