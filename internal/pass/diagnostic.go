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

package pass

import "golang.org/x/tools/go/analysis"

// Severity is the importance of a [Diagnostic].
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Diagnostic is a finding in a source file, with an optional suggested fix.
type Diagnostic struct {
	analysis.Diagnostic
	ID       string
	Severity Severity
}
