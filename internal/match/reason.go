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

package match

// Reason is the outcome of matching a declaration, [Eligible] or the first failed condition.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	Eligible          Reason = iota // eligible
	Invalid                         // invalid declaration
	NotStatic                       // not static
	NotReadOnly                     // not readonly
	Visible                         // externally visible
	NotArray                        // not an array
	Rank                            // not a single rank
	Sized                           // explicit size
	Unresolved                      // unresolved element type
	ElementType                     // element type not allowed
	NoVariables                     // no variables
	MultipleVariables               // multiple variables
	NoInitializer                   // no initializer
)
