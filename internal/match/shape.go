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

import "fillmore-labs.com/spanguard/internal/syntax"

// StorageClass checks that a declaration is both static and readonly.
func StorageClass(mods syntax.ModifierSet) Reason {
	switch {
	case !mods.Has(syntax.Static):
		return NotStatic

	case !mods.Has(syntax.ReadOnly):
		return NotReadOnly
	}

	return Eligible
}

// Accessible reports whether a declaration is invisible outside its assembly. This holds when
// it is private or internal, including `protected internal` and `private protected`, or has no
// explicit accessibility outside an interface. Interface members are public by default.
func Accessible(mods syntax.ModifierSet, inInterface bool) bool {
	if mods.HasAny(syntax.Private, syntax.Internal) {
		return true
	}

	return !inInterface && !mods.HasAny(syntax.Public, syntax.Protected)
}

// ArrayShape returns the array type when t is a single-rank array without explicit size.
func ArrayShape(t syntax.Type) (*syntax.ArrayType, Reason) {
	arr, ok := t.(*syntax.ArrayType)
	if !ok || arr == nil || arr.Elem == nil {
		return nil, NotArray
	}

	if len(arr.Ranks) != 1 || arr.Ranks[0] == nil || len(arr.Ranks[0].Sizes) != 1 {
		return nil, Rank
	}

	if !arr.Ranks[0].Omitted() {
		return nil, Sized
	}

	return arr, Eligible
}
