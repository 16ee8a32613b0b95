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

// Package types resolves C# type references to alias-independent identities.
package types

import "fillmore-labs.com/spanguard/internal/syntax"

// Kind classifies a resolved type. All kinds except [Named] are special types of the
// System namespace.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	Invalid Kind = iota // invalid
	Named               // named
	SByte               // System.SByte
	Byte                // System.Byte
	Boolean             // System.Boolean
	Int16               // System.Int16
	UInt16              // System.UInt16
	Int32               // System.Int32
	UInt32              // System.UInt32
	Int64               // System.Int64
	UInt64              // System.UInt64
	Char                // System.Char
	Single              // System.Single
	Double              // System.Double
	Decimal             // System.Decimal
	String              // System.String
	Object              // System.Object
	IntPtr              // System.IntPtr
	UIntPtr             // System.UIntPtr
)

// Identity is the resolved identity of a type, independent of its spelling.
type Identity struct {
	Kind Kind
	Name string // fully qualified metadata name
}

// Special returns the identity of a special type.
func Special(k Kind) Identity {
	return Identity{Kind: k, Name: k.String()}
}

// Resolver resolves type references of one syntax tree.
type Resolver interface {
	ResolveType(t syntax.Type) (Identity, bool)
}

// ResolverFunc adapts a function to the [Resolver] interface.
type ResolverFunc func(t syntax.Type) (Identity, bool)

// ResolveType calls f(t).
func (f ResolverFunc) ResolveType(t syntax.Type) (Identity, bool) { return f(t) }

// KindSet is a set of [Kind] values.
type KindSet uint32

// NewKindSet creates a [KindSet] with the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}

	return s
}

// Contains reports whether k is in the set.
func (s KindSet) Contains(k Kind) bool { return s&(1<<k) != 0 }

// Without returns the set excluding k.
func (s KindSet) Without(k Kind) KindSet { return s &^ (1 << k) }
