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

// Package analyzer implements the spanguard static analysis pass for C# sources.
//
// # Overview
//
// spanguard detects static readonly fields holding arrays of single-byte elements
// (byte, sbyte and bool) that can be replaced by a read-only span property. Such
// properties refer to data embedded in the assembly and avoid allocating the array
// at type initialization.
//
// # Example
//
// Before:
//
//	class Tables
//	{
//	    static readonly byte[] Magic = new byte[] { 0x7f, 0x45, 0x4c, 0x46 };
//	}
//
// After applying spanguard's suggested fix:
//
//	class Tables
//	{
//	    static ReadOnlySpan<byte> Magic => new byte[] { 0x7f, 0x45, 0x4c, 0x46 };
//	}
//
// # Reported Declarations
//
// A field declaration is reported when it is static and readonly, not visible outside
// its assembly (no public or protected modifier unless combined with private or internal)
// and its type is a single-dimensional array without explicit size.
//
// Diagnostics can be suppressed with a trailing `// nolint:spanguard` comment or with
// `#pragma warning disable PreferReadOnlySpansOverByteArrays`.
package analyzer
