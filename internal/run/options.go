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

package run

import (
	"fillmore-labs.com/spanguard/internal/config"
	"fillmore-labs.com/spanguard/internal/match"
	"fillmore-labs.com/spanguard/internal/types"
)

// Options represent configuration options for the spanguard analyzer.
type Options struct {
	// Behavior holds behavioral flags.
	Behavior config.BitMask[config.Config]

	// MultiVariable selects how declarations with more than one variable are handled.
	MultiVariable config.MultiVariable
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior:      config.NewBitMask(config.AllowBoolean),
		MultiVariable: config.MultiFirst,
	}
}

// Matcher returns the [match.Matcher] for these options.
func (r *Options) Matcher() match.Matcher {
	elements := match.DefaultElements
	if !r.Behavior.Enabled(config.AllowBoolean) {
		elements = elements.Without(types.Boolean)
	}

	return match.New(elements, r.MultiVariable == config.MultiReject)
}
