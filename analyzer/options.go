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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/spanguard/internal/config"
	"fillmore-labs.com/spanguard/internal/run"
)

// Option configures specific behavior of a [New] spanguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithBoolean is an [Option] to configure whether bool arrays are reported.
func WithBoolean(boolean bool) Option { return booleanOption{boolean: boolean} }

type booleanOption struct{ boolean bool }

func (o booleanOption) apply(r *run.Options) {
	r.Behavior.Set(config.AllowBoolean, o.boolean)
}

func (o booleanOption) LogAttr() slog.Attr {
	return slog.Bool("bool", o.boolean)
}

// MultiVariable selects how declarations with more than one variable are handled.
type MultiVariable = config.MultiVariable

const (
	// MultiFirst reports the declaration, the fix keeps only the first variable.
	MultiFirst = config.MultiFirst

	// MultiReject does not report declarations with more than one variable.
	MultiReject = config.MultiReject

	// MultiSplit reports the declaration, the fix emits one property per variable.
	MultiSplit = config.MultiSplit
)

// ParseMultiVariable converts a policy name ("first", "reject" or "split") to a [MultiVariable].
func ParseMultiVariable(s string) (MultiVariable, error) {
	return config.ParseMultiVariable(s)
}

// WithMultiVariable is an [Option] to configure the handling of declarations with more than one variable.
func WithMultiVariable(policy MultiVariable) Option { return multiVariableOption{policy: policy} }

type multiVariableOption struct{ policy MultiVariable }

func (o multiVariableOption) apply(r *run.Options) {
	r.MultiVariable = o.policy
}

func (o multiVariableOption) LogAttr() slog.Attr {
	return slog.String("multi-variable", o.policy.String())
}
