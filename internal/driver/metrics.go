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

package driver

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Metrics counts the work done by a [Driver].
type Metrics struct {
	set *metrics.Set

	files        *metrics.Counter
	generated    *metrics.Counter
	declarations *metrics.Counter
	diagnostics  *metrics.Counter
	fixes        *metrics.Counter
	errors       *metrics.Counter
	duration     *metrics.Histogram
}

// NewMetrics creates an unregistered metrics set.
func NewMetrics() *Metrics {
	s := metrics.NewSet()

	return &Metrics{
		set:          s,
		files:        s.NewCounter("spanguard_files_total"),
		generated:    s.NewCounter("spanguard_generated_files_total"),
		declarations: s.NewCounter("spanguard_declarations_total"),
		diagnostics:  s.NewCounter("spanguard_diagnostics_total"),
		fixes:        s.NewCounter("spanguard_fixes_applied_total"),
		errors:       s.NewCounter("spanguard_errors_total"),
		duration:     s.NewHistogram("spanguard_file_duration_seconds"),
	}
}

// WritePrometheus writes the metrics in Prometheus text exposition format.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}
