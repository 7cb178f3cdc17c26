/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package diag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts events per kind. It is itself a Reporter, usually combined
// with a LogReporter through Multi.
type Metrics struct {
	events *prometheus.CounterVec
}

// NewMetrics registers errstate_diagnostics_total with reg. A nil reg
// creates unregistered collectors, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "errstate",
			Name:      "diagnostics_total",
			Help:      "The total number of error state side-channel events by kind.",
		}, []string{"kind"}),
	}
	// Pre-initialize so every kind shows up as zero.
	for _, k := range Kinds() {
		m.events.WithLabelValues(k.String())
	}
	return m
}

// Report implements Reporter. Events with an unknown kind are dropped.
func (m *Metrics) Report(ev Event) {
	if Validate(ev.Kind) != nil {
		return
	}
	m.events.WithLabelValues(ev.Kind.String()).Inc()
}

// Counter exposes the per-kind counter, mostly for tests.
func (m *Metrics) Counter(k Kind) prometheus.Counter {
	return m.events.WithLabelValues(k.String())
}
