// SPDX-License-Identifier: MIT
// Package: pollinet/metrics
//
// metrics.go - Registry construction and recording helpers.

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels one simulator invocation.
type Outcome string

// Invocation outcomes.
const (
	OutcomeOK              Outcome = "ok"
	OutcomeProcessFailed   Outcome = "process_failed"
	OutcomeTimeout         Outcome = "timeout"
	OutcomeMissingMetric   Outcome = "missing_metric"
	OutcomeMalformedMetric Outcome = "malformed_metric"
)

// Outcomes lists every outcome label in a fixed order.
var Outcomes = []Outcome{
	OutcomeOK, OutcomeProcessFailed, OutcomeTimeout, OutcomeMissingMetric, OutcomeMalformedMetric,
}

// Registry holds the sweep metrics.
type Registry struct {
	InvocationsTotal   *prometheus.CounterVec
	InvocationDuration prometheus.Histogram
	BestRobustness     prometheus.Gauge
	LastParameter      prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with every series registered and every
// outcome pre-initialized to zero.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.InvocationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pollinet_sweep_invocations_total",
			Help: "Simulator invocations by outcome",
		},
		[]string{"outcome"},
	)
	r.InvocationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pollinet_sweep_invocation_seconds",
			Help:    "Wall time of one simulator invocation",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 600},
		},
	)
	r.BestRobustness = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "pollinet_sweep_best_robustness",
			Help: "Maximum robustness found by the last sweep",
		},
	)
	r.LastParameter = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "pollinet_sweep_last_parameter",
			Help: "Parameter value of the most recent invocation",
		},
	)
	for _, o := range Outcomes {
		r.InvocationsTotal.WithLabelValues(string(o))
	}

	return r
}

// PrometheusRegistry returns the underlying registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObserveInvocation counts one invocation of parameter with outcome and records
// its duration.
func (r *Registry) ObserveInvocation(parameter float64, outcome Outcome, d time.Duration) {
	if r == nil {
		return
	}
	r.InvocationsTotal.WithLabelValues(string(outcome)).Inc()
	r.InvocationDuration.Observe(d.Seconds())
	r.LastParameter.Set(parameter)
}

// SetBest publishes the sweep optimum.
func (r *Registry) SetBest(robustness float64) {
	if r == nil {
		return
	}
	r.BestRobustness.Set(robustness)
}

// WriteTextfile writes the registry to path in the text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

// Snapshot returns the invocation count per outcome.
func (r *Registry) Snapshot() (map[Outcome]float64, error) {
	out := make(map[Outcome]float64, len(Outcomes))
	if r == nil {
		return out, nil
	}
	for _, o := range Outcomes {
		c, err := r.InvocationsTotal.GetMetricWithLabelValues(string(o))
		if err != nil {
			return nil, fmt.Errorf("metrics: %s: %w", o, err)
		}
		var m dto.Metric
		if err := c.Write(&m); err != nil {
			return nil, fmt.Errorf("metrics: %s: %w", o, err)
		}
		out[o] = m.GetCounter().GetValue()
	}

	return out, nil
}
