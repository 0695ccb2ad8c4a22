// SPDX-License-Identifier: MIT
package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/pollinet/metrics"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Snapshot(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveInvocation(0.5, metrics.OutcomeOK, 2*time.Second)
	r.ObserveInvocation(1, metrics.OutcomeOK, time.Second)
	r.ObserveInvocation(5, metrics.OutcomeTimeout, time.Minute)

	snap, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 2.0, snap[metrics.OutcomeOK])
	require.Equal(t, 1.0, snap[metrics.OutcomeTimeout])
	require.Equal(t, 0.0, snap[metrics.OutcomeMissingMetric])
	require.Len(t, snap, len(metrics.Outcomes))

	var m dto.Metric
	require.NoError(t, r.LastParameter.Write(&m))
	require.Equal(t, 5.0, m.GetGauge().GetValue())

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 4)
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := metrics.NewRegistry()
	r.SetBest(0.91)
	path := filepath.Join(t.TempDir(), "pollinet.prom")
	require.NoError(t, r.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(body), "pollinet_sweep_best_robustness 0.91")
	require.Contains(t, string(body), `pollinet_sweep_invocations_total{outcome="malformed_metric"} 0`)
}

func TestRegistry_NilIsNoop(t *testing.T) {
	var r *metrics.Registry
	r.ObserveInvocation(1, metrics.OutcomeOK, time.Second)
	r.SetBest(1)
	require.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
	require.Nil(t, r.PrometheusRegistry())

	snap, err := r.Snapshot()
	require.NoError(t, err)
	require.Empty(t, snap)
}
