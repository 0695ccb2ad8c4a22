// SPDX-License-Identifier: MIT
package sweep_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/pollinet/metrics"
	"github.com/katalvlaran/pollinet/sweep"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSimulator returns canned values per parameter and records the calls.
type fakeSimulator struct {
	values map[float64]float64
	errs   map[float64]error
	calls  []string
	hook   func(parameter float64)
}

func (f *fakeSimulator) Run(ctx context.Context, step string, parameter float64) (float64, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s/%s", step, sweep.FormatParameter(parameter)))
	if f.hook != nil {
		f.hook(parameter)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err, ok := f.errs[parameter]; ok {
		return 0, err
	}

	return f.values[parameter], nil
}

func TestDriver_Resilience(t *testing.T) {
	sim := &fakeSimulator{
		values: map[float64]float64{0: 0.4, 0.5: 0.8, 2.5: 0.3},
		errs: map[float64]error{
			1:  &sweep.ProcessError{Parameter: 1, ExitCode: 139, Err: sweep.ErrProcessFailed},
			10: &sweep.ProcessError{Parameter: 10, ExitCode: 0, Err: sweep.ErrMissingMetric},
		},
	}
	obsCore, logs := observer.New(zap.WarnLevel)
	reg := metrics.NewRegistry()
	d := &sweep.Driver{Simulator: sim, Logger: zap.New(obsCore), Metrics: reg, RunID: "run-1"}

	values := []float64{0, 0.5, 1, 2.5, 10}
	res, err := d.Run(context.Background(), values)
	require.NoError(t, err)

	require.Len(t, res.Points, len(values))
	require.Equal(t, 2, res.Failures)
	for i, p := range res.Points {
		require.Equal(t, values[i], p.Parameter)
	}
	require.True(t, res.Points[2].Failed)
	require.Zero(t, res.Points[2].Robustness)
	require.True(t, res.Points[4].Failed)
	require.Contains(t, res.Points[4].Err, "metric file missing")
	require.Equal(t, 0.5, res.Best.Parameter)
	require.Equal(t, "run-1", res.RunID)
	require.Equal(t, "0.01/0", sim.calls[0])

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0].ContextMap()
	require.Equal(t, 1.0, first["parameter"])
	require.EqualValues(t, 139, first["exit_code"])
	require.Equal(t, "run-1", first["run_id"])
	runIDs := 0
	for _, f := range logs.All()[0].Context {
		if f.Key == "run_id" {
			runIDs++
		}
	}
	require.Equal(t, 1, runIDs)

	snap, err := reg.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 3.0, snap[metrics.OutcomeOK])
	require.Equal(t, 1.0, snap[metrics.OutcomeProcessFailed])
	require.Equal(t, 1.0, snap[metrics.OutcomeMissingMetric])
}

func TestDriver_AllFail(t *testing.T) {
	boom := errors.New("exec format error")
	sim := &fakeSimulator{errs: map[float64]error{1: boom, 2: boom}}
	res, err := (&sweep.Driver{Simulator: sim, Step: "0.05"}).Run(context.Background(), []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, res.Failures)
	require.Equal(t, 1.0, res.Best.Parameter) // fallback zeros: first wins
	require.NotEmpty(t, res.RunID)
	require.Equal(t, "0.05/1", sim.calls[0])
}

func TestDriver_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sim := &fakeSimulator{values: map[float64]float64{1: 0.5, 2: 0.6}}
	sim.hook = func(p float64) {
		if p == 2 {
			cancel()
		}
	}
	res, err := (&sweep.Driver{Simulator: sim}).Run(ctx, []float64{1, 2, 3})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, res.Points, 1)
	require.Len(t, sim.calls, 2)
	require.Equal(t, 1.0, res.Best.Parameter)
}

func TestDriver_Empty(t *testing.T) {
	res, err := (&sweep.Driver{Simulator: &fakeSimulator{}}).Run(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, res.Points)
	require.Equal(t, sweep.Point{}, res.Best)
}

func TestOptimum(t *testing.T) {
	best, ok := sweep.Optimum([]sweep.Point{
		{Parameter: 0, Robustness: 0.2},
		{Parameter: 0.5, Robustness: 0.9},
		{Parameter: 1, Robustness: 0.9},
	})
	require.True(t, ok)
	require.Equal(t, 0.5, best.Parameter)

	_, ok = sweep.Optimum(nil)
	require.False(t, ok)
}

func TestClassify(t *testing.T) {
	require.Equal(t, metrics.OutcomeOK, sweep.Classify(nil))
	require.Equal(t, metrics.OutcomeTimeout, sweep.Classify(&sweep.ProcessError{Err: sweep.ErrProcessTimeout}))
	require.Equal(t, metrics.OutcomeMalformedMetric, sweep.Classify(fmt.Errorf("x: %w", sweep.ErrMalformedMetric)))
	require.Equal(t, metrics.OutcomeProcessFailed, sweep.Classify(errors.New("other")))
}

func TestRange(t *testing.T) {
	vals, err := sweep.Range(0, 0.3, 0.1)
	require.NoError(t, err)
	require.Len(t, vals, 4)
	require.InDelta(t, 0.3, vals[3], 1e-12)

	vals, err = sweep.Range(2, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, vals)

	for _, bad := range [][3]float64{{0, 1, 0}, {0, 1, -1}, {1, 0, 0.1}, {0, 1, 1e-12}} {
		_, err = sweep.Range(bad[0], bad[1], bad[2])
		require.ErrorIs(t, err, sweep.ErrBadRange, "%v", bad)
	}
	require.Len(t, sweep.DefaultValues(), 14)
}
