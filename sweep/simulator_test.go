// SPDX-License-Identifier: MIT
package sweep_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/katalvlaran/pollinet/metrics"
	"github.com/katalvlaran/pollinet/sweep"
	"github.com/stretchr/testify/require"
)

// writeScript installs a fake simulator in dir and returns its path.
func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script simulator requires a POSIX shell")
	}
	path := filepath.Join(dir, "exp1")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))

	return path
}

func TestProcessSimulator_Success(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, `read step
read d
printf '%s\n%s\n' "$step" "$d" > payload.txt
echo "chatter on stdout"
echo " 0.75 " > robustnessD.txt
`)
	sim := sweep.NewProcessSimulator(exe, sweep.WithWorkDir(dir), sweep.WithTimeout(10*time.Second))

	r, err := sim.Run(context.Background(), "0.01", 2.5)
	require.NoError(t, err)
	require.Equal(t, 0.75, r)

	payload, err := os.ReadFile(filepath.Join(dir, "payload.txt"))
	require.NoError(t, err)
	require.Equal(t, "0.01\n2.5\n", string(payload))
}

func TestProcessSimulator_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "echo 'segfault-ish' >&2\necho 0.9 > robustnessD.txt\nexit 3\n")
	sim := sweep.NewProcessSimulator(exe, sweep.WithWorkDir(dir))

	_, err := sim.Run(context.Background(), "0.01", 1)
	require.ErrorIs(t, err, sweep.ErrProcessFailed)
	var perr *sweep.ProcessError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 3, perr.ExitCode)
	require.Contains(t, perr.Output, "segfault-ish")
}

func TestProcessSimulator_StaleMetricIsNotReused(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, sweep.DefaultMetricFile)
	require.NoError(t, os.WriteFile(stale, []byte("0.99\n"), 0o644))
	exe := writeScript(t, dir, "exit 0\n")
	sim := sweep.NewProcessSimulator(exe, sweep.WithWorkDir(dir))

	_, err := sim.Run(context.Background(), "0.01", 1)
	require.ErrorIs(t, err, sweep.ErrMissingMetric)
	require.Equal(t, metrics.OutcomeMissingMetric, sweep.Classify(err))
}

func TestProcessSimulator_MalformedMetric(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "echo nan > out.txt\n")
	sim := sweep.NewProcessSimulator(exe, sweep.WithWorkDir(dir), sweep.WithMetricFile("out.txt"))
	require.Equal(t, filepath.Join(dir, "out.txt"), sim.MetricPath())

	_, err := sim.Run(context.Background(), "0.01", 1)
	require.ErrorIs(t, err, sweep.ErrMalformedMetric)
}

func TestProcessSimulator_Timeout(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "exec sleep 5\n")
	sim := sweep.NewProcessSimulator(exe, sweep.WithWorkDir(dir), sweep.WithTimeout(100*time.Millisecond))

	started := time.Now()
	_, err := sim.Run(context.Background(), "0.01", 1)
	require.ErrorIs(t, err, sweep.ErrProcessTimeout)
	require.Less(t, time.Since(started), 4*time.Second)
}

func TestProcessSimulator_MissingExecutable(t *testing.T) {
	dir := t.TempDir()
	sim := sweep.NewProcessSimulator(filepath.Join(dir, "absent"), sweep.WithWorkDir(dir))

	_, err := sim.Run(context.Background(), "0.01", 1)
	require.ErrorIs(t, err, sweep.ErrProcessFailed)
}

func TestProcessSimulator_DrivesSweep(t *testing.T) {
	dir := t.TempDir()
	// Robustness peaks at d = 1; d = 5 crashes.
	exe := writeScript(t, dir, `read step
read d
case "$d" in
  5) exit 1 ;;
  1) echo 0.8 > robustnessD.txt ;;
  *) echo 0.2 > robustnessD.txt ;;
esac
`)
	d := &sweep.Driver{Simulator: sweep.NewProcessSimulator(exe, sweep.WithWorkDir(dir))}
	res, err := d.Run(context.Background(), []float64{0.5, 1, 5, 10})
	require.NoError(t, err)
	require.Len(t, res.Points, 4)
	require.Equal(t, 1, res.Failures)
	require.True(t, res.Points[2].Failed)
	require.Equal(t, 0.2, res.Points[3].Robustness)
	require.Equal(t, 1.0, res.Best.Parameter)
}

func TestPayload(t *testing.T) {
	require.Equal(t, "0.01\n0.25\n", sweep.Payload("0.01", 0.25))
	require.Equal(t, "0.01\n100\n", sweep.Payload("0.01", 100))
}
