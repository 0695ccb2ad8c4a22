// SPDX-License-Identifier: MIT
// Package: pollinet/sweep
//
// simulator.go - Simulator capability and its os/exec implementation.
//
// Concurrency:
//   - ProcessSimulator holds no mutable state, but the metric file is a fixed
//     path: callers must not run two invocations sharing a WorkDir at once.

package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Defaults of the simulator invocation contract.
const (
	DefaultExecutable = "./exp1"
	DefaultStep       = "0.01"
	DefaultMetricFile = "robustnessD.txt"

	defaultMaxOutput = 64 << 10
	waitDelay        = 2 * time.Second
)

var (
	// ErrProcessFailed indicates the simulator could not run or exited non-zero.
	ErrProcessFailed = errors.New("sweep: simulator process failed")

	// ErrProcessTimeout indicates the simulator was killed at its deadline.
	ErrProcessTimeout = errors.New("sweep: simulator timed out")

	// ErrMissingMetric indicates a zero exit without a metric file.
	ErrMissingMetric = errors.New("sweep: metric file missing")

	// ErrMalformedMetric indicates a metric file that is not one finite real.
	ErrMalformedMetric = errors.New("sweep: malformed metric")
)

// Simulator runs one configuration and returns its robustness.
type Simulator interface {
	Run(ctx context.Context, step string, parameter float64) (float64, error)
}

// ProcessError describes a failed invocation. It unwraps to one of the
// package sentinels.
type ProcessError struct {
	Parameter float64
	ExitCode  int    // -1 when the process never produced an exit status
	Output    string // tail of combined stdout/stderr
	Err       error
}

func (e *ProcessError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%v (parameter %s, exit code %d)", e.Err, FormatParameter(e.Parameter), e.ExitCode)
	}

	return fmt.Sprintf("%v (parameter %s)", e.Err, FormatParameter(e.Parameter))
}

func (e *ProcessError) Unwrap() error { return e.Err }

// FormatParameter renders p the way it is written to the simulator.
func FormatParameter(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// Payload is the two-line stdin contract of the simulator.
func Payload(step string, parameter float64) string {
	return step + "\n" + FormatParameter(parameter) + "\n"
}

// ProcessOption customizes a ProcessSimulator.
type ProcessOption func(*ProcessSimulator)

// WithWorkDir runs the simulator in dir; a relative metric file resolves there.
func WithWorkDir(dir string) ProcessOption {
	return func(s *ProcessSimulator) { s.WorkDir = dir }
}

// WithMetricFile overrides DefaultMetricFile.
func WithMetricFile(path string) ProcessOption {
	return func(s *ProcessSimulator) {
		if path != "" {
			s.MetricFile = path
		}
	}
}

// WithTimeout bounds each invocation; d ≤ 0 disables the bound.
func WithTimeout(d time.Duration) ProcessOption {
	return func(s *ProcessSimulator) { s.Timeout = d }
}

// WithMaxOutput bounds the captured output tail.
func WithMaxOutput(n int) ProcessOption {
	return func(s *ProcessSimulator) {
		if n > 0 {
			s.MaxOutput = n
		}
	}
}

// ProcessSimulator runs an external executable per invocation.
type ProcessSimulator struct {
	Executable string
	WorkDir    string
	MetricFile string
	Timeout    time.Duration
	MaxOutput  int
}

// NewProcessSimulator returns a simulator for executable (DefaultExecutable
// when empty).
func NewProcessSimulator(executable string, opts ...ProcessOption) *ProcessSimulator {
	if executable == "" {
		executable = DefaultExecutable
	}
	s := &ProcessSimulator{
		Executable: executable,
		MetricFile: DefaultMetricFile,
		MaxOutput:  defaultMaxOutput,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MetricPath is the metric file location after WorkDir resolution.
func (s *ProcessSimulator) MetricPath() string {
	if filepath.IsAbs(s.MetricFile) || s.WorkDir == "" {
		return s.MetricFile
	}

	return filepath.Join(s.WorkDir, s.MetricFile)
}

// Run executes one invocation.
//
// Implementation:
//   - Stage 1: remove any stale metric file.
//   - Stage 2: run the executable under the timeout with Payload on stdin and
//     output captured into a bounded tail.
//   - Stage 3: map the exit into ErrProcessTimeout / ErrProcessFailed, or return
//     the caller's ctx error unchanged when the caller cancelled.
//   - Stage 4: read the metric file after the process has terminated.
func (s *ProcessSimulator) Run(ctx context.Context, step string, parameter float64) (float64, error) {
	metricPath := s.MetricPath()
	if err := os.Remove(metricPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("sweep: clear stale metric %s: %w", metricPath, err)
	}

	runCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	out := &tailBuffer{max: s.MaxOutput}
	cmd := exec.CommandContext(runCtx, s.Executable)
	cmd.Dir = s.WorkDir
	cmd.Stdin = strings.NewReader(Payload(step, parameter))
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		perr := &ProcessError{Parameter: parameter, ExitCode: -1, Output: out.String(), Err: ErrProcessFailed}
		var exitErr *exec.ExitError
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			perr.Err = ErrProcessTimeout
		case errors.As(err, &exitErr):
			perr.ExitCode = exitErr.ExitCode()
		default:
			perr.Err = fmt.Errorf("%w: %v", ErrProcessFailed, err)
		}

		return 0, perr
	}

	return readMetric(metricPath, parameter)
}

func readMetric(path string, parameter float64) (float64, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, &ProcessError{Parameter: parameter, ExitCode: 0, Err: fmt.Errorf("%w: %s", ErrMissingMetric, path)}
	}
	if err != nil {
		return 0, fmt.Errorf("sweep: read metric %s: %w", path, err)
	}
	text := strings.TrimSpace(string(raw))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ProcessError{Parameter: parameter, ExitCode: 0, Err: fmt.Errorf("%w: %q", ErrMalformedMetric, text)}
	}

	return v, nil
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}

	return len(p), nil
}

func (t *tailBuffer) String() string { return string(t.buf) }
