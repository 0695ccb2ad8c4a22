// SPDX-License-Identifier: MIT
// Package: pollinet/sweep
//
// driver.go - sequential, failure-tolerant parameter sweep.

package sweep

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/pollinet/metrics"
	"go.uber.org/zap"
)

// Point is one sweep observation.
type Point struct {
	Parameter  float64
	Robustness float64

	// Failed marks a fallback value; Err holds the failure text.
	Failed bool
	Err    string
}

// Result is the outcome of one Driver.Run.
type Result struct {
	RunID  string
	Points []Point

	// Best is the optimum of Points; zero when Points is empty.
	Best     Point
	Failures int
}

// Driver runs a Simulator over parameter values.
type Driver struct {
	Simulator Simulator
	Step      string // DefaultStep when empty

	Logger  *zap.Logger       // zap.NewNop() when nil
	Metrics *metrics.Registry // optional
	RunID   string            // generated when empty
}

// Run invokes the simulator once per value, in order.
//
// Every failure records (value, 0) with Failed set and is logged once with the
// parameter and run ID, then the sweep continues. If ctx is cancelled the
// sweep stops, and the points recorded so far are returned with ctx.Err().
func (d *Driver) Run(ctx context.Context, values []float64) (*Result, error) {
	res := &Result{RunID: d.RunID, Points: make([]Point, 0, len(values))}
	if res.RunID == "" {
		res.RunID = uuid.NewString()
	}
	step := d.Step
	if step == "" {
		step = DefaultStep
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", res.RunID))

	var runErr error
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		started := time.Now()
		r, err := d.Simulator.Run(ctx, step, v)
		elapsed := time.Since(started)
		if ctx.Err() != nil {
			runErr = ctx.Err()
			break
		}

		pt := Point{Parameter: v, Robustness: r}
		outcome := Classify(err)
		if err != nil {
			pt = Point{Parameter: v, Failed: true, Err: err.Error()}
			res.Failures++
			fields := []zap.Field{zap.Float64("parameter", v), zap.String("outcome", string(outcome)), zap.Error(err)}
			var perr *ProcessError
			if errors.As(err, &perr) {
				fields = append(fields, zap.Int("exit_code", perr.ExitCode))
				if perr.Output != "" {
					fields = append(fields, zap.String("output_tail", perr.Output))
				}
			}
			log.Warn("simulator invocation failed, recording 0", fields...)
		} else {
			log.Info("sweep point", zap.Float64("parameter", v), zap.Float64("robustness", r), zap.Duration("elapsed", elapsed))
		}
		d.Metrics.ObserveInvocation(v, outcome, elapsed)
		res.Points = append(res.Points, pt)
	}

	if best, ok := Optimum(res.Points); ok {
		res.Best = best
		d.Metrics.SetBest(best.Robustness)
	}

	return res, runErr
}

// Classify maps an invocation error onto a metrics outcome.
func Classify(err error) metrics.Outcome {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrProcessTimeout):
		return metrics.OutcomeTimeout
	case errors.Is(err, ErrMissingMetric):
		return metrics.OutcomeMissingMetric
	case errors.Is(err, ErrMalformedMetric):
		return metrics.OutcomeMalformedMetric
	default:
		return metrics.OutcomeProcessFailed
	}
}

// Optimum returns the point with the highest robustness; the earliest wins a
// tie. Failed points compete with their fallback 0. It returns false for an
// empty slice.
func Optimum(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Robustness > best.Robustness {
			best = p
		}
	}

	return best, true
}
