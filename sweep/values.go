// SPDX-License-Identifier: MIT
// Package: pollinet/sweep
//
// values.go - parameter grids.

package sweep

import (
	"errors"
	"fmt"
	"math"
)

const (
	// rangeEpsilon absorbs float error when deciding whether end is reached.
	rangeEpsilon = 1e-9

	maxRangePoints = 1_000_000
)

// ErrBadRange indicates a non-positive step, end < start or a non-finite bound.
var ErrBadRange = errors.New("sweep: bad range")

// DefaultValues returns the dispersal grid swept by default.
func DefaultValues() []float64 {
	return []float64{0, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 1.5, 2.5, 5, 10, 20, 50, 100}
}

// Range returns start, start+step, ... up to and including end.
//
// Values are computed as start + i·step rather than by repeated addition, and
// end is included when it lies within rangeEpsilon·step of a grid point.
func Range(start, end, step float64) ([]float64, error) {
	for _, f := range []float64{start, end, step} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: non-finite bound %v", ErrBadRange, f)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %v", ErrBadRange, step)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end %v < start %v", ErrBadRange, end, start)
	}
	span := math.Floor((end-start)/step + rangeEpsilon)
	if span >= maxRangePoints {
		return nil, fmt.Errorf("%w: more than %d points", ErrBadRange, maxRangePoints)
	}
	n := int(span) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}
