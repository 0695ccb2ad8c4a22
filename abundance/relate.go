// SPDX-License-Identifier: MIT
// Package: pollinet/abundance
//
// relate.go - degree/abundance relations: rank-abundance and the log-log fit.

package abundance

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrTooFewPoints indicates a fit over fewer than two points.
	ErrTooFewPoints = errors.New("abundance: need at least two points")

	// ErrDegenerateFit indicates every x value is identical.
	ErrDegenerateFit = errors.New("abundance: degenerate fit")
)

// Point pairs a species' degree with its equilibrium abundance.
type Point struct {
	Degree    int
	Abundance float64
}

// Fit is the least-squares line y = Slope·x + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
}

// Pairs zips degrees and abundances by species ID.
func Pairs(k []int, n []float64) ([]Point, error) {
	if len(k) != len(n) {
		return nil, fmt.Errorf("%w: %d degrees, %d abundances", ErrDimensionMismatch, len(k), len(n))
	}
	out := make([]Point, len(k))
	for i := range k {
		out[i] = Point{Degree: k[i], Abundance: n[i]}
	}

	return out, nil
}

// RankAbundance returns a copy of v sorted from most to least abundant.
func RankAbundance(v []float64) []float64 {
	out := append([]float64(nil), v...)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out
}

// FitLogLog fits log1p(n) against log1p(k) by ordinary least squares.
//
// Errors:
//   - ErrDimensionMismatch when len(k) != len(n).
//   - ErrTooFewPoints below two points.
//   - ErrDegenerateFit when all degrees are equal.
func FitLogLog(k []int, n []float64) (Fit, error) {
	if len(k) != len(n) {
		return Fit{}, fmt.Errorf("%w: %d degrees, %d abundances", ErrDimensionMismatch, len(k), len(n))
	}
	if len(k) < 2 {
		return Fit{}, ErrTooFewPoints
	}
	x := make([]float64, len(k))
	y := make([]float64, len(n))
	for i := range k {
		x[i] = math.Log1p(float64(k[i]))
		y[i] = math.Log1p(n[i])
	}

	return leastSquares(x, y)
}

func leastSquares(x, y []float64) (Fit, error) {
	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(len(x))
	my /= float64(len(y))

	var sxy, sxx float64
	for i := range x {
		dx := x[i] - mx
		sxy += dx * (y[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return Fit{}, ErrDegenerateFit
	}
	slope := sxy / sxx

	return Fit{Slope: slope, Intercept: my - slope*mx}, nil
}
