// SPDX-License-Identifier: MIT
package abundance_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pollinet/abundance"
	"github.com/katalvlaran/pollinet/matrix"
	"github.com/stretchr/testify/require"
)

func TestExtract_Scenario(t *testing.T) {
	series := "0.0 0.5 0.5 0.5 0.5\n5.0 0.9 1.1 2.0 2.0\n10.0 1.0 2.0 3.0 4.0\n\n"
	eq, err := abundance.Extract(strings.NewReader(series), 2)
	require.NoError(t, err)

	require.Equal(t, 2, eq.Patches)
	require.Equal(t, []float64{3, 7}, eq.Abundances)
	require.Equal(t, "[1, 2]\n[3, 4]\n", eq.Matrix.String())
}

func TestExtract_Errors(t *testing.T) {
	_, err := abundance.Extract(strings.NewReader("10.0 1.0 2.0 3.0\n"), 2)
	require.ErrorIs(t, err, abundance.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = abundance.Extract(strings.NewReader("10.0 1.0 x\n"), 2)
	require.ErrorIs(t, err, abundance.ErrMalformedValue)

	_, err = abundance.Extract(strings.NewReader("\n  \n"), 2)
	require.ErrorIs(t, err, abundance.ErrEmptySeries)

	_, err = abundance.Extract(strings.NewReader("1 2\n"), 0)
	require.ErrorIs(t, err, abundance.ErrNoSpecies)
}

func TestExtract_TimeOnlyRow(t *testing.T) {
	eq, err := abundance.Extract(strings.NewReader("42\n"), 3)
	require.NoError(t, err)
	require.Zero(t, eq.Patches)
	require.Equal(t, []float64{0, 0, 0}, eq.Abundances)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evolutionp.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1 1 1\n1 2 4 6\n"), 0o644))

	eq, err := abundance.ExtractFile(path, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, eq.Abundances)

	_, err = abundance.ExtractFile(filepath.Join(dir, "evolutionv.txt"), 3)
	require.ErrorIs(t, err, abundance.ErrMissingFile)

	_, err = abundance.ExtractFile(path, 2)
	require.ErrorIs(t, err, abundance.ErrDimensionMismatch)
	require.Contains(t, err.Error(), path)
}

func TestRankAbundance(t *testing.T) {
	in := []float64{2, 9, 0, 4}
	require.Equal(t, []float64{9, 4, 2, 0}, abundance.RankAbundance(in))
	require.Equal(t, []float64{2, 9, 0, 4}, in)
}

func TestPairs(t *testing.T) {
	pts, err := abundance.Pairs([]int{1, 3}, []float64{0.5, 2})
	require.NoError(t, err)
	require.Equal(t, []abundance.Point{{Degree: 1, Abundance: 0.5}, {Degree: 3, Abundance: 2}}, pts)

	_, err = abundance.Pairs([]int{1}, nil)
	require.ErrorIs(t, err, abundance.ErrDimensionMismatch)
}

func TestFitLogLog(t *testing.T) {
	// n = (1+k)^2 - 1 gives log1p(n) = 2·log1p(k) exactly.
	k := []int{0, 1, 3, 7}
	n := make([]float64, len(k))
	for i, d := range k {
		n[i] = math.Pow(float64(1+d), 2) - 1
	}
	fit, err := abundance.FitLogLog(k, n)
	require.NoError(t, err)
	require.InDelta(t, 2.0, fit.Slope, 1e-12)
	require.InDelta(t, 0.0, fit.Intercept, 1e-12)

	_, err = abundance.FitLogLog([]int{1}, []float64{1})
	require.ErrorIs(t, err, abundance.ErrTooFewPoints)
	_, err = abundance.FitLogLog([]int{2, 2}, []float64{1, 5})
	require.ErrorIs(t, err, abundance.ErrDegenerateFit)
	_, err = abundance.FitLogLog([]int{1, 2}, []float64{1})
	require.ErrorIs(t, err, abundance.ErrDimensionMismatch)
}
