// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pollinet/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects bad shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(3, 0) // zero columns are legal
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, m.RowSums())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
}

// TestFromFlatSpeciesMajor checks the species-major layout: columns 0..P-1 belong
// to row 0, P..2P-1 to row 1.
func TestFromFlatSpeciesMajor(t *testing.T) {
	m, err := matrix.FromFlat(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	r0, _ := m.Row(0)
	r1, _ := m.Row(1)
	require.Equal(t, []float64{1, 2}, r0)
	require.Equal(t, []float64{3, 4}, r1)
	require.Equal(t, []float64{3, 7}, m.RowSums())
}

func TestFromFlatErrors(t *testing.T) {
	_, err := matrix.FromFlat(3, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromFlat(0, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.FromFlat(2, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Cols())
}

func TestFromFlatCopiesInput(t *testing.T) {
	data := []float64{1, 2}
	m, err := matrix.FromFlat(1, data)
	require.NoError(t, err)
	data[0] = 99

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestFromFlatReshapeProperty: reshape succeeds iff len % rows == 0, and never loses mass.
func TestFromFlatReshapeProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("divisible lengths reshape without loss", prop.ForAll(
		func(rows int, data []float64) bool {
			m, err := matrix.FromFlat(rows, data)
			if len(data)%rows != 0 {
				return err != nil && m == nil
			}
			if err != nil || m.Rows()*m.Cols() != len(data) {
				return false
			}
			var want, got float64
			for _, v := range data {
				want += v
			}
			for _, s := range m.RowSums() {
				got += s
			}
			diff := want - got
			return diff < 1e-6 && diff > -1e-6
		},
		gen.IntRange(1, 7),
		gen.SliceOf(gen.Float64Range(0, 1000)),
	))

	properties.TestingRun(t)
}
