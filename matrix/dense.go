// SPDX-License-Identifier: MIT
// Dense is a row-major matrix storing elements in a flat slice.

package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): rows > 0 and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromFlat reshapes data into a rows×(len(data)/rows) row-major matrix.
//
// Implementation:
//   - Stage 1: Validate rows > 0 (ErrBadShape).
//   - Stage 2: Require len(data) % rows == 0 (ErrDimensionMismatch); never truncate.
//   - Stage 3: Copy data so the caller's slice stays independent.
//
// Row i owns elements [i*cols, (i+1)*cols). Complexity: O(len(data)).
func FromFlat(rows int, data []float64) (*Dense, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("FromFlat(rows=%d): %w", rows, ErrBadShape)
	}
	if len(data)%rows != 0 {
		return nil, fmt.Errorf("FromFlat: %d values not divisible by %d rows: %w",
			len(data), rows, ErrDimensionMismatch)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Dense{r: rows, c: len(data) / rows, data: cp}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j], traversed i→j.
// Complexity: O(r*c).
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var s float64
		for j := 0; j < m.c; j++ {
			s += m.data[base+j]
		}
		out[i] = s
	}

	return out
}
