// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Methods wrap these sentinels with fmt.Errorf("ctx: %w", ErrX); callers match
// them with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows ≤ 0 or cols < 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a flat vector whose length is not a multiple
	// of the requested row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
