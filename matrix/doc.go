// SPDX-License-Identifier: MIT

// Package matrix provides the row-major Dense matrix used to reshape flat
// simulator output into species × patch tables and to hold per-patch
// plant × insect interaction strengths.
//
// The package provides:
//
//   - Dense: a flat []float64 backing store with bounds-checked At/Set.
//   - FromFlat: reshape a flat vector into a fixed number of rows, failing with
//     ErrDimensionMismatch instead of truncating when the length is not a
//     multiple of the row count.
//   - RowSums: deterministic i→j reduction over each row.
//
// Zero-column matrices are legal: reshaping an empty vector into r rows gives an
// r×0 matrix whose row sums are all zero.
package matrix
