// SPDX-License-Identifier: MIT

// Package abundance extracts steady-state per-species abundances from the
// simulator's time-series output and relates them to degree.
//
// A series file holds rows "time v_1 ... v_{S·P}". Only the last non-empty row
// matters: the time column is dropped and the rest is reshaped species-major into
// an S×P matrix (columns 0..P-1 belong to species 0, P..2P-1 to species 1, ...).
// Summing each row over patches gives the equilibrium abundance of that species,
// indexed like degree.Result.KPlants / KInsects.
//
// A remainder that S does not divide is ErrDimensionMismatch and is never
// truncated. A missing series file is ErrMissingFile; the caller decides whether
// that aborts the wider analysis.
package abundance
