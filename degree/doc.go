// SPDX-License-Identifier: MIT

// Package degree re-derives per-species topological degree from a canonical
// interaction stream, numbering species exactly as the external simulator does.
//
// IDs come from canonical.IDTable: plants and insects are numbered independently,
// from 0, in first-appearance order while scanning the stream. Every well-formed
// record assigns IDs, but only records with weight > 0 connect partners.
//
// Degree is the number of distinct partners over the union of all patches:
// the canonical stream is read as one combined adjacency relation, so a pair that
// interacts in two patches still counts once. KPlants and KInsects are indexed by
// ID, which is also the index order of the simulator's abundance series.
package degree
