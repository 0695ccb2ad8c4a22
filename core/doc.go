// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, weighted, undirected Graph that holds one
// patch of a plant–pollinator interaction network.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: IncrementEdge(a,b,·) and IncrementEdge(b,a,·) address the same
//     unordered pair.
//   - Simple: no self-loops (ErrLoopNotAllowed) and no parallel edges; repeated
//     observations of one pair accumulate into its single edge.
//   - Weighted: float64 weights, finite and non-negative (ErrBadWeight otherwise).
//   - Insertion-ordered: Vertices() and Edges() enumerate in first-insertion
//     order. This order is the canonical edge iteration order that exporters rely
//     on, so it must never depend on map iteration.
//
// Core Methods:
//
//	// Mutation (endpoints are created on first use)
//	IncrementEdge(from, to string, delta float64) (float64, error)   // O(1)
//
//	// Lookup
//	HasVertex(id string) bool                  // O(1)
//	Weight(from, to string) (float64, error)   // O(1)
//
//	// Query
//	Vertices() []string                        // O(V), insertion order
//	Edges() []Edge                             // O(E), insertion order
//	NeighborIDs(id string) ([]string, error)   // O(d·log d), sorted
//	VertexCount() int / EdgeCount() int        // O(1)
//
//	// Weights
//	MaxWeight() (float64, bool)                // O(E)
//	DivideWeights(divisor float64) error       // O(E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN, ±Inf or negative weight / non-positive divisor
//	ErrLoopNotAllowed      – from == to
package core
