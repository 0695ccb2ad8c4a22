// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a patch core.Graph and the
// compartments (connected components) built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex.
//     Weights are ignored: a pollination link either exists or it does not.
//   - Result carries the visit Order and the hop Depth of every reached vertex;
//     Eccentricity is the largest of those depths.
//   - Components partitions a patch into compartments, i.e. groups of plants
//     and insects that reach each other through shared visits, and reports each
//     compartment's span (the eccentricity of its seed vertex).
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted by ID and Components seeds from
//	core.Vertices in insertion order, so both the visit sequence and the
//	compartment order are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if neighbor lookup fails for a vertex.
//   - ctx.Err() once the WithContext context is done.
package bfs
