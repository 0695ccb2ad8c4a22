// SPDX-License-Identifier: MIT

// Package network turns the filtered observations of one site into a multi-patch
// plant–pollinator interaction network.
//
// Build consumes an observation.Selection and produces one core.Graph per patch:
//
//  1. For each selected row, in input order, both taxa are added to the patch of
//     the row's habitat and the (lower, upper) edge weight is incremented by 1.
//  2. Every patch with at least one edge is divided by its own maximum weight, so
//     the heaviest interaction of each patch is exactly 1.0.
//  3. A name is a plant iff it appears as a Lower_Taxon anywhere in the selection.
//     Classification is global across patches; every other node is an insect.
//
// Network.Edges enumerates patches in index order and, within a patch, edges in
// insertion order, each oriented plant first. The canonical package writes exactly
// this sequence, which is what keeps the simulator's first-appearance IDs and the
// degree re-parser in agreement.
//
// Rows with an empty taxon or with lower == upper cannot form a bipartite edge;
// they are skipped and logged, never fatal.
package network
