// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-ordered iteration for vertices and edges.
//   - Validate constraint enforcement (weights, loops, multi-edges).
//   - Anchor the accumulate-on-repeat semantics used by patch construction.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pollinet/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	PlantA  = "Ranunculus_acris"
	PlantB  = "Trifolium_repens"
	InsectX = "Bombus_terrestris"
	InsectY = "Apis_mellifera"
)

func TestGraph_IncrementEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.IncrementEdge(PlantA, PlantA, 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.IncrementEdge(VertexEmpty, PlantA, 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = g.IncrementEdge(PlantA, InsectX, w)
		require.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}
	// Rejected calls create nothing.
	require.Zero(t, g.VertexCount())
	require.False(t, g.HasVertex(VertexEmpty))

	_, err = g.IncrementEdge(PlantA, InsectX, 2)
	require.NoError(t, err)
	require.True(t, g.HasVertex(PlantA))
	w, err := g.Weight(InsectX, PlantA)
	require.NoError(t, err)
	require.Equal(t, 2.0, w)
	_, err = g.Weight(PlantA, VertexEmpty)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, "e1", g.Edges()[0].ID)
}

func TestGraph_IncrementEdgeAccumulates(t *testing.T) {
	g := core.NewGraph()

	w, err := g.IncrementEdge(PlantA, InsectX, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)

	w, err = g.IncrementEdge(InsectX, PlantA, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, w)

	got, err := g.Weight(PlantA, InsectX)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	edges := g.Edges()
	require.Len(t, edges, 1)
	// Orientation of the first call is kept.
	require.Equal(t, PlantA, edges[0].From)
	require.Equal(t, InsectX, edges[0].To)

	_, err = g.IncrementEdge(PlantA, InsectX, -1)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	pairs := [][2]string{
		{PlantB, InsectY},
		{PlantA, InsectX},
		{PlantB, InsectX},
		{PlantA, InsectY},
	}
	for _, p := range pairs {
		_, err := g.IncrementEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}
	// Repeat the first pair; it must not move.
	_, err := g.IncrementEdge(PlantB, InsectY, 1)
	require.NoError(t, err)

	require.Equal(t, []string{PlantB, InsectY, PlantA, InsectX}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, len(pairs))
	for i, p := range pairs {
		require.Equal(t, p[0], edges[i].From, "edge %d", i)
		require.Equal(t, p[1], edges[i].To, "edge %d", i)
	}
	require.Equal(t, 2.0, edges[0].Weight)
}

func TestGraph_EdgeIDsPastNine(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.IncrementEdge(PlantA, string(rune('a'+i)), 1)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Equal(t, "e10", edges[9].ID)
	require.Equal(t, "e12", edges[11].ID)
}

func TestGraph_NeighborsAndLookups(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.IncrementEdge(PlantA, InsectY, 1)
	_, _ = g.IncrementEdge(PlantA, InsectX, 1)

	nbs, err := g.NeighborIDs(PlantA)
	require.NoError(t, err)
	require.Equal(t, []string{InsectY, InsectX}, nbs) // "Apis..." < "Bombus..."

	nbs, err = g.NeighborIDs(InsectX)
	require.NoError(t, err)
	require.Equal(t, []string{PlantA}, nbs)

	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Weight(PlantB, InsectX)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_MaxAndDivide(t *testing.T) {
	g := core.NewGraph()
	_, ok := g.MaxWeight()
	require.False(t, ok)

	_, _ = g.IncrementEdge(PlantA, InsectX, 4)
	_, _ = g.IncrementEdge(PlantB, InsectX, 1)
	max, ok := g.MaxWeight()
	require.True(t, ok)
	require.Equal(t, 4.0, max)

	require.ErrorIs(t, g.DivideWeights(0), core.ErrBadWeight)
	require.ErrorIs(t, g.DivideWeights(math.NaN()), core.ErrBadWeight)

	require.NoError(t, g.DivideWeights(max))
	w, _ := g.Weight(PlantB, InsectX)
	require.InDelta(t, 0.25, w, 1e-12)
	max, _ = g.MaxWeight()
	require.Equal(t, 1.0, max)
}
