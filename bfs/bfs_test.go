// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pollinet/bfs"
	"github.com/katalvlaran/pollinet/core"
	"github.com/stretchr/testify/require"
)

// patch builds a two-compartment patch:
//
//	P1 - I1 - P2 - I2     P3 - I3
func patch(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"P1", "I1"}, {"P2", "I1"}, {"P2", "I2"}, {"P3", "I3"}} {
		_, err := g.IncrementEdge(e[0], e[1], 0.5)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(patch(t), "I1")
	require.NoError(t, err)

	require.Equal(t, []string{"I1", "P1", "P2", "I2"}, res.Order)
	require.Equal(t, map[string]int{"I1": 0, "P1": 1, "P2": 1, "I2": 2}, res.Depth)
	require.Equal(t, 2, res.Eccentricity())
}

func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(patch(t), "P1", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []string{"P1"}, res.Order)

	_, err = bfs.Components(patch(t), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(patch(t))
	require.NoError(t, err)
	require.Equal(t, []bfs.Component{
		{Members: []string{"P1", "I1", "P2", "I2"}, Span: 3},
		{Members: []string{"P3", "I3"}, Span: 1},
	}, comps)

	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
