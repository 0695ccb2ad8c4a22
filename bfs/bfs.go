// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pollinet/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal.
type Option func(*walkConfig)

type walkConfig struct {
	ctx context.Context
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *walkConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Result is the outcome of one traversal.
type Result struct {
	// Order lists reached vertices in visit sequence, start first.
	Order []string
	// Depth maps a reached vertex to its hop count from the start.
	Depth map[string]int
}

// Eccentricity returns the hop count of the farthest reached vertex.
func (r *Result) Eccentricity() int {
	ecc := 0
	for _, d := range r.Depth {
		if d > ecc {
			ecc = d
		}
	}

	return ecc
}

// BFS runs breadth-first search on g from start.
//
// The Order slice doubles as the queue: vertices are appended when first
// discovered and visited in that same sequence. The context is checked once
// per visited vertex; on cancellation the partial Result is returned together
// with ctx.Err().
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := walkConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	res := &Result{
		Order: make([]string, 1, g.VertexCount()),
		Depth: map[string]int{start: 0},
	}
	res.Order[0] = start
	for head := 0; head < len(res.Order); head++ {
		if err := cfg.ctx.Err(); err != nil {
			return res, err
		}
		cur := res.Order[head]
		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return res, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, cur, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = res.Depth[cur] + 1
			res.Order = append(res.Order, nb)
		}
	}

	return res, nil
}
