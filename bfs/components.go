// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/pollinet/core"
)

// Component is one connected group of vertices.
type Component struct {
	// Members lists the vertices in BFS order from the first-inserted member.
	Members []string
	// Span is the hop distance from that first member to the farthest one.
	Span int
}

// Components partitions g into connected components.
//
// Components are ordered by the insertion position of their first vertex. An
// empty graph yields no components.
func Components(g *core.Graph, opts ...Option) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps []Component
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, Component{Members: res.Order, Span: res.Eccentricity()})
	}

	return comps, nil
}
