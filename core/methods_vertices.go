// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in first-insertion order.
//   - NeighborIDs() returns IDs sorted lexicographically ascending.

package core

import "sort"

// addVertexLocked registers id; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = len(g.vertexOrder)
	g.vertexOrder = append(g.vertexOrder, id)
	g.adjacency[id] = make(map[string]*edgeRecord)
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in first-insertion order.
// The slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// NeighborIDs returns the distinct neighbors of id, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}
