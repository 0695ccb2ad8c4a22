// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: IncrementEdge/Weight/Edges/EdgeCount,
//       plus weight aggregates (MaxWeight/DivideWeights). Also: nextEdgeIDLocked().
// Determinism:
//   - Edges() returns edges in creation order; IncrementEdge never reorders.
//   - Edge IDs are monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// IncrementEdge adds delta to the weight of {from,to}, creating the edge (and its
// endpoints) on first use. It returns the accumulated weight.
//
// Behavior highlights:
//   - First call for a pair fixes its position in Edges() and its From/To orientation.
//   - IncrementEdge(a,b,·) and IncrementEdge(b,a,·) accumulate into the same edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight (delta NaN/Inf/negative).
//
// Complexity: O(1) amortized.
func (g *Graph) IncrementEdge(from, to string, delta float64) (float64, error) {
	if err := checkPair(from, to); err != nil {
		return 0, err
	}
	if !validWeight(delta) {
		return 0, ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if rec, ok := g.adjacency[from][to]; ok {
		rec.weight += delta
		return rec.weight, nil
	}

	return g.linkLocked(from, to, delta).weight, nil
}

// linkLocked appends a new edge record; caller holds the write lock and has
// verified the pair is absent.
func (g *Graph) linkLocked(from, to string, w float64) *edgeRecord {
	rec := &edgeRecord{id: g.nextEdgeIDLocked(), from: from, to: to, weight: w}
	g.edges = append(g.edges, rec)
	g.adjacency[from][to] = rec
	g.adjacency[to][from] = rec

	return rec
}

// nextEdgeIDLocked returns the next textual edge ID without fmt allocations.
func (g *Graph) nextEdgeIDLocked() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// checkPair validates endpoint IDs for edge operations.
func checkPair(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	return nil
}

// Weight returns the weight of {from,to}, in either orientation, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return rec.weight, nil
}

// Edges returns snapshots of all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	for i, rec := range g.edges {
		out[i] = Edge{ID: rec.id, From: rec.from, To: rec.to, Weight: rec.weight}
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// MaxWeight returns the largest edge weight and true, or (0,false) on an edgeless graph.
// Complexity: O(E).
func (g *Graph) MaxWeight() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.edges) == 0 {
		return 0, false
	}
	best := g.edges[0].weight
	for _, rec := range g.edges[1:] {
		if rec.weight > best {
			best = rec.weight
		}
	}

	return best, true
}

// DivideWeights divides every edge weight by divisor.
//
// Dividing by MaxWeight() leaves the heaviest edge at exactly 1.0.
//
// Errors:
//   - ErrBadWeight if divisor is NaN, ±Inf or ≤ 0; weights are untouched.
//
// Complexity: O(E).
func (g *Graph) DivideWeights(divisor float64) error {
	if !validWeight(divisor) || divisor == 0 {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, rec := range g.edges {
		rec.weight /= divisor
	}

	return nil
}
