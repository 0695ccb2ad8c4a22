// SPDX-License-Identifier: MIT

// Package core defines the Graph and Edge types, the sentinel errors shared by all
// graph operations, and the NewGraph constructor.
//
// A single sync.RWMutex guards the vertex catalog, the edge catalog and the
// adjacency index together. Patch graphs are small and built by one goroutine, so
// the split-lock scheme of a general-purpose graph store buys nothing here.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN, ±Inf or negative weight, or a non-positive divisor.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a read-only snapshot of one undirected connection.
//
// From and To keep the orientation of the call that first created the edge;
// callers that need a role-based orientation (plant first) apply it themselves.
type Edge struct {
	// ID is "e1", "e2", ... in creation order.
	ID string

	// From is the first endpoint as given to the creating call.
	From string

	// To is the second endpoint as given to the creating call.
	To string

	// Weight is the accumulated interaction strength.
	Weight float64
}

// edgeRecord is the mutable catalog entry behind an Edge snapshot.
type edgeRecord struct {
	id       string
	from, to string
	weight   float64
}

// Graph is an undirected, weighted, simple graph with insertion-ordered iteration.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nextEdgeID uint64 // monotonic edge ID counter

	vertices    map[string]int // vertex ID → insertion position
	vertexOrder []string       // vertex IDs in insertion order

	edges     []*edgeRecord // edge catalog in insertion order
	adjacency map[string]map[string]*edgeRecord
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]int),
		adjacency: make(map[string]map[string]*edgeRecord),
	}
}

// validWeight reports whether w is usable as an interaction strength.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
