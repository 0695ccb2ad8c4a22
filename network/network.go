// SPDX-License-Identifier: MIT
// Package: pollinet/network
//
// network.go - Network type, role sets and plant-first edge enumeration.
//
// Determinism:
//   - Edges() order is a pure function of the selection's row order.
//   - Role sets are read-only after Build returns.

package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pollinet/bfs"
	"github.com/katalvlaran/pollinet/core"
)

// Edge is one patch interaction oriented plant first.
type Edge struct {
	Patch  int
	Plant  string
	Insect string
	Weight float64
}

// Network is the immutable result of Build for one site.
type Network struct {
	// Site is the site label the selection was filtered on.
	Site string

	// Habitats[i] is the habitat label of patch i.
	Habitats []string

	// Patches[i] holds the normalized interaction graph of patch i.
	Patches []*core.Graph

	// Plants holds every Lower_Taxon of the selection.
	Plants map[string]struct{}

	// Insects holds every patch node that is not a plant.
	Insects map[string]struct{}
}

// IsPlant reports whether name was classified as a plant.
func (n *Network) IsPlant(name string) bool {
	_, ok := n.Plants[name]

	return ok
}

// PatchCount returns the number of patches.
func (n *Network) PatchCount() int { return len(n.Patches) }

// EdgeCount returns the number of edges summed over all patches.
func (n *Network) EdgeCount() int {
	total := 0
	for _, g := range n.Patches {
		total += g.EdgeCount()
	}

	return total
}

// Edges lists every edge in canonical order: patch index, then insertion order
// within the patch. An edge whose first endpoint is not a plant is flipped.
func (n *Network) Edges() []Edge {
	out := make([]Edge, 0, n.EdgeCount())
	for p, g := range n.Patches {
		for _, e := range g.Edges() {
			plant, insect := e.From, e.To
			if !n.IsPlant(plant) {
				plant, insect = insect, plant
			}
			out = append(out, Edge{Patch: p, Plant: plant, Insect: insect, Weight: e.Weight})
		}
	}

	return out
}

// Compartments returns the connected components of every patch. A patch with
// no edges has none. The walk stops with ctx.Err() once ctx is done.
func (n *Network) Compartments(ctx context.Context) ([][]bfs.Component, error) {
	out := make([][]bfs.Component, len(n.Patches))
	for p, g := range n.Patches {
		comps, err := bfs.Components(g, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("network: compartments of patch %d: %w", p, err)
		}
		out[p] = comps
	}

	return out, nil
}

// PlantNames returns the plant role set in ascending order.
func (n *Network) PlantNames() []string { return sortedKeys(n.Plants) }

// InsectNames returns the insect role set in ascending order.
func (n *Network) InsectNames() []string { return sortedKeys(n.Insects) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
