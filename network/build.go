// SPDX-License-Identifier: MIT
// Package: pollinet/network
//
// build.go - accumulate observations into per-patch graphs, normalize, classify.

package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pollinet/core"
	"github.com/katalvlaran/pollinet/observation"
	"go.uber.org/zap"
)

// ErrNilSelection indicates Build was called without a selection.
var ErrNilSelection = errors.New("network: nil selection")

// Build constructs the multi-patch network of sel.
//
// Implementation:
//   - Stage 1: allocate one empty graph per habitat in sel.Habitats.
//   - Stage 2: for each row, IncrementEdge(lower, upper, 1) in the row's patch.
//     Empty-taxon and self-pair rows are skipped with one warning each.
//   - Stage 3: Normalize every patch.
//   - Stage 4: plants = distinct Lower_Taxon values of sel.Rows; every other node
//     of any patch is an insect.
//
// An empty selection yields a Network with zero patches and no error.
//
// Complexity: O(n + E) for n rows and E distinct edges.
func Build(sel *observation.Selection, opts ...Option) (*Network, error) {
	if sel == nil {
		return nil, ErrNilSelection
	}
	cfg := newBuildConfig(opts...)
	log := cfg.logger.With(zap.String("site", sel.Site))

	net := &Network{
		Site:     sel.Site,
		Habitats: append([]string(nil), sel.Habitats...),
		Patches:  make([]*core.Graph, len(sel.Habitats)),
		Plants:   make(map[string]struct{}),
		Insects:  make(map[string]struct{}),
	}
	for i := range net.Patches {
		net.Patches[i] = core.NewGraph()
	}

	for i, row := range sel.Rows {
		// Role membership counts every selected row, including ones skipped below.
		if row.LowerTaxon != "" {
			net.Plants[row.LowerTaxon] = struct{}{}
		}
		p, ok := sel.PatchOf(row.Habitat)
		if !ok {
			log.Warn("skipping row with unmapped habitat", zap.Int("row", i), zap.String("habitat", row.Habitat))
			continue
		}
		if _, err := net.Patches[p].IncrementEdge(row.LowerTaxon, row.UpperTaxon, 1); err != nil {
			log.Warn("skipping row",
				zap.Int("row", i),
				zap.String("lower_taxon", row.LowerTaxon),
				zap.String("upper_taxon", row.UpperTaxon),
				zap.Error(err))
			continue
		}
	}

	for p, g := range net.Patches {
		if err := Normalize(g); err != nil {
			return nil, fmt.Errorf("network: normalize patch %d (%s): %w", p, net.Habitats[p], err)
		}
		for _, v := range g.Vertices() {
			if !net.IsPlant(v) {
				net.Insects[v] = struct{}{}
			}
		}
	}

	log.Debug("network built",
		zap.Int("patches", net.PatchCount()),
		zap.Int("edges", net.EdgeCount()),
		zap.Int("plants", len(net.Plants)),
		zap.Int("insects", len(net.Insects)))

	return net, nil
}

// Normalize divides every weight of g by the maximum weight of g.
// A graph with no edges, or whose maximum is 0, is left untouched.
func Normalize(g *core.Graph) error {
	best, ok := g.MaxWeight()
	if !ok || best == 0 {
		return nil
	}

	return g.DivideWeights(best)
}
