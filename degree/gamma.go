// SPDX-License-Identifier: MIT
// Package: pollinet/degree
//
// gamma.go - agreement between the network and the simulator-side view of its
// canonical file.

package degree

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pollinet/canonical"
	"github.com/katalvlaran/pollinet/network"
)

// CheckGamma verifies that g, the simulator's reading of net's canonical file,
// agrees with net and with res, the re-parse of the same file.
//
// Implementation:
//   - Stage 1: g and res must number plants and insects identically.
//   - Stage 2: g may only omit trailing patches that have no edges.
//   - Stage 3: per patch, every positive strength must be a plant-first edge of
//     net with the same weight, no edge may be missing, and the presence flags
//     must match the plant and insect sides of the patch's edges.
//
// Any disagreement is reported as ErrDisagree.
func CheckGamma(net *network.Network, res *Result, g *canonical.Gamma) error {
	if diff := cmp.Diff(res.Plants.Names(), g.Plants.Names()); diff != "" {
		return fmt.Errorf("%w: gamma plant ids (-parse +gamma):\n%s", ErrDisagree, diff)
	}
	if diff := cmp.Diff(res.Insects.Names(), g.Insects.Names()); diff != "" {
		return fmt.Errorf("%w: gamma insect ids (-parse +gamma):\n%s", ErrDisagree, diff)
	}
	if g.PatchCount() > net.PatchCount() {
		return fmt.Errorf("%w: gamma has %d patches, network %d", ErrDisagree, g.PatchCount(), net.PatchCount())
	}
	for p := g.PatchCount(); p < net.PatchCount(); p++ {
		if n := net.Patches[p].EdgeCount(); n > 0 {
			return fmt.Errorf("%w: gamma lacks patch %d with %d edges", ErrDisagree, p, n)
		}
	}

	views := patchViews(net, g.PatchCount())
	plants, insects := g.Plants.Names(), g.Insects.Names()
	for p, view := range views {
		patch := net.Patches[p]
		cells := 0
		for i, plant := range plants {
			if got, want := g.PlantPresent(i, p), view.plants[plant]; got != want {
				return fmt.Errorf("%w: patch %d plant %s present=%t, want %t", ErrDisagree, p, plant, got, want)
			}
			for j, insect := range insects {
				w, err := g.At(p, i, j)
				if err != nil {
					return fmt.Errorf("degree: gamma patch %d: %w", p, err)
				}
				if w == 0 {
					continue
				}
				cells++
				if !view.edges[[2]string{plant, insect}] {
					return fmt.Errorf("%w: patch %d gamma %s-%s is not a network edge", ErrDisagree, p, plant, insect)
				}
				if want, err := patch.Weight(plant, insect); err != nil || want != w {
					return fmt.Errorf("%w: patch %d %s-%s gamma %g, network %g", ErrDisagree, p, plant, insect, w, want)
				}
			}
		}
		if cells != len(view.edges) {
			return fmt.Errorf("%w: patch %d gamma has %d edges, network %d", ErrDisagree, p, cells, len(view.edges))
		}
		for j, insect := range insects {
			if got, want := g.InsectPresent(j, p), view.insects[insect]; got != want {
				return fmt.Errorf("%w: patch %d insect %s present=%t, want %t", ErrDisagree, p, insect, got, want)
			}
		}
	}

	return nil
}

// patchView is one patch of net seen through its plant-first edges.
type patchView struct {
	edges   map[[2]string]bool
	plants  map[string]bool
	insects map[string]bool
}

func patchViews(net *network.Network, patches int) []patchView {
	views := make([]patchView, patches)
	for p := range views {
		views[p] = patchView{
			edges:   make(map[[2]string]bool),
			plants:  make(map[string]bool),
			insects: make(map[string]bool),
		}
	}
	for _, e := range net.Edges() {
		if e.Patch >= patches {
			continue
		}
		v := views[e.Patch]
		v.edges[[2]string{e.Plant, e.Insect}] = true
		v.plants[e.Plant] = true
		v.insects[e.Insect] = true
	}

	return views
}
