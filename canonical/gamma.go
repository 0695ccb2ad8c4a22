// SPDX-License-Identifier: MIT
// Package: pollinet/canonical
//
// gamma.go - the simulator's view of a canonical file: patch × plant × insect
// interaction strengths.

package canonical

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pollinet/matrix"
)

// Gamma holds interaction strengths indexed by first-appearance IDs.
type Gamma struct {
	Plants  *IDTable
	Insects *IDTable

	// Strength[p] is the plants × insects matrix of patch p.
	Strength []*matrix.Dense
}

// LoadGamma reads r the way the simulator does.
//
// Implementation:
//   - Stage 1: Scan records; assign plant and insect IDs on first sight, whatever
//     the weight; track the largest patch index.
//   - Stage 2: allocate max(patch)+1 zero matrices. Patches that never occur
//     stay all-zero.
//   - Stage 3: replay records in order; a repeated (patch, plant, insect) triple
//     overwrites, so the last line wins.
func LoadGamma(r io.Reader, opts ...Option) (*Gamma, error) {
	g := &Gamma{Plants: NewIDTable(), Insects: NewIDTable()}
	var recs []Record
	patches := 0
	err := Scan(r, func(_ int, rec Record) error {
		g.Plants.Assign(rec.Plant)
		g.Insects.Assign(rec.Insect)
		if rec.Patch+1 > patches {
			patches = rec.Patch + 1
		}
		recs = append(recs, rec)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if patches == 0 {
		return g, nil
	}

	g.Strength = make([]*matrix.Dense, patches)
	for p := range g.Strength {
		m, err := matrix.NewDense(g.Plants.Len(), g.Insects.Len())
		if err != nil {
			return nil, fmt.Errorf("canonical: gamma patch %d: %w", p, err)
		}
		g.Strength[p] = m
	}
	for _, rec := range recs {
		i, _ := g.Plants.ID(rec.Plant)
		j, _ := g.Insects.ID(rec.Insect)
		if err := g.Strength[rec.Patch].Set(i, j, rec.Weight); err != nil {
			return nil, fmt.Errorf("canonical: gamma: %w", err)
		}
	}

	return g, nil
}

// LoadGammaFile opens path and runs LoadGamma.
func LoadGammaFile(path string, opts ...Option) (*Gamma, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadGamma(f, append([]Option{WithSource(path)}, opts...)...)
}

// PatchCount returns max patch index + 1, or 0 for an empty stream.
func (g *Gamma) PatchCount() int { return len(g.Strength) }

// At returns the strength between plant i and insect j in patch p.
func (g *Gamma) At(p, i, j int) (float64, error) {
	if p < 0 || p >= len(g.Strength) {
		return 0, fmt.Errorf("canonical: gamma patch %d: %w", p, matrix.ErrOutOfRange)
	}

	return g.Strength[p].At(i, j)
}

// PlantPresent reports whether plant i has a positive interaction in patch p.
func (g *Gamma) PlantPresent(i, p int) bool {
	if p < 0 || p >= len(g.Strength) {
		return false
	}
	row, err := g.Strength[p].Row(i)
	if err != nil {
		return false
	}
	for _, w := range row {
		if w > 0 {
			return true
		}
	}

	return false
}

// InsectPresent reports whether insect j has a positive interaction in patch p.
func (g *Gamma) InsectPresent(j, p int) bool {
	if p < 0 || p >= len(g.Strength) {
		return false
	}
	m := g.Strength[p]
	for i := 0; i < m.Rows(); i++ {
		if w, err := m.At(i, j); err == nil && w > 0 {
			return true
		}
	}

	return false
}
