// SPDX-License-Identifier: MIT
// Package: pollinet/degree
//
// degree.go - ID-consistent re-parse and degree computation.
//
// Determinism:
//   - Result is a pure function of the record sequence.
// Concurrency:
//   - None; a Result is read-only once returned.

package degree

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pollinet/canonical"
	"github.com/katalvlaran/pollinet/network"
)

// IDTable is the first-appearance numbering shared with the canonical format.
type IDTable = canonical.IDTable

// ErrDisagree indicates two parses of the same network disagree.
var ErrDisagree = errors.New("degree: parses disagree")

// Result holds the ID tables and the combined degree of each species.
type Result struct {
	Plants  *IDTable
	Insects *IDTable

	// KPlants[id] is the degree of plant id; likewise KInsects.
	KPlants  []int
	KInsects []int
}

// accumulator builds a Result one record at a time.
type accumulator struct {
	plants, insects    *IDTable
	plantNbrs, insNbrs []map[int]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{plants: canonical.NewIDTable(), insects: canonical.NewIDTable()}
}

func (a *accumulator) add(rec canonical.Record) {
	i := a.plants.Assign(rec.Plant)
	j := a.insects.Assign(rec.Insect)
	for len(a.plantNbrs) <= i {
		a.plantNbrs = append(a.plantNbrs, make(map[int]struct{}))
	}
	for len(a.insNbrs) <= j {
		a.insNbrs = append(a.insNbrs, make(map[int]struct{}))
	}
	if rec.Weight > 0 {
		a.plantNbrs[i][j] = struct{}{}
		a.insNbrs[j][i] = struct{}{}
	}
}

func (a *accumulator) result() *Result {
	res := &Result{
		Plants:   a.plants,
		Insects:  a.insects,
		KPlants:  make([]int, len(a.plantNbrs)),
		KInsects: make([]int, len(a.insNbrs)),
	}
	for i, set := range a.plantNbrs {
		res.KPlants[i] = len(set)
	}
	for j, set := range a.insNbrs {
		res.KInsects[j] = len(set)
	}

	return res
}

// Parse scans a canonical stream and computes degrees.
// Short and malformed lines are skipped and logged by canonical.Scan.
//
// Complexity: O(L) for L lines, O(S + E) memory.
func Parse(r io.Reader, opts ...canonical.Option) (*Result, error) {
	acc := newAccumulator()
	err := canonical.Scan(r, func(_ int, rec canonical.Record) error {
		acc.add(rec)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return acc.result(), nil
}

// ParseFile is Parse over the file at path. A missing file yields
// canonical.ErrMissingFile.
func ParseFile(path string, opts ...canonical.Option) (*Result, error) {
	acc := newAccumulator()
	err := canonical.ReadFile(path, func(_ int, rec canonical.Record) error {
		acc.add(rec)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return acc.result(), nil
}

// FromNetwork computes the Result the simulator would obtain from net's export,
// without going through a file.
func FromNetwork(net *network.Network) *Result {
	acc := newAccumulator()
	for _, rec := range canonical.Records(net) {
		acc.add(rec)
	}

	return acc.result()
}

// CrossCheck returns nil iff a and b agree on both ID tables and both degree
// sequences. Otherwise it returns ErrDisagree with a diff of the first
// differing component.
func CrossCheck(a, b *Result) error {
	parts := []struct {
		name        string
		left, right any
	}{
		{"plant ids", a.Plants.Names(), b.Plants.Names()},
		{"insect ids", a.Insects.Names(), b.Insects.Names()},
		{"plant degrees", a.KPlants, b.KPlants},
		{"insect degrees", a.KInsects, b.KInsects},
	}
	for _, p := range parts {
		if diff := cmp.Diff(p.left, p.right); diff != "" {
			return fmt.Errorf("%w: %s (-a +b):\n%s", ErrDisagree, p.name, diff)
		}
	}

	return nil
}

// PlantDegree returns the name and degree of plant id.
func (r *Result) PlantDegree(id int) (string, int, bool) {
	name, ok := r.Plants.Name(id)
	if !ok {
		return "", 0, false
	}

	return name, r.KPlants[id], true
}

// InsectDegree returns the name and degree of insect id.
func (r *Result) InsectDegree(id int) (string, int, bool) {
	name, ok := r.Insects.Name(id)
	if !ok {
		return "", 0, false
	}

	return name, r.KInsects[id], true
}
