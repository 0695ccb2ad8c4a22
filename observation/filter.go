// SPDX-License-Identifier: MIT

package observation

import (
	"sort"
	"strings"
)

// Row is one raw interaction observation.
type Row struct {
	Site       string
	Habitat    string
	LowerTaxon string // plant side
	UpperTaxon string // visitor side
	Conflict   string // empty or a null marker when the row is usable
}

// nullMarkers are the spellings that a tabular export uses for a missing value,
// lower-cased. The set follows the default NA strings of pandas read_csv.
var nullMarkers = map[string]struct{}{
	"":         {},
	"na":       {},
	"nan":      {},
	"-nan":     {},
	"null":     {},
	"none":     {},
	"n/a":      {},
	"#n/a":     {},
	"#n/a n/a": {},
	"#na":      {},
	"<na>":     {},
	"1.#ind":   {},
	"-1.#ind":  {},
	"1.#qnan":  {},
	"-1.#qnan": {},
}

// Conflicted reports whether the row carries a conflict flag.
func (r Row) Conflicted() bool {
	_, null := nullMarkers[strings.ToLower(strings.TrimSpace(r.Conflict))]

	return !null
}

// Selection is the filtered view of one site, immutable after Filter returns.
type Selection struct {
	Site string

	// Rows holds the kept rows in input order.
	Rows []Row

	// Habitats lists the distinct habitat labels in ascending order;
	// Habitats[i] is patch i.
	Habitats []string

	// PatchIndex maps a habitat label to its patch index.
	PatchIndex map[string]int
}

// Filter keeps rows with Site == site and no conflict flag, and derives the
// habitat → patch mapping.
//
// Behavior highlights:
//   - Input order of kept rows is preserved; it drives edge order downstream.
//   - A site with no usable rows yields an empty Selection with zero patches.
//
// Complexity: O(n + h·log h) for n rows and h habitats.
func Filter(rows []Row, site string) *Selection {
	sel := &Selection{Site: site, PatchIndex: make(map[string]int)}
	seen := make(map[string]struct{})
	for _, r := range rows {
		if r.Site != site || r.Conflicted() {
			continue
		}
		sel.Rows = append(sel.Rows, r)
		if _, ok := seen[r.Habitat]; !ok {
			seen[r.Habitat] = struct{}{}
			sel.Habitats = append(sel.Habitats, r.Habitat)
		}
	}
	sort.Strings(sel.Habitats)
	for i, h := range sel.Habitats {
		sel.PatchIndex[h] = i
	}

	return sel
}

// PatchCount returns the number of patches in the selection.
func (s *Selection) PatchCount() int { return len(s.Habitats) }

// PatchOf returns the patch index of habitat.
func (s *Selection) PatchOf(habitat string) (int, bool) {
	i, ok := s.PatchIndex[habitat]

	return i, ok
}

// Empty reports whether no rows were selected.
func (s *Selection) Empty() bool { return len(s.Rows) == 0 }

// Sites lists the distinct site labels of rows in ascending order.
func Sites(rows []Row) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		if _, ok := seen[r.Site]; ok {
			continue
		}
		seen[r.Site] = struct{}{}
		out = append(out, r.Site)
	}
	sort.Strings(out)

	return out
}
