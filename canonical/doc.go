// SPDX-License-Identifier: MIT

// Package canonical owns the interaction interchange format shared by the network
// exporter, the degree re-parser and the external simulator:
//
//	<patch> <plant> <insect> <weight>
//
// one record per line, whitespace separated, no header. Column order and the
// absence of a header are part of the contract.
//
// Every reader in this module goes through ParseLine (via Scan), so the exporter's
// verification step, the degree re-parser and LoadGamma cannot disagree on which
// lines count or in what order. A line with fewer than four fields, or with a
// patch or weight that does not parse, is skipped and logged; extra columns are
// ignored.
//
// Weights are written with strconv.FormatFloat(w, 'g', -1, 64), the shortest
// text that parses back to the identical float64.
package canonical
