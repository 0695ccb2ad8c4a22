// SPDX-License-Identifier: MIT

// Package pollinet turns raw plant–pollinator field observations into
// multi-patch interaction networks and drives an external robustness
// simulator over them.
//
// What is pollinet?
//
//	A small pipeline that brings together:
//		• Observation filtering: one site, conflicted rows dropped, habitats as patches
//		• Network construction: accumulated, per-patch normalized interaction strength
//		• Canonical export: the whitespace "patch plant insect weight" format
//		• Degree parsing: partner counts with first-appearance integer IDs
//		• Steady-state abundances: last time step of a simulator series
//		• Parameter sweeps: one simulator process per value, failures tolerated
//		• Extinction curves: secondary-extinction tables and their area
//
// Under the hood, everything is organized into these subpackages:
//
//	core/         thread-safe, insertion-ordered weighted graph for one patch
//	matrix/       dense row-major float64 matrices
//	bfs/          breadth-first traversal and patch compartments
//	observation/  CSV reading, canonical taxon names, site filtering
//	network/      Build and per-patch normalization
//	canonical/    exporter, round-trip verifier, line scanner, gamma loader
//	degree/       ID-consistent degree re-parser
//	abundance/    equilibrium extraction and degree–abundance relations
//	sweep/        simulator process runner and sweep driver
//	metrics/      Prometheus registry for sweep invocations
//	extinction/   results table parser
//	config/       YAML configuration with env overrides
//	logging/      zap logger construction
//	cmd/pollinet  cobra command-line front end
//
// Quick flow:
//
//	rows, _ := observation.ReadCSV(f)
//	net, _ := network.Build(observation.Filter(rows, "Haddon_Hill"))
//	_, _ = canonical.WriteFile("Haddon_Hill.txt", net)
//	deg, _ := degree.ParseFile("Haddon_Hill.txt")
//
// See cmd/pollinet for the end-to-end commands.
package pollinet
