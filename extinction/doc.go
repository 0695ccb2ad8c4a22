// SPDX-License-Identifier: MIT

// Package extinction reads the simulator's sequential plant-removal experiment.
//
// results.txt starts with a "#" header and then holds one row per removal step:
//
//	K Robustness SurvPlants SurvInsects [Service GiniP GiniI]
//
// K is the number of plants removed so far. The curve is usually shown against
// the fraction removed, K / max K, and summarized by the area under robustness.
package extinction
