// SPDX-License-Identifier: MIT

// Package observation selects the usable field-observation rows for one site and
// maps that site's habitats onto patch indices.
//
// A raw row is (Site, Habitat, Lower_Taxon, Upper_Taxon, Conflict). Filter keeps the
// rows of the target site whose Conflict marker is absent and assigns every distinct
// habitat a patch index in ascending label order. ReadCSV loads the raw table from a
// CSV stream with a header row.
package observation
