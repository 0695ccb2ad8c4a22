// SPDX-License-Identifier: MIT
// Package: pollinet/canonical
//
// record.go - single-record codec: FormatRecord / ParseLine.

package canonical

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MinFields is the number of leading fields a record line must carry.
const MinFields = 4

var (
	// ErrShortRecord indicates a line with fewer than MinFields fields.
	ErrShortRecord = errors.New("canonical: short record")

	// ErrMalformedRecord indicates an unparseable patch or weight field.
	ErrMalformedRecord = errors.New("canonical: malformed record")

	// ErrInvalidName indicates a taxon name that cannot be written as one field.
	ErrInvalidName = errors.New("canonical: invalid taxon name")

	// ErrMissingFile indicates the canonical file does not exist.
	ErrMissingFile = errors.New("canonical: missing file")

	// ErrOrderMismatch indicates a re-read stream diverges from the network's edges.
	ErrOrderMismatch = errors.New("canonical: record order mismatch")
)

// Record is one interaction line.
type Record struct {
	Patch  int
	Plant  string
	Insect string
	Weight float64
}

// FormatRecord renders r without a trailing newline.
func FormatRecord(r Record) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.Patch))
	sb.WriteByte(' ')
	sb.WriteString(r.Plant)
	sb.WriteByte(' ')
	sb.WriteString(r.Insect)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(r.Weight, 'g', -1, 64))

	return sb.String()
}

// ParseLine decodes one line.
//
// Errors:
//   - ErrShortRecord when fewer than MinFields whitespace-separated fields exist.
//   - ErrMalformedRecord when the patch is not a non-negative integer or the
//     weight is not a finite real.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("%w: %d fields", ErrShortRecord, len(fields))
	}
	patch, err := strconv.Atoi(fields[0])
	if err != nil || patch < 0 {
		return Record{}, fmt.Errorf("%w: patch %q", ErrMalformedRecord, fields[0])
	}
	w, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return Record{}, fmt.Errorf("%w: weight %q", ErrMalformedRecord, fields[3])
	}

	return Record{Patch: patch, Plant: fields[1], Insect: fields[2], Weight: w}, nil
}

// validName reports whether s survives a write/split round trip as one field.
func validName(s string) bool {
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}
