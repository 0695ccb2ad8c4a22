// SPDX-License-Identifier: MIT
// Package: pollinet/abundance
//
// extract.go - last-row read, reshape and patch summation.

package abundance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pollinet/matrix"
)

// maxRowBytes bounds one series row; S·P values can make rows long.
const maxRowBytes = 64 << 20

var (
	// ErrMissingFile indicates the series file does not exist.
	ErrMissingFile = errors.New("abundance: missing file")

	// ErrEmptySeries indicates the series has no non-empty row.
	ErrEmptySeries = errors.New("abundance: empty series")

	// ErrMalformedValue indicates a final-row field that is not a real number.
	ErrMalformedValue = errors.New("abundance: malformed value")

	// ErrNoSpecies indicates a non-positive species count.
	ErrNoSpecies = errors.New("abundance: species count must be positive")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, so callers can match
	// either name.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Equilibrium is the steady state of one guild.
type Equilibrium struct {
	// Abundances[i] is species i summed over all patches.
	Abundances []float64

	// Patches is P, deduced from the row length.
	Patches int

	// Matrix is the S×P reshaped final row.
	Matrix *matrix.Dense
}

// LastRow returns the whitespace-separated fields of the last non-empty line of r.
func LastRow(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	var last string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			last = line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("abundance: read series: %w", err)
	}
	if last == "" {
		return nil, ErrEmptySeries
	}

	return strings.Fields(last), nil
}

// Extract computes the equilibrium of `species` species from series r.
//
// Implementation:
//   - Stage 1: LastRow, then drop the time column.
//   - Stage 2: parse every remaining field; any failure is ErrMalformedValue,
//     since a partial vector cannot be reshaped meaningfully.
//   - Stage 3: matrix.FromFlat(species, values) enforces divisibility.
//   - Stage 4: RowSums over patches.
func Extract(r io.Reader, species int) (*Equilibrium, error) {
	if species <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoSpecies, species)
	}
	fields, err := LastRow(r)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(fields)-1)
	for col, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d %q", ErrMalformedValue, col+2, f)
		}
		values = append(values, v)
	}
	m, err := matrix.FromFlat(species, values)
	if err != nil {
		return nil, fmt.Errorf("abundance: reshape %d values over %d species: %w", len(values), species, err)
	}

	return &Equilibrium{Abundances: m.RowSums(), Patches: m.Cols(), Matrix: m}, nil
}

// ExtractFile is Extract over the file at path.
func ExtractFile(path string, species int) (*Equilibrium, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("abundance: open %s: %w", path, err)
	}
	defer f.Close()

	eq, err := Extract(f, species)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return eq, nil
}
