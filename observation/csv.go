// SPDX-License-Identifier: MIT

package observation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Column headers of the raw observation table.
const (
	ColumnSite       = "Site"
	ColumnHabitat    = "Habitat"
	ColumnLowerTaxon = "Lower_Taxon"
	ColumnUpperTaxon = "Upper_Taxon"
	ColumnConflict   = "Conflict"
)

var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("observation: missing required column")

	// ErrEmptyTable indicates the stream has no header row.
	ErrEmptyTable = errors.New("observation: empty table")

	// ErrMalformedRow marks a data row that cannot be mapped onto the header.
	ErrMalformedRow = errors.New("observation: malformed row")
)

// Option configures ReadCSV.
type Option func(*readOptions)

type readOptions struct {
	logger *zap.Logger
	comma  rune
}

// WithLogger routes skipped-row diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *readOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *readOptions) { o.comma = r }
}

// CanonicalName turns a taxon label into a single whitespace-free token, the
// only form the space-delimited interaction format can carry.
func CanonicalName(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

// ReadCSV reads raw observation rows from a CSV stream with a header row.
//
// Columns are located by header name; extra columns are ignored and a missing
// Conflict column means no row is flagged. Rows that are too short for the
// header are skipped and logged. Taxon names pass through CanonicalName.
func ReadCSV(r io.Reader, opts ...Option) ([]Row, error) {
	o := readOptions{logger: zap.NewNop(), comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("observation: read header: %w", err)
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			o.logger.Warn("skipping unreadable row", zap.Int("line", line), zap.Error(err))
			continue
		}
		row, err := cols.row(record)
		if err != nil {
			o.logger.Warn("skipping malformed row", zap.Int("line", line), zap.Error(err))
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// columnIndex holds header positions; conflict is -1 when the column is absent.
type columnIndex struct {
	site, habitat, lower, upper, conflict int
	width                                 int
}

func locateColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		// Spreadsheet exports often prefix the first header with a UTF-8 BOM.
		pos[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	idx := columnIndex{conflict: -1}
	required := []struct {
		name string
		dst  *int
	}{
		{ColumnSite, &idx.site},
		{ColumnHabitat, &idx.habitat},
		{ColumnLowerTaxon, &idx.lower},
		{ColumnUpperTaxon, &idx.upper},
	}
	for _, req := range required {
		i, ok := pos[req.name]
		if !ok {
			return idx, fmt.Errorf("%w: %s", ErrMissingColumn, req.name)
		}
		*req.dst = i
		if i+1 > idx.width {
			idx.width = i + 1
		}
	}
	if i, ok := pos[ColumnConflict]; ok {
		idx.conflict = i
	}

	return idx, nil
}

func (c columnIndex) row(record []string) (Row, error) {
	if len(record) < c.width {
		return Row{}, fmt.Errorf("%w: %d fields, need %d", ErrMalformedRow, len(record), c.width)
	}
	row := Row{
		Site:       strings.TrimSpace(record[c.site]),
		Habitat:    strings.TrimSpace(record[c.habitat]),
		LowerTaxon: CanonicalName(record[c.lower]),
		UpperTaxon: CanonicalName(record[c.upper]),
	}
	if c.conflict >= 0 && c.conflict < len(record) {
		row.Conflict = record[c.conflict]
	}

	return row, nil
}
