// SPDX-License-Identifier: MIT
// Package: pollinet/canonical
//
// scan.go - line scanner shared by every reader of the interchange format.

package canonical

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// Option customizes the readers of this package.
type Option func(*scanConfig)

type scanConfig struct {
	logger *zap.Logger
	source string
}

func newScanConfig(opts ...Option) scanConfig {
	cfg := scanConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes skipped-line diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *scanConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSource names the stream in log lines (ReadFile sets it to the path).
func WithSource(name string) Option {
	return func(c *scanConfig) { c.source = name }
}

// Scan calls fn for every well-formed record of r, in stream order.
//
// Blank lines are ignored. Short and malformed lines are skipped with one
// warning carrying the file name and line number. A non-nil error from fn stops
// the scan and is returned unchanged.
func Scan(r io.Reader, fn func(lineNo int, rec Record) error, opts ...Option) error {
	cfg := newScanConfig(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			cfg.logger.Warn("skipping interaction record",
				zap.String("file", cfg.source),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		if err := fn(lineNo, rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("canonical: scan %s: %w", cfg.source, err)
	}

	return nil
}

// ReadFile opens path and Scans it.
// A path that does not exist yields ErrMissingFile.
func ReadFile(path string, fn func(lineNo int, rec Record) error, opts ...Option) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Scan(f, fn, append([]Option{WithSource(path)}, opts...)...)
}

// Open opens a canonical file, mapping a missing path onto ErrMissingFile.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("canonical: open %s: %w", path, err)
	}

	return f, nil
}
