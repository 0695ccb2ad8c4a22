// SPDX-License-Identifier: MIT
// Package: pollinet/extinction
//
// extinction.go - results parser and curve summaries.

package extinction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultFile is where the simulator writes the experiment.
const DefaultFile = "results.txt"

const (
	minColumns  = 4
	fullColumns = 7
)

// ErrMissingFile indicates the results file does not exist.
var ErrMissingFile = errors.New("extinction: missing file")

// Step is one removal step.
type Step struct {
	K           float64
	Robustness  float64
	SurvPlants  float64
	SurvInsects float64

	// Extended is true when the three optional columns were present.
	Extended bool
	Service  float64
	GiniP    float64
	GiniI    float64
}

// Curve is the ordered experiment.
type Curve struct {
	Steps []Step
}

// Option customizes Parse.
type Option func(*parseConfig)

type parseConfig struct {
	logger *zap.Logger
	source string
}

// WithLogger routes skipped-row diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *parseConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Parse reads a results stream. Blank and "#" lines are ignored; rows with
// fewer than four numeric leading fields are skipped and logged.
func Parse(r io.Reader, opts ...Option) (*Curve, error) {
	cfg := parseConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	curve := &Curve{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		step, err := parseStep(strings.Fields(line))
		if err != nil {
			cfg.logger.Warn("skipping results row",
				zap.String("file", cfg.source), zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		curve.Steps = append(curve.Steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("extinction: read: %w", err)
	}

	return curve, nil
}

func parseStep(fields []string) (Step, error) {
	if len(fields) < minColumns {
		return Step{}, fmt.Errorf("%d fields, need %d", len(fields), minColumns)
	}
	n := minColumns
	if len(fields) >= fullColumns {
		n = fullColumns
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Step{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		vals[i] = v
	}
	s := Step{K: vals[0], Robustness: vals[1], SurvPlants: vals[2], SurvInsects: vals[3]}
	if n == fullColumns {
		s.Extended = true
		s.Service, s.GiniP, s.GiniI = vals[4], vals[5], vals[6]
	}

	return s, nil
}

// ParseFile parses the file at path.
func ParseFile(path string, opts ...Option) (*Curve, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("extinction: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, append(opts, func(c *parseConfig) { c.source = path })...)
}

// FractionRemoved returns K / max K per step, or all zeros when max K is 0.
func (c *Curve) FractionRemoved() []float64 {
	out := make([]float64, len(c.Steps))
	var maxK float64
	for _, s := range c.Steps {
		if s.K > maxK {
			maxK = s.K
		}
	}
	if maxK == 0 {
		return out
	}
	for i, s := range c.Steps {
		out[i] = s.K / maxK
	}

	return out
}

// Area integrates robustness over the fraction removed with the trapezoidal
// rule, in step order. Fewer than two steps give 0.
func (c *Curve) Area() float64 {
	x := c.FractionRemoved()
	var area float64
	for i := 1; i < len(c.Steps); i++ {
		area += (x[i] - x[i-1]) * (c.Steps[i].Robustness + c.Steps[i-1].Robustness) / 2
	}

	return area
}
