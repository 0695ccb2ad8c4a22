// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the pollinet CLI.
//
// A missing file is not an error: Load returns Default(). Environment variables
// POLLINET_EXECUTABLE and POLLINET_WORK_DIR override the simulator section, and
// command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/pollinet/extinction"
	"github.com/katalvlaran/pollinet/sweep"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid")

// Default series file names written by the simulator.
const (
	DefaultPlantsSeries  = "evolutionp.txt"
	DefaultInsectsSeries = "evolutionv.txt"
	DefaultTimeout       = "10m"
)

// Config is the full CLI configuration.
type Config struct {
	Observations ObservationsConfig `yaml:"observations"`
	Network      NetworkConfig      `yaml:"network"`
	Simulator    SimulatorConfig    `yaml:"simulator"`
	Sweep        SweepConfig        `yaml:"sweep"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ObservationsConfig locates the raw observation table.
type ObservationsConfig struct {
	Path  string `yaml:"path"`
	Site  string `yaml:"site"`
	Comma string `yaml:"comma"` // single character; "," when empty
}

// NetworkConfig controls the canonical export.
type NetworkConfig struct {
	Output string `yaml:"output"` // interactions_<site>_patches.txt when empty
}

// SimulatorConfig describes the external simulator and its side-channel files.
type SimulatorConfig struct {
	Executable    string `yaml:"executable"`
	Step          string `yaml:"step"`
	MetricFile    string `yaml:"metric_file"`
	PlantsSeries  string `yaml:"plants_series"`
	InsectsSeries string `yaml:"insects_series"`
	ResultsFile   string `yaml:"results_file"`
	WorkDir       string `yaml:"work_dir"`
	Timeout       string `yaml:"timeout"`
}

// SweepConfig selects the swept values: Range wins over Values, and both empty
// means sweep.DefaultValues().
type SweepConfig struct {
	Values []float64    `yaml:"values"`
	Range  *RangeConfig `yaml:"range,omitempty"`
}

// RangeConfig is an inclusive arithmetic grid.
type RangeConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// LoggingConfig controls the root logger.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Simulator: SimulatorConfig{
			Executable:    sweep.DefaultExecutable,
			Step:          sweep.DefaultStep,
			MetricFile:    sweep.DefaultMetricFile,
			PlantsSeries:  DefaultPlantsSeries,
			InsectsSeries: DefaultInsectsSeries,
			ResultsFile:   extinction.DefaultFile,
			Timeout:       DefaultTimeout,
		},
	}
}

// Load reads path over Default(). An empty or missing path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("POLLINET_EXECUTABLE"); v != "" {
		c.Simulator.Executable = v
	}
	if v := os.Getenv("POLLINET_WORK_DIR"); v != "" {
		c.Simulator.WorkDir = v
	}
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate rejects settings that cannot drive a run.
func (c *Config) Validate() error {
	if c.Simulator.Executable == "" {
		return fmt.Errorf("%w: simulator.executable is empty", ErrInvalid)
	}
	if c.Simulator.Step == "" {
		return fmt.Errorf("%w: simulator.step is empty", ErrInvalid)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.SweepValues(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if utf8.RuneCountInString(c.Observations.Comma) > 1 {
		return fmt.Errorf("%w: observations.comma %q is not one character", ErrInvalid, c.Observations.Comma)
	}

	return nil
}

// TimeoutDuration parses simulator.timeout; it must be positive.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Simulator.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: simulator.timeout: %v", ErrInvalid, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: simulator.timeout %s is not positive", ErrInvalid, d)
	}

	return d, nil
}

// SweepValues resolves the swept grid.
func (c *Config) SweepValues() ([]float64, error) {
	if r := c.Sweep.Range; r != nil {
		return sweep.Range(r.Start, r.End, r.Step)
	}
	if len(c.Sweep.Values) > 0 {
		return append([]float64(nil), c.Sweep.Values...), nil
	}

	return sweep.DefaultValues(), nil
}

// NetworkOutput returns the canonical file path for site.
func (c *Config) NetworkOutput(site string) string {
	if c.Network.Output != "" {
		return c.Network.Output
	}

	return fmt.Sprintf("interactions_%s_patches.txt", site)
}

// SimulatorPath resolves a simulator side-channel file against work_dir.
func (c *Config) SimulatorPath(name string) string {
	if filepath.IsAbs(name) || c.Simulator.WorkDir == "" {
		return name
	}

	return filepath.Join(c.Simulator.WorkDir, name)
}

// SeriesPaths returns the plant and insect series locations.
func (c *Config) SeriesPaths() (plants, insects string) {
	return c.SimulatorPath(c.Simulator.PlantsSeries), c.SimulatorPath(c.Simulator.InsectsSeries)
}
