// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/pollinet/config"
	"github.com/katalvlaran/pollinet/metrics"
	"github.com/katalvlaran/pollinet/sweep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		values           []float64
		start, end, step float64
		executable       string
		workDir          string
		timeout          time.Duration
		textfile         string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the simulator over dispersal values and report the optimum",
		Long: `Runs the simulator once per value, sequentially, feeding "<step>\n<D>\n" on
stdin and reading robustness from the metric file afterwards. A failed run
records robustness 0 and the sweep continues. Values come from --values, from
--start/--end/--step, from the config file, or from the built-in grid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("values") {
				cfg.Sweep.Values = values
				cfg.Sweep.Range = nil
			}
			if flags.Changed("start") || flags.Changed("end") || flags.Changed("step") {
				cfg.Sweep.Range = &config.RangeConfig{Start: start, End: end, Step: step}
			}
			if executable != "" {
				cfg.Simulator.Executable = executable
			}
			if workDir != "" {
				cfg.Simulator.WorkDir = workDir
			}
			if timeout > 0 {
				cfg.Simulator.Timeout = timeout.String()
			}
			textfile = firstNonEmpty(textfile, cfg.Metrics.Textfile)
			if err := cfg.Validate(); err != nil {
				return err
			}
			grid, err := cfg.SweepValues()
			if err != nil {
				return err
			}
			limit, err := cfg.TimeoutDuration()
			if err != nil {
				return err
			}

			sim := sweep.NewProcessSimulator(cfg.Simulator.Executable,
				sweep.WithWorkDir(cfg.Simulator.WorkDir),
				sweep.WithMetricFile(cfg.Simulator.MetricFile),
				sweep.WithTimeout(limit))
			reg := metrics.NewRegistry()
			d := a.newDriver(sim, cfg.Simulator.Step, reg)
			a.logger.Info("sweep starting",
				zap.String("executable", sim.Executable), zap.Int("values", len(grid)), zap.Duration("timeout", limit))

			res, runErr := d.Run(cmd.Context(), grid)
			if err := printSweep(cmd.OutOrStdout(), res, reg); err != nil {
				return err
			}
			if textfile != "" {
				if err := reg.WriteTextfile(textfile); err != nil {
					a.logger.Error("metrics textfile not written", zap.Error(err))
				}
			}

			return runErr
		},
	}
	flags := cmd.Flags()
	flags.Float64SliceVar(&values, "values", nil, "explicit dispersal values")
	flags.Float64Var(&start, "start", 0, "range start")
	flags.Float64Var(&end, "end", 0, "range end (inclusive)")
	flags.Float64Var(&step, "step", 0, "range step")
	flags.StringVar(&executable, "executable", "", "simulator executable")
	flags.StringVar(&workDir, "work-dir", "", "simulator working directory")
	flags.DurationVar(&timeout, "timeout", 0, "per-invocation timeout")
	flags.StringVar(&textfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	return cmd
}

// newDriver wires a sweep driver to the invocation's run ID. The driver tags
// its own log lines with run_id, so it gets the untagged base logger.
func (a *app) newDriver(sim sweep.Simulator, step string, reg *metrics.Registry) *sweep.Driver {
	return &sweep.Driver{
		Simulator: sim,
		Step:      step,
		Logger:    a.base,
		Metrics:   reg,
		RunID:     a.runID,
	}
}

// printSweep prints the (D, R) table, the optimum and the invocation count per
// outcome.
func printSweep(w io.Writer, res *sweep.Result, reg *metrics.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "D\tROBUSTNESS\tSTATUS")
	for _, p := range res.Points {
		status := "ok"
		if p.Failed {
			status = "failed"
		}
		fmt.Fprintf(tw, "%s\t%g\t%s\n", sweep.FormatParameter(p.Parameter), p.Robustness, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(res.Points) == 0 {
		_, err := fmt.Fprintln(w, "no sweep points")
		return err
	}
	if _, err := fmt.Fprintf(w, "optimum: D=%s R=%g (%d of %d runs failed, run %s)\n",
		sweep.FormatParameter(res.Best.Parameter), res.Best.Robustness, res.Failures, len(res.Points), res.RunID); err != nil {
		return err
	}
	counts, err := reg.Snapshot()
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(metrics.Outcomes))
	for _, o := range metrics.Outcomes {
		parts = append(parts, fmt.Sprintf("%s=%g", o, counts[o]))
	}
	_, err = fmt.Fprintf(w, "invocations: %s\n", strings.Join(parts, " "))

	return err
}
