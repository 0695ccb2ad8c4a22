// SPDX-License-Identifier: MIT

// Command pollinet builds multi-patch plant–pollinator networks from field
// observations, re-derives species degrees and equilibrium abundances, and
// sweeps the external population-dynamics simulator over a dispersal grid.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/katalvlaran/pollinet/config"
	"github.com/katalvlaran/pollinet/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state resolved once per invocation by the root pre-run hook.
type app struct {
	configPath string
	verbose    bool
	jsonLogs   bool

	cfg   *config.Config
	runID string

	// base carries the command name; logger adds run_id on top of it.
	base   *zap.Logger
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pollinet",
		Short: "Plant–pollinator network robustness pipeline",
		Long: `pollinet turns raw interaction observations into the canonical multi-patch
network consumed by the population-dynamics simulator, and analyses what the
simulator produces:

  build       filter one site, build and export its network
  degrees     re-derive species degrees from a canonical file
  abundance   relate degree to equilibrium abundance
  sweep       run the simulator over a dispersal grid and report the optimum
  extinction  summarize the plant-removal experiment
  analyze     build and cross-check several sites in isolation`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "JSON log lines instead of console output")

	root.AddCommand(
		newBuildCmd(a),
		newDegreesCmd(a),
		newAbundanceCmd(a),
		newSweepCmd(a),
		newExtinctionCmd(a),
		newAnalyzeCmd(a),
		newConfigCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Logging.Verbose = a.verbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Logging.JSON = a.jsonLogs
	}
	a.cfg = cfg
	a.runID = uuid.NewString()

	logger, err := logging.New(logging.Options{
		Verbose: cfg.Logging.Verbose,
		JSON:    cfg.Logging.JSON,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.setLogger(logger.With(zap.String("command", cmd.Name())))

	return nil
}

// setLogger installs base and derives the run-tagged logger from it.
func (a *app) setLogger(base *zap.Logger) {
	a.base = base
	a.logger = base.With(zap.String("run_id", a.runID))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
