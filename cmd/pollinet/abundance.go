// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/pollinet/abundance"
	"github.com/katalvlaran/pollinet/canonical"
	"github.com/katalvlaran/pollinet/degree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// guild is one side of the network with its degree sequence and series file.
type guild struct {
	role   string
	ids    *degree.IDTable
	k      []int
	series string
}

func newAbundanceCmd(a *app) *cobra.Command {
	var netPath, plants, insects string
	var rank bool
	cmd := &cobra.Command{
		Use:   "abundance",
		Short: "Relate species degree to equilibrium abundance",
		Long: `Reads the canonical network for degrees and the simulator's final time step
for abundances, one guild at a time. A missing series file skips that guild; a
series whose width does not divide by the guild size aborts that guild only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			netPath = firstNonEmpty(netPath, a.cfg.Network.Output)
			if netPath == "" {
				return fmt.Errorf("--network is required")
			}
			res, err := degree.ParseFile(netPath, canonical.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defPlants, defInsects := a.cfg.SeriesPaths()
			guilds := []guild{
				{role: "plant", ids: res.Plants, k: res.KPlants, series: firstNonEmpty(plants, defPlants)},
				{role: "insect", ids: res.Insects, k: res.KInsects, series: firstNonEmpty(insects, defInsects)},
			}

			failed := 0
			for _, g := range guilds {
				if err := a.reportGuild(cmd.OutOrStdout(), g, rank); err != nil {
					failed++
				}
			}
			if failed == len(guilds) {
				return fmt.Errorf("no guild could be analysed")
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&netPath, "network", "n", "", "canonical interaction file")
	cmd.Flags().StringVar(&plants, "plants", "", "plant abundance series")
	cmd.Flags().StringVar(&insects, "insects", "", "insect abundance series")
	cmd.Flags().BoolVar(&rank, "rank", false, "also print the rank-abundance curve")

	return cmd
}

// reportGuild prints one guild; every failure is logged here exactly once.
func (a *app) reportGuild(w io.Writer, g guild, rank bool) error {
	log := a.logger.With(zap.String("role", g.role), zap.String("file", g.series))
	if len(g.k) == 0 {
		log.Warn("guild has no species; skipping")
		return errors.New("empty guild")
	}
	eq, err := abundance.ExtractFile(g.series, len(g.k))
	switch {
	case errors.Is(err, abundance.ErrMissingFile):
		log.Warn("abundance series missing; skipping guild")
		return err
	case err != nil:
		log.Error("abundance extraction failed; skipping guild", zap.Error(err))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tID\tNAME\tDEGREE\tABUNDANCE")
	pts, err := abundance.Pairs(g.k, eq.Abundances)
	if err != nil {
		return err
	}
	for id, p := range pts {
		name, _ := g.ids.Name(id)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%g\n", g.role, id, name, p.Degree, p.Abundance)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if fit, err := abundance.FitLogLog(g.k, eq.Abundances); err == nil {
		fmt.Fprintf(w, "%s log-log fit: slope=%.4f intercept=%.4f (%d patches)\n", g.role, fit.Slope, fit.Intercept, eq.Patches)
	} else {
		log.Debug("no log-log fit", zap.Error(err))
	}
	if rank {
		for i, v := range abundance.RankAbundance(eq.Abundances) {
			fmt.Fprintf(w, "%s rank %d %g\n", g.role, i+1, v)
		}
	}

	return nil
}
