// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/pollinet/extinction"
	"github.com/spf13/cobra"
)

func newExtinctionCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "extinction",
		Short: "Summarize the sequential plant-removal experiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			input = firstNonEmpty(input, a.cfg.SimulatorPath(a.cfg.Simulator.ResultsFile))
			curve, err := extinction.ParseFile(input, extinction.WithLogger(a.logger))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "K\tREMOVED\tROBUSTNESS\tPLANTS\tINSECTS")
			frac := curve.FractionRemoved()
			for i, s := range curve.Steps {
				fmt.Fprintf(tw, "%g\t%.3f\t%g\t%g\t%g\n", s.K, frac[i], s.Robustness, s.SurvPlants, s.SurvInsects)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "area under robustness curve: %.4f\n", curve.Area())

			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "results file")

	return cmd
}
