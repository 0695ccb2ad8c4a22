// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/pollinet/canonical"
	"github.com/katalvlaran/pollinet/degree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDegreesCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "degrees",
		Short: "Re-derive species degrees from a canonical file",
		RunE: func(cmd *cobra.Command, args []string) error {
			input = firstNonEmpty(input, a.cfg.Network.Output)
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			res, err := degree.ParseFile(input, canonical.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Debug("degrees computed", zap.String("file", input),
				zap.Int("plants", res.Plants.Len()), zap.Int("insects", res.Insects.Len()))

			return printDegrees(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "canonical interaction file")

	return cmd
}

func printDegrees(w io.Writer, res *degree.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tID\tNAME\tDEGREE")
	for id := range res.KPlants {
		name, k, _ := res.PlantDegree(id)
		fmt.Fprintf(tw, "plant\t%d\t%s\t%d\n", id, name, k)
	}
	for id := range res.KInsects {
		name, k, _ := res.InsectDegree(id)
		fmt.Fprintf(tw, "insect\t%d\t%s\t%d\n", id, name, k)
	}

	return tw.Flush()
}
