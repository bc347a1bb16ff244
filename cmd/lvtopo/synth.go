// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// synth.go — the synth command.

package main

import (
	"github.com/spf13/cobra"
)

func newSynthCommand(a *app) *cobra.Command {
	var withHybrid bool
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Analyse the synthetic framework × complexity grid",
		Long: `Generate one point cloud per configured framework and complexity level,
then report homology ranks, intersection homology ranks and H0 persistence
summaries for each.

Examples:
  lvtopo synth
  lvtopo synth --config run.yaml --hybrid --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			units, err := synthUnits(a.cfg, withHybrid, a.logger)
			if err != nil {
				return err
			}
			reports, err := a.runner().Run(cmd.Context(), units)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), reports, a.jsonOut)
		},
	}
	cmd.Flags().BoolVar(&withHybrid, "hybrid", false, "also compose the hybrid filtration per unit")
	return cmd
}
