// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// compare.go — the compare command.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/bottleneck"
	"github.com/katalvlaran/lvtopo/pipeline"
)

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Pairwise weighted bottleneck distances between synthetic units",
		Long: `Run the synthetic grid and print the matrix of weighted bottleneck
distances between the units' diagrams in dimension bottleneck.dim. Failed
units are left out.

bottleneck.padding defaults to strict. With padding: zero, any two diagrams
of two or more pairs can match every pair to a free padding cell, so the
matrix degenerates to all zeros.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			units, err := synthUnits(a.cfg, false, a.logger)
			if err != nil {
				return err
			}
			r := a.runner()
			reports, err := r.Run(cmd.Context(), units)
			if err != nil {
				return err
			}

			ok := make([]pipeline.Report, 0, len(reports))
			names := make([]string, 0, len(reports))
			for _, rep := range reports {
				if !rep.OK() {
					a.logger.Warn("unit left out of comparison", "unit", rep.Name, "err", rep.Err)
					continue
				}
				ok = append(ok, rep)
				names = append(names, rep.Name)
			}
			if len(ok) < 2 {
				return fmt.Errorf("compare: %d usable units, need 2", len(ok))
			}

			m, err := r.PairwiseBottleneck(cmd.Context(), ok, a.cfg.Bottleneck.Dim, a.cfg.WeightFunc(),
				bottleneck.WithLogger(a.logger), bottleneck.WithPadding(a.cfg.Padding()))
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), names, m, a.jsonOut)
		},
	}
}
