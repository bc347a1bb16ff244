// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// units.go — analysis units from synthetic frameworks and series.

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/config"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/hybrid"
	"github.com/katalvlaran/lvtopo/pipeline"
	"github.com/katalvlaran/lvtopo/radius"
	"github.com/katalvlaran/lvtopo/simplex"
)

// synthUnits builds one unit per complexity × framework, in that order.
func synthUnits(cfg *config.Config, withHybrid bool, log *slog.Logger) ([]pipeline.Unit, error) {
	s := cfg.Synthetic
	units := make([]pipeline.Unit, 0, len(s.Complexities)*len(s.Frameworks))
	for _, k := range s.Complexities {
		for _, f := range cfg.Frameworks() {
			pc, err := builder.Generate(f, s.Points, s.Dim, k, s.Seed)
			if err != nil {
				return nil, err
			}
			if s.Normalize {
				pc = cloud.MinMaxNormalize(pc)
			}
			u := pipeline.Unit{
				Name:   fmt.Sprintf("%s/%d", f, k),
				Cloud:  pc,
				Strata: frameworkStrata(f, pc.Len()),
			}
			if withHybrid {
				if u.Hybrid, err = hybridInput(pc, cloud.NormField(pc), cfg.RadiusOptions(), log); err != nil {
					return nil, fmt.Errorf("%s: %w", u.Name, err)
				}
			}
			units = append(units, u)
		}
	}
	return units, nil
}

// frameworkStrata marks the deliberately degenerate half of frameworks that
// have one: the collapsed half of non-smooth and the perturbed half of
// hybrid. Other frameworks have no singular set.
func frameworkStrata(f builder.Framework, n int) homology.Strata {
	switch f {
	case builder.NonSmooth, builder.Hybrid:
		vs := make([]int, n/2)
		for i := range vs {
			vs[i] = i
		}
		return homology.NewStrata(vs...)
	}
	return homology.NewStrata()
}

// seriesUnit delay-embeds series into a unit whose singular region is
// weighted by the raw series values.
func seriesUnit(name string, series []float64, cfg *config.Config, log *slog.Logger) (pipeline.Unit, error) {
	pc, err := cloud.DelayEmbed(series, cfg.Embedding.Delay, cfg.Embedding.Dim)
	if err != nil {
		return pipeline.Unit{}, err
	}
	if cfg.Embedding.Normalize {
		pc = cloud.MinMaxNormalize(pc)
	}
	in, err := hybridInput(pc, cloud.SeriesField(series, pc), cfg.RadiusOptions(), log)
	if err != nil {
		return pipeline.Unit{}, err
	}
	return pipeline.Unit{Name: name, Cloud: pc, Strata: homology.NewStrata(), Hybrid: in}, nil
}

// hybridInput uses pc for all three regions: its Rips complex doubles as the
// non-smooth and singular complexes.
func hybridInput(pc *cloud.PointCloud, field cloud.Field, ropts radius.Options, log *slog.Logger) (*hybrid.Input, error) {
	in := &hybrid.Input{Smooth: pc, SingularField: field}
	if pc.Len() == 0 {
		return in, nil
	}
	r, err := radius.Select(pc, ropts)
	if err != nil {
		return nil, err
	}
	c, _ := simplex.VietorisRips(pc, r, simplex.WithLogger(log))
	in.NonSmooth, in.Singular = c, c
	return in, nil
}
