// SPDX-License-Identifier: MIT
// Package: lvtopo/config
//
// convert.go — conversions into package option types.

package config

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvtopo/bottleneck"
	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/diagram"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/pipeline"
	"github.com/katalvlaran/lvtopo/radius"
)

// RadiusOptions converts the radius section. Call on a validated Config.
func (c *Config) RadiusOptions() radius.Options {
	return radius.Options{
		Method:      radius.Method(c.Radius.Method),
		Neighbors:   c.Radius.Neighbors,
		ScaleFactor: c.Radius.ScaleFactor,
	}
}

// PipelineParams converts the analysis parameters.
func (c *Config) PipelineParams() pipeline.Params {
	return pipeline.Params{
		Radius:     c.RadiusOptions(),
		Degree:     c.Homology.Degree,
		Perversity: c.Homology.Perversity,
		Threshold:  c.Diagram.Threshold,
		Prominence: c.Diagram.Prominence,
	}
}

// Estimator returns the SVD rank estimator at the configured tolerance.
func (c *Config) Estimator() homology.RankEstimator {
	return homology.SVDEstimator{Tolerance: c.Homology.Tolerance}
}

// RunnerOptions returns the runner options implied by the pipeline and
// homology sections. Logger and metrics are left to the caller.
func (c *Config) RunnerOptions() []pipeline.Option {
	opts := []pipeline.Option{
		pipeline.WithParams(c.PipelineParams()),
		pipeline.WithEstimator(c.Estimator()),
		pipeline.WithUnitTimeout(c.Pipeline.UnitTimeout),
	}
	if c.Pipeline.Workers > 0 {
		opts = append(opts, pipeline.WithWorkers(c.Pipeline.Workers))
	}
	return opts
}

// Padding returns the bottleneck padding policy. Validated configs never
// hold an unknown policy; it falls back to zero fill.
func (c *Config) Padding() bottleneck.Padding {
	p, err := bottleneck.ParsePadding(c.Bottleneck.Padding)
	if err != nil {
		return bottleneck.PaddingZeroFill
	}
	return p
}

// WeightFunc returns the per-point weighting used by compare.
func (c *Config) WeightFunc() pipeline.WeightFunc {
	if c.Bottleneck.Weights == "lifespan" {
		return diagram.LifespanWeights
	}
	return pipeline.UniformWeights
}

// Frameworks returns the synthetic frameworks in configured order.
func (c *Config) Frameworks() []builder.Framework {
	out := make([]builder.Framework, 0, len(c.Synthetic.Frameworks))
	for _, name := range c.Synthetic.Frameworks {
		if f, err := builder.ParseFramework(name); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// Logger builds a slog logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
