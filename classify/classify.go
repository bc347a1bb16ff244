// SPDX-License-Identifier: MIT
// Package: lvtopo/classify
//
// classify.go — Classifier interface, tagged output and options.

package classify

import (
	"log/slog"

	"github.com/katalvlaran/lvtopo/simplex"
)

// Tagged pairs a simplex with the value a classifier assigned to it.
type Tagged struct {
	Simplex simplex.Simplex
	Value   float64
}

// Classifier assigns one value per simplex of a complex.
// Implementations must keep the complex's order and never mutate it.
type Classifier interface {
	Classify(c *simplex.Complex) ([]Tagged, error)
}

// Option customises a classifier.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes classifier diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("classify: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// Values projects tagged output onto its values, in order.
func Values(ts []Tagged) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = t.Value
	}
	return out
}
