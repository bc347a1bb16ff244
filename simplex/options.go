// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// options.go — functional options for VietorisRips.
//
// Option constructors validate and panic on meaningless values; the builder
// itself never panics.

package simplex

import "log/slog"

// MaxRipsDim is the highest simplex dimension VietorisRips will emit.
const MaxRipsDim = 2

// Option customises VietorisRips.
type Option func(*ripsConfig)

type ripsConfig struct {
	logger *slog.Logger
	maxDim int
}

func newRipsConfig(opts ...Option) ripsConfig {
	cfg := ripsConfig{
		logger: slog.New(slog.DiscardHandler),
		maxDim: MaxRipsDim,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simplex: WithLogger(nil)")
	}
	return func(c *ripsConfig) { c.logger = l }
}

// WithMaxDim truncates the build at dimension d (0, 1 or 2).
// Panics outside [0, MaxRipsDim].
func WithMaxDim(d int) Option {
	if d < 0 || d > MaxRipsDim {
		panic("simplex: WithMaxDim out of [0,2]")
	}
	return func(c *ripsConfig) { c.maxDim = d }
}
