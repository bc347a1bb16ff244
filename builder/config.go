// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng         = nil  (seed argument decides)
//   - amplitude   = 1.0
//   - chirp f0/f1 = 0.02 / 0.25 cycles per sample
//   - trend       = 0.0
//   - noiseSigma  = 0.0
//   - price S0    = 100, daily μ = 0.0005, daily σ = 0.02, 8 intraday steps

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by value; generators never mutate it.
type builderConfig struct {
	rng *rand.Rand

	// Series controls (chirp).
	amplitude  float64 // >0
	freqStart  float64 // >0
	freqEnd    float64 // >0
	trendK     float64 // any real
	noiseSigma float64 // >=0

	// Price controls (GBM).
	priceStart float64 // >0
	drift      float64 // any real
	volatility float64 // >=0
	steps      int     // >=1
}

const (
	defaultAmplitude  = 1.0
	defaultFreqStart  = 0.02
	defaultFreqEnd    = 0.25
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0

	defaultPriceStart = 100.0
	defaultDrift      = 0.0005
	defaultVolatility = 0.02
	defaultSteps      = 8
)

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		freqStart:  defaultFreqStart,
		freqEnd:    defaultFreqEnd,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		priceStart: defaultPriceStart,
		drift:      defaultDrift,
		volatility: defaultVolatility,
		steps:      defaultSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}
