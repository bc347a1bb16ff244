// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// options.go — functional options for generators.
//
// Every constructor validates its argument and panics on a meaningless
// value; generators themselves never panic.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption mutates builderConfig before a generator runs.
type BuilderOption func(*builderConfig)

// WithRand shares r across generator calls. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the chirp amplitude. Panics when A ≤ 0.
func WithAmplitude(A float64) BuilderOption {
	if !(A > 0) {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) { c.amplitude = A }
}

// WithSweep sets the chirp start and end frequencies in cycles per sample.
// Panics unless both are > 0.
func WithSweep(f0, f1 float64) BuilderOption {
	if !(f0 > 0) || !(f1 > 0) {
		panic("builder: WithSweep(f<=0)")
	}
	return func(c *builderConfig) { c.freqStart, c.freqEnd = f0, f1 }
}

// WithTrend adds k·i to sample i.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise adds N(0, sigma²) noise per sample. Panics when sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithPriceModel sets the GBM start price, daily drift and daily volatility.
// Panics when start ≤ 0 or vol < 0.
func WithPriceModel(start, mu, vol float64) BuilderOption {
	if !(start > 0) || vol < 0 {
		panic("builder: WithPriceModel(start<=0 or vol<0)")
	}
	return func(c *builderConfig) { c.priceStart, c.drift, c.volatility = start, mu, vol }
}

// WithIntradaySteps sets GBM steps per day. Panics when n < 1.
func WithIntradaySteps(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithIntradaySteps(n<1)")
	}
	return func(c *builderConfig) { c.steps = n }
}
