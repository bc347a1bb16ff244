// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// prices.go — deterministic daily price candles via discrete GBM.
//
// Invariant after each day: Low ≤ min(Open, Close) ≤ max(Open, Close) ≤ High.

package builder

import "math"

// Prices holds one value per trading day.
type Prices struct {
	Open, High, Low, Close []float64
}

// Len reports the number of days.
func (p Prices) Len() int { return len(p.Close) }

// BuildPriceSeries simulates days trading days. Each day walks
// WithIntradaySteps steps of
//
//	S ← S·exp((μ − σ²/2)Δt + σ√Δt·Z),  Δt = 1/steps
//
// and records the first, extreme and last prices.
//
// Errors:
//   - ErrBadSize when days < 1.
func BuildPriceSeries(days int, seed int64, opts ...BuilderOption) (Prices, error) {
	if days < 1 {
		return Prices{}, builderErrorf("BuildPriceSeries", ErrBadSize, "days=%d", days)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	p := Prices{
		Open:  make([]float64, days),
		High:  make([]float64, days),
		Low:   make([]float64, days),
		Close: make([]float64, days),
	}

	dt := 1 / float64(cfg.steps)
	drift := (cfg.drift - 0.5*cfg.volatility*cfg.volatility) * dt
	noise := cfg.volatility * math.Sqrt(dt)

	s := cfg.priceStart
	for d := 0; d < days; d++ {
		p.Open[d] = s
		hi, lo := s, s
		for range cfg.steps {
			s *= math.Exp(drift + noise*rng.NormFloat64())
			hi = max(hi, s)
			lo = min(lo, s)
		}
		p.Close[d] = s
		p.High[d] = hi
		p.Low[d] = lo
	}
	return p, nil
}
