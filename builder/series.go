// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// series.go — deterministic linear chirp series.
//
// Contract:
//   - BuildChirp(n, seed, opts...) returns a slice of length n.
//   - O(n) time, O(n) memory. No global state.

package builder

import "math"

const tau = 2 * math.Pi

// BuildChirp returns a length-n linear chirp whose frequency sweeps from
// f0 to f1 (see WithSweep):
//
//	fi    = f0 + (f1 − f0)·i/(n−1)
//	θᵢ₊₁  = θᵢ + 2π·fi
//	yᵢ    = A·sin(θᵢ₊₁) + trend·i + σ·Z
//
// Errors:
//   - ErrBadSize when n < 1.
func BuildChirp(n int, seed int64, opts ...BuilderOption) ([]float64, error) {
	if n < 1 {
		return nil, builderErrorf("BuildChirp", ErrBadSize, "n=%d", n)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var theta, t float64
	for i := range out {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (cfg.freqStart + (cfg.freqEnd-cfg.freqStart)*t)

		v := cfg.amplitude*math.Sin(theta) + cfg.trendK*float64(i)
		if cfg.noiseSigma > 0 {
			v += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = v
	}
	return out, nil
}
