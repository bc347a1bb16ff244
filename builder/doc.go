// Package builder generates deterministic synthetic inputs for topological
// experiments: point clouds drawn from named frameworks, classic test shapes,
// and scalar series to be delay-embedded.
//
// Point-cloud frameworks (Generate):
//
//	singular   — uniform cube sample plus Gaussian perturbation, σ = 0.05·complexity.
//	non-smooth — uniform cube sample whose first half is scaled by 0.1·complexity.
//	fractal    — midpoint refinement of a random triangle, complexity rounds,
//	             deduplicated and lexicographically sorted, truncated to n.
//	hybrid     — singular(n/2) stacked on fractal(n/2).
//	curvature  — uniform sample with row i scaled by sin(π·i/(n−1)).
//	control    — uniform cube sample.
//
// Shapes: SierpinskiGasket(depth), WhitneyUmbrella(n).
// Series: BuildChirp (linear-frequency sweep), BuildPriceSeries (GBM OHLC).
//
// Configuration follows the functional-options pattern: option constructors
// panic on meaningless values, builders return sentinel-wrapped errors and
// never panic. Randomness comes from WithRand/WithSeed when given, else from
// the seed argument, so identical calls yield identical output.
package builder
