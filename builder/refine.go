// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// refine.go — midpoint refinement, Sierpinski gasket, Whitney umbrella.

package builder

import (
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvtopo/cloud"
)

// MaxRefineDepth bounds midpoint refinement rounds. Distinct points grow
// like 4^depth on the triangle lattice while each round is quadratic.
const MaxRefineDepth = 7

// refine adds the midpoint of every pair each round, then sorts the points
// lexicographically and drops exact duplicates.
func refine(pts [][]float64, depth int) [][]float64 {
	pts = unique(pts)
	for range depth {
		n := len(pts)
		next := make([][]float64, 0, n+n*(n-1)/2)
		next = append(next, pts...)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				mid := make([]float64, len(pts[i]))
				for k := range mid {
					mid[k] = (pts[i][k] + pts[j][k]) / 2
				}
				next = append(next, mid)
			}
		}
		pts = unique(next)
	}
	return pts
}

func unique(pts [][]float64) [][]float64 {
	slices.SortFunc(pts, slices.Compare[[]float64, float64])
	return slices.CompactFunc(pts, slices.Equal[[]float64, float64])
}

// SierpinskiGasket refines the triangle (0,0), (1,0), (½,√3/2) depth times.
//
// Errors:
//   - ErrBadComplexity when depth is outside [0, MaxRefineDepth].
func SierpinskiGasket(depth int) (*cloud.PointCloud, error) {
	if depth < 0 || depth > MaxRefineDepth {
		return nil, builderErrorf("SierpinskiGasket", ErrBadComplexity, "depth=%d", depth)
	}
	triangle := [][]float64{{0, 0}, {1, 0}, {0.5, math.Sqrt(3) / 2}}
	return cloud.New(refine(triangle, depth))
}

// WhitneyUmbrella samples n points (x, y, y²) with x ~ U(-1,1) and
// y = x·U(-1,1), which pinches onto the line y = 0 near x = 0.
//
// Errors:
//   - ErrBadSize when n < 1.
func WhitneyUmbrella(n int, seed int64, opts ...BuilderOption) (*cloud.PointCloud, error) {
	if n < 1 {
		return nil, builderErrorf("WhitneyUmbrella", ErrBadSize, "n=%d", n)
	}
	rng := rngFrom(newBuilderConfig(opts...), seed)
	pts := make([][]float64, n)
	for i := range pts {
		x := symmetric(rng)
		y := x * symmetric(rng)
		pts[i] = []float64{x, y, y * y}
	}
	return cloud.New(pts)
}

// symmetric draws from U(-1, 1).
func symmetric(rng *rand.Rand) float64 { return 2*rng.Float64() - 1 }
