// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// frameworks.go — named synthetic point-cloud frameworks.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvtopo/cloud"
)

// Framework names a synthetic point-cloud family.
type Framework string

const (
	Singular  Framework = "singular"
	NonSmooth Framework = "non-smooth"
	Fractal   Framework = "fractal"
	Hybrid    Framework = "hybrid"
	Curvature Framework = "curvature"
	Control   Framework = "control"
)

const (
	methodGenerate = "Generate"

	singularSigmaPerLevel  = 0.05
	nonSmoothScalePerLevel = 0.1
)

// Frameworks lists every framework in experiment order.
func Frameworks() []Framework {
	return []Framework{Singular, NonSmooth, Fractal, Hybrid, Curvature, Control}
}

// ParseFramework maps a name to a Framework.
func ParseFramework(s string) (Framework, error) {
	for _, f := range Frameworks() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("ParseFramework(%q): %w", s, ErrUnknownFramework)
}

// Generate draws n points in dim dimensions from framework f at the given
// complexity level. Fractal and hybrid clouds may hold fewer than n points
// when refinement yields fewer distinct points.
//
// Errors:
//   - ErrUnknownFramework, ErrBadSize (n < 1 or dim < 1), ErrBadComplexity.
//
// Complexity: O(n·dim) except fractal, which is O(P²·dim) for P refined points.
func Generate(f Framework, n, dim, complexity int, seed int64, opts ...BuilderOption) (*cloud.PointCloud, error) {
	if n < 1 || dim < 1 {
		return nil, builderErrorf(methodGenerate, ErrBadSize, "n=%d dim=%d", n, dim)
	}
	if complexity < 0 {
		return nil, builderErrorf(methodGenerate, ErrBadComplexity, "complexity=%d", complexity)
	}
	if (f == Fractal || f == Hybrid) && complexity > MaxRefineDepth {
		return nil, builderErrorf(methodGenerate, ErrBadComplexity, "%s depth %d > %d", f, complexity, MaxRefineDepth)
	}

	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	pts, err := generate(rng, f, n, dim, complexity)
	if err != nil {
		return nil, err
	}
	return cloud.New(pts)
}

func generate(rng *rand.Rand, f Framework, n, dim, complexity int) ([][]float64, error) {
	switch f {
	case Singular:
		pts := uniform(rng, n, dim)
		sigma := singularSigmaPerLevel * float64(complexity)
		for _, p := range pts {
			for k := range p {
				p[k] += sigma * rng.NormFloat64()
			}
		}
		return pts, nil

	case NonSmooth:
		pts := uniform(rng, n, dim)
		scale := nonSmoothScalePerLevel * float64(complexity)
		for _, p := range pts[:n/2] {
			for k := range p {
				p[k] *= scale
			}
		}
		return pts, nil

	case Fractal:
		seedTriangle := uniform(rng, 3, dim)
		pts := refine(seedTriangle, complexity)
		if len(pts) > n {
			pts = pts[:n]
		}
		return pts, nil

	case Hybrid:
		half := n / 2
		if half == 0 {
			return nil, builderErrorf(methodGenerate, ErrBadSize, "hybrid needs n>=2, got %d", n)
		}
		sing, _ := generate(rng, Singular, half, dim, complexity)
		frac, _ := generate(rng, Fractal, half, dim, complexity)
		return append(sing, frac...), nil

	case Curvature:
		pts := uniform(rng, n, dim)
		for i, p := range pts {
			t := 0.0
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			w := math.Sin(math.Pi * t)
			for k := range p {
				p[k] *= w
			}
		}
		return pts, nil

	case Control:
		return uniform(rng, n, dim), nil
	}

	return nil, builderErrorf(methodGenerate, ErrUnknownFramework, "%q", string(f))
}

// uniform draws n points from the unit cube [0,1)^dim.
func uniform(rng *rand.Rand, n, dim int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		p := make([]float64, dim)
		for k := range p {
			p[k] = rng.Float64()
		}
		pts[i] = p
	}
	return pts
}
