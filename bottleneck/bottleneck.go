// SPDX-License-Identifier: MIT
// Package: lvtopo/bottleneck
//
// bottleneck.go — cost layout, matching and minimax readout.

package bottleneck

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvtopo/assignment"
	"github.com/katalvlaran/lvtopo/diagram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// WeightedPoint is a diagram pair carrying its own weight.
type WeightedPoint struct {
	diagram.Pair
	Weight float64
}

// Weighted zips a diagram with its weights.
//
// Errors:
//   - ErrWeightMismatch when the lengths differ.
func Weighted(d diagram.Diagram, w []float64) ([]WeightedPoint, error) {
	if len(d) != len(w) {
		return nil, fmt.Errorf("Weighted: %d pairs, %d weights: %w", len(d), len(w), ErrWeightMismatch)
	}
	out := make([]WeightedPoint, len(d))
	for i := range d {
		out[i] = WeightedPoint{Pair: d[i], Weight: w[i]}
	}
	return out, nil
}

// Distance is the weighted bottleneck distance between a and b.
// See WeightedDistance.
func Distance(a, b diagram.Diagram, wa, wb []float64, opts ...Option) (float64, error) {
	pa, err := Weighted(a, wa)
	if err != nil {
		return 0, fmt.Errorf("Distance: first diagram: %w", err)
	}
	pb, err := Weighted(b, wb)
	if err != nil {
		return 0, fmt.Errorf("Distance: second diagram: %w", err)
	}
	return WeightedDistance(pa, pb, opts...)
}

// WeightedDistance returns the largest matched cell cost of a minimum-sum
// perfect matching between a, b and the diagonal. When several matchings
// reach the minimum sum, the smallest such maximum is reported, so the
// result does not depend on argument order. Two empty diagrams are at
// distance 0.
//
// Stages:
//  1. Validate: pairs and weights.
//  2. Prepare: (n+m)×(n+m) cost matrix per the padding policy.
//  3. Execute: Hungarian assignment for the minimum sum.
//  4. Finalize: threshold search for the tightest maximum among the
//     minimum-sum matchings, +Inf when infeasible.
//
// Errors:
//   - diagram.ErrInvalidPair, ErrNegativeWeight (input).
//   - assignment errors other than ErrInfeasible (malformed cost matrix).
//
// Complexity: O((n+m)³·log K) for K distinct cell costs.
func WeightedDistance(a, b []WeightedPoint, opts ...Option) (float64, error) {
	o := newOptions(opts...)
	log := o.logger.With("op", "WeightedDistance", "n", len(a), "m", len(b), "padding", o.padding.String())

	if err := validate(a); err != nil {
		return 0, fmt.Errorf("WeightedDistance: first diagram: %w", err)
	}
	if err := validate(b); err != nil {
		return 0, fmt.Errorf("WeightedDistance: second diagram: %w", err)
	}
	if len(a)+len(b) == 0 {
		log.Warn("both diagrams empty, distance 0")
		return 0, nil
	}

	cost := CostMatrix(a, b, o.padding)
	res, err := assignment.Solve(cost)
	switch {
	case errors.Is(err, assignment.ErrInfeasible):
		log.Warn("no finite matching, distance is infinite", "err", err)
		return math.Inf(1), nil
	case err != nil:
		return 0, fmt.Errorf("WeightedDistance: %w", err)
	}

	d, err := tightest(cost, res.Cost, floats.Max(res.Costs(cost)))
	if err != nil {
		return 0, fmt.Errorf("WeightedDistance: %w", err)
	}
	log.Info("weighted bottleneck distance computed", "distance", d, "total", res.Cost)

	return d, nil
}

// sumTolerance bounds the relative slack when comparing matching sums.
const sumTolerance = 1e-9

// tightest returns the smallest cell cost t such that some perfect matching
// using only cells ≤ t still reaches the minimum sum total. hi, the maximum
// of a known optimum, always qualifies.
func tightest(cost *mat.Dense, total, hi float64) (float64, error) {
	r, c := cost.Dims()
	cand := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := cost.At(i, j); v <= hi {
				cand = append(cand, v)
			}
		}
	}
	slices.Sort(cand)
	cand = slices.Compact(cand)

	slack := sumTolerance * math.Max(1, math.Abs(total))
	masked := mat.NewDense(r, c, nil)
	lo, up := 0, len(cand)-1
	for lo < up {
		mid := (lo + up) / 2
		t := cand[mid]
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := cost.At(i, j)
				if v > t {
					v = math.Inf(1)
				}
				masked.Set(i, j, v)
			}
		}
		res, err := assignment.Solve(masked)
		switch {
		case errors.Is(err, assignment.ErrInfeasible):
			lo = mid + 1
		case err != nil:
			return 0, err
		case res.Cost <= total+slack:
			up = mid
		default:
			lo = mid + 1
		}
	}
	return cand[lo], nil
}

// CostMatrix lays out the (n+m)×(n+m) matching costs described in the
// package documentation. Inputs are assumed valid.
func CostMatrix(a, b []WeightedPoint, padding Padding) *mat.Dense {
	n, m := len(a), len(b)
	size := n + m
	fill := 0.0
	if padding == PaddingStrict {
		fill = math.Inf(1)
	}

	c := mat.NewDense(size, size, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			c.Set(i, j, pairCost(a[i], b[j]))
		}
		for k := 0; k < n; k++ {
			c.Set(i, m+k, fill)
		}
		c.Set(i, m+i, diagonalCost(a[i]))
	}
	for j := 0; j < m; j++ {
		for k := 0; k < m; k++ {
			c.Set(n+j, k, fill)
		}
		c.Set(n+j, j, diagonalCost(b[j]))
	}
	// Bottom-right diagonal ↔ diagonal block stays 0.

	return c
}

// pairCost is the weighted Chebyshev distance between two intervals.
func pairCost(p, q WeightedPoint) float64 {
	w := p.Weight + q.Weight
	switch {
	case p.Essential() && q.Essential():
		return math.Abs(p.Birth-q.Birth) * w
	case p.Essential() || q.Essential():
		return math.Inf(1)
	}
	return math.Max(math.Abs(p.Birth-q.Birth), math.Abs(p.Death-q.Death)) * w
}

// diagonalCost is the weighted distance from p to birth = death.
func diagonalCost(p WeightedPoint) float64 {
	if p.Essential() {
		return math.Inf(1)
	}
	return math.Abs(p.Death-p.Birth) * p.Weight
}

func validate(ps []WeightedPoint) error {
	for i, p := range ps {
		if err := p.Pair.Validate(); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		if p.Weight < 0 || math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
			return fmt.Errorf("index %d: weight %v: %w", i, p.Weight, ErrNegativeWeight)
		}
	}
	return nil
}
