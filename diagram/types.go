// SPDX-License-Identifier: MIT
// Package: lvtopo/diagram
//
// types.go — Pair, Feature and Diagram.

package diagram

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPair indicates a NaN endpoint, an infinite birth, or death < birth.
var ErrInvalidPair = errors.New("diagram: invalid persistence pair")

// Pair is a single persistence interval.
type Pair struct {
	Birth float64
	Death float64
}

// Lifespan returns Death − Birth (+Inf for essential pairs).
func (p Pair) Lifespan() float64 { return p.Death - p.Birth }

// Essential reports whether the class never dies.
func (p Pair) Essential() bool { return math.IsInf(p.Death, 1) }

// Validate rejects NaN endpoints, an infinite birth, and death < birth.
func (p Pair) Validate() error {
	switch {
	case math.IsNaN(p.Birth), math.IsNaN(p.Death), math.IsInf(p.Birth, 0):
		return fmt.Errorf("pair %v: %w", p, ErrInvalidPair)
	case p.Death < p.Birth:
		return fmt.Errorf("pair %v: death before birth: %w", p, ErrInvalidPair)
	}
	return nil
}

// String renders the pair as "(b, d)".
func (p Pair) String() string { return fmt.Sprintf("(%g, %g)", p.Birth, p.Death) }

// Diagram is a multiset of pairs for one homological dimension.
type Diagram []Pair

// Validate checks every pair.
func (d Diagram) Validate() error {
	for i, p := range d {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// Lifespans returns the lifespan of every pair, in order.
func (d Diagram) Lifespans() []float64 {
	out := make([]float64, len(d))
	for i, p := range d {
		out[i] = p.Lifespan()
	}
	return out
}

// Finite returns the pairs that die.
func (d Diagram) Finite() Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if !p.Essential() {
			out = append(out, p)
		}
	}
	return out
}

// Feature is a pair tagged with its homological dimension.
type Feature struct {
	Dim int
	Pair
}

// Split groups features by dimension into a slice indexed by Dim, sized to
// the highest dimension seen. Negative dimensions are dropped.
func Split(features []Feature) []Diagram {
	maxDim := -1
	for _, f := range features {
		maxDim = max(maxDim, f.Dim)
	}
	out := make([]Diagram, maxDim+1)
	for _, f := range features {
		if f.Dim >= 0 {
			out[f.Dim] = append(out[f.Dim], f.Pair)
		}
	}
	return out
}

// UniformWeights returns n weights of 1.
func UniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// LifespanWeights weights each pair by its finite lifespan; essential pairs
// get weight 1.
func LifespanWeights(d Diagram) []float64 {
	w := make([]float64, len(d))
	for i, p := range d {
		if p.Essential() {
			w[i] = 1
			continue
		}
		w[i] = p.Lifespan()
	}
	return w
}
