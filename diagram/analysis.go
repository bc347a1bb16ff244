// SPDX-License-Identifier: MIT
// Package: lvtopo/diagram
//
// analysis.go — persistence filtering, lifespan statistics, transitions.

package diagram

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultThreshold is the minimum lifespan kept by Filter in the pipeline.
const DefaultThreshold = 0.01

// DefaultProminence is the peak prominence used for transition detection.
const DefaultProminence = 0.02

// Filter keeps pairs whose lifespan is at least threshold, in order.
// Essential pairs are always kept.
func Filter(d Diagram, threshold float64) Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if p.Lifespan() >= threshold {
			out = append(out, p)
		}
	}
	return out
}

// Summary describes the finite lifespans of a diagram.
type Summary struct {
	Count     int
	Essential int
	Mean      float64
	Std       float64 // population standard deviation
	Min       float64
	Max       float64
}

// Summarize computes lifespan statistics over finite pairs. An empty (or
// all-essential) diagram yields a zero Summary apart from Essential.
func Summarize(d Diagram) Summary {
	finite := d.Finite()
	s := Summary{Count: len(finite), Essential: len(d) - len(finite)}
	if s.Count == 0 {
		return s
	}
	spans := finite.Lifespans()
	s.Mean, s.Std = stat.PopMeanStdDev(spans, nil)
	s.Min, s.Max = floats.Min(spans), floats.Max(spans)
	return s
}

// Transition is a pair whose lifespan is a prominent local peak.
type Transition struct {
	Index      int // position in the finite sub-diagram
	Pair       Pair
	Prominence float64
}

// Transitions finds the pairs whose lifespan is a local maximum of the
// finite lifespan sequence with topographic prominence ≥ prominence.
//
// Peak rules: the first and last samples are never peaks; a flat top counts
// once, at the middle of the plateau (left-biased), and only if the samples
// on both sides of the plateau are strictly lower.
//
// Complexity: O(n²) worst case for the prominence scan.
func Transitions(d Diagram, prominence float64) []Transition {
	finite := d.Finite()
	x := finite.Lifespans()

	var out []Transition
	for _, peak := range localMaxima(x) {
		prom := peakProminence(x, peak)
		if prom >= prominence {
			out = append(out, Transition{Index: peak, Pair: finite[peak], Prominence: prom})
		}
	}
	return out
}

// localMaxima returns strict local maxima, plateaus reported at their middle.
func localMaxima(x []float64) []int {
	var peaks []int
	i := 1
	last := len(x) - 1
	for i < last {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < last && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				peaks = append(peaks, (i+ahead-1)/2)
				i = ahead
			}
		}
		i++
	}
	return peaks
}

// peakProminence is the height of x[peak] above the higher of the two lowest
// points reachable on each side before meeting a strictly higher sample.
func peakProminence(x []float64, peak int) float64 {
	h := x[peak]
	leftMin := h
	for i := peak; i >= 0 && x[i] <= h; i-- {
		leftMin = min(leftMin, x[i])
	}
	rightMin := h
	for i := peak; i < len(x) && x[i] <= h; i++ {
		rightMin = min(rightMin, x[i])
	}
	return h - max(leftMin, rightMin)
}
