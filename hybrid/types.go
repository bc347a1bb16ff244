// SPDX-License-Identifier: MIT
// Package: lvtopo/hybrid
//
// types.go — regions, entries and the multiset filtration.

package hybrid

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Region labels where an entry came from.
type Region int

const (
	Smooth Region = iota
	NonSmooth
	Singular
	Transition
)

// String returns the lower-case region name.
func (r Region) String() string {
	switch r {
	case Smooth:
		return "smooth"
	case NonSmooth:
		return "non-smooth"
	case Singular:
		return "singular"
	case Transition:
		return "transition"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// Entry is one element of a hybrid filtration.
type Entry struct {
	Simplex simplex.Simplex
	// Value is the classifier output; meaningful only when HasValue.
	Value    float64
	HasValue bool
	Region   Region
	// Source is the originating region of a Transition entry; equal to
	// Region otherwise.
	Source Region
}

// Filtration is an ordered multiset of entries.
type Filtration []Entry

// Multiplicity counts the entries carrying s, across all regions.
func (f Filtration) Multiplicity(s simplex.Simplex) int {
	n := 0
	for _, e := range f {
		if e.Simplex.Equal(s) {
			n++
		}
	}
	return n
}

// ByRegion returns the entries labelled r, in order.
func (f Filtration) ByRegion(r Region) Filtration {
	var out Filtration
	for _, e := range f {
		if e.Region == r {
			out = append(out, e)
		}
	}
	return out
}

// Counts returns the number of entries per region.
func (f Filtration) Counts() map[Region]int {
	out := make(map[Region]int, 4)
	for _, e := range f {
		out[e.Region]++
	}
	return out
}

// ValueOrDim keys valued entries by Value and the rest by simplex dimension.
func ValueOrDim(e Entry) float64 {
	if e.HasValue {
		return e.Value
	}
	return float64(e.Simplex.Dim())
}

// Ordered returns a copy of f stably sorted by key, ties broken by simplex
// dimension. Use ValueOrDim for a dimension-respecting default.
func (f Filtration) Ordered(key func(Entry) float64) Filtration {
	out := slices.Clone(f)
	slices.SortStableFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(key(a), key(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.Simplex.Dim(), b.Simplex.Dim())
	})
	return out
}

// Input holds the three pre-labelled regions.
type Input struct {
	// Smooth is built with Vietoris–Rips; nil or empty skips the region.
	Smooth *cloud.PointCloud
	// NonSmooth is tagged by the critical-value classifier.
	NonSmooth *simplex.Complex
	// Singular is weighted by SingularField.
	Singular      *simplex.Complex
	SingularField cloud.Field
}

// Result is a composed filtration plus build facts.
type Result struct {
	Filtration Filtration
	// Radius used for the smooth region (0 when skipped).
	Radius float64
	// SmoothBuilt is false when the smooth region was skipped.
	SmoothBuilt bool
	// Transitions is the number of transition entries appended.
	Transitions int
}
