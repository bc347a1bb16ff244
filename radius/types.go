// SPDX-License-Identifier: MIT
// Package: lvtopo/radius
//
// types.go — methods, options and sentinel errors.

package radius

import (
	"errors"
	"fmt"
)

// Method names a radius-selection strategy.
type Method string

const (
	// KNN averages per-point k-th nearest-neighbour distances.
	KNN Method = "knn"
	// Density averages the full pairwise distance matrix.
	Density Method = "density"
)

// Defaults mirror the experiment settings the pipeline was tuned with.
const (
	DefaultNeighbors   = 5
	DefaultScaleFactor = 1.5
)

var (
	// ErrUnknownMethod indicates a method name other than knn or density.
	ErrUnknownMethod = errors.New("radius: unknown selection method")

	// ErrBadOptions indicates Neighbors < 1 or a non-positive ScaleFactor.
	ErrBadOptions = errors.New("radius: invalid options")

	// ErrEmptyCloud indicates selection was requested on a cloud with no points.
	ErrEmptyCloud = errors.New("radius: empty point cloud")
)

// Options configures Select.
//
// Fields:
//   - Method      — KNN or Density.
//   - Neighbors   — k for KNN (≥1, self included); clamped to N.
//   - ScaleFactor — multiplier applied to the averaged distance (>0).
type Options struct {
	Method      Method
	Neighbors   int
	ScaleFactor float64
}

// DefaultOptions returns KNN with k=5 and scale 1.5.
func DefaultOptions() Options {
	return Options{
		Method:      KNN,
		Neighbors:   DefaultNeighbors,
		ScaleFactor: DefaultScaleFactor,
	}
}

// ParseMethod maps a configuration string to a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case KNN, Density:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

func (o Options) validate() error {
	if _, err := ParseMethod(string(o.Method)); err != nil {
		return err
	}
	if o.Neighbors < 1 || !(o.ScaleFactor > 0) {
		return ErrBadOptions
	}
	return nil
}
