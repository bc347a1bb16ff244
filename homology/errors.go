// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// errors.go — sentinel errors for the homology package.

package homology

import (
	"errors"
	"fmt"
)

var (
	// ErrNumericalFailure indicates the SVD did not converge or panicked.
	// Solver downgrades it to rank 0.
	ErrNumericalFailure = errors.New("homology: numerical failure")

	// ErrMalformedRecord indicates faces of differing sizes in one record.
	ErrMalformedRecord = errors.New("homology: malformed boundary record")

	// ErrNegativeDegree indicates a negative homology degree.
	ErrNegativeDegree = errors.New("homology: degree must be >= 0")

	// ErrNegativePerversity indicates a negative perversity bound.
	ErrNegativePerversity = errors.New("homology: perversity must be >= 0")
)

func homologyErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
