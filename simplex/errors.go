// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// errors.go — sentinel errors for the simplex package.

package simplex

import "errors"

var (
	// ErrEmptySimplex indicates a simplex constructed from no vertices.
	ErrEmptySimplex = errors.New("simplex: simplex has no vertices")

	// ErrDuplicateVertex indicates a vertex listed twice in one simplex.
	ErrDuplicateVertex = errors.New("simplex: duplicate vertex")

	// ErrNegativeVertex indicates a vertex index below zero.
	ErrNegativeVertex = errors.New("simplex: negative vertex index")
)
