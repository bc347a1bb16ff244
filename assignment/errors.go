// SPDX-License-Identifier: MIT
// Package: lvtopo/assignment
//
// errors.go — sentinel errors for the assignment solver.

package assignment

import "errors"

var (
	// ErrNonSquare indicates a cost matrix with rows != cols.
	ErrNonSquare = errors.New("assignment: cost matrix is not square")

	// ErrMalformed indicates a nil matrix or ragged row input.
	ErrMalformed = errors.New("assignment: malformed cost matrix")

	// ErrInvalidCost indicates a NaN or −Inf entry.
	ErrInvalidCost = errors.New("assignment: cost is NaN or -Inf")

	// ErrInfeasible indicates every perfect matching uses a forbidden (+Inf) cell.
	ErrInfeasible = errors.New("assignment: no finite perfect matching")
)
