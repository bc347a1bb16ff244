// SPDX-License-Identifier: MIT
// Package: lvtopo/bottleneck
//
// errors.go — sentinel errors for the bottleneck solver.

package bottleneck

import "errors"

var (
	// ErrWeightMismatch indicates len(weights) != len(diagram).
	ErrWeightMismatch = errors.New("bottleneck: weight count does not match diagram size")

	// ErrNegativeWeight indicates a negative, NaN or infinite weight.
	ErrNegativeWeight = errors.New("bottleneck: weight must be finite and >= 0")

	// ErrUnknownPadding indicates an unrecognised padding policy name.
	ErrUnknownPadding = errors.New("bottleneck: unknown padding policy")
)
