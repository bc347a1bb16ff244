// SPDX-License-Identifier: MIT
// Package: lvtopo/cloud
//
// errors.go — sentinel errors for the cloud package.
//
// Callers branch with errors.Is; implementations attach method context
// with cloudErrorf and never stringify parameters into the sentinels.

package cloud

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedPoints indicates that points of a cloud have different lengths.
	ErrRaggedPoints = errors.New("cloud: points have different dimensions")

	// ErrZeroDimension indicates a non-empty cloud whose points have no coordinates.
	ErrZeroDimension = errors.New("cloud: points must have at least one coordinate")

	// ErrNaNInf indicates a NaN or ±Inf coordinate or sample.
	ErrNaNInf = errors.New("cloud: NaN or Inf encountered")

	// ErrBadEmbedding indicates invalid delay/dimension parameters for DelayEmbed.
	ErrBadEmbedding = errors.New("cloud: invalid embedding parameters")

	// ErrSeriesTooShort indicates a series that cannot fill a single delay window.
	ErrSeriesTooShort = errors.New("cloud: series too short for embedding")

	// ErrColumnOutOfRange indicates a field projection onto a missing column.
	ErrColumnOutOfRange = errors.New("cloud: column out of range")
)

// cloudErrorf prefixes err with the public method name that produced it.
func cloudErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
