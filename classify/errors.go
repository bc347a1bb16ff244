// SPDX-License-Identifier: MIT
// Package: lvtopo/classify
//
// errors.go — sentinel errors for region classifiers.

package classify

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfField indicates a simplex vertex the scalar field does not cover.
var ErrVertexOutOfField = errors.New("classify: vertex outside scalar field")

func classifyErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
