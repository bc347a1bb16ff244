// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go — sentinel errors and the context-wrapping helper.
//
// Callers branch with errors.Is; builderErrorf attaches the method name and
// offending parameters without stringifying them into the sentinel.

package builder

import (
	"errors"
	"fmt"
)

// ErrUnknownFramework indicates a framework name outside Frameworks().
var ErrUnknownFramework = errors.New("builder: unknown framework")

// ErrBadSize indicates a non-positive point count, series length or dimension.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrBadComplexity indicates a negative complexity or a refinement depth
// beyond MaxRefineDepth.
var ErrBadComplexity = errors.New("builder: invalid complexity")

// builderErrorf formats "<method>: <detail>: <sentinel>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
