// SPDX-License-Identifier: MIT
// Package: lvtopo/classify
//
// curvature.go — field-difference weighting.

package classify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Curvature weights simplices by the field change across their span.
type Curvature struct {
	field cloud.Field
	cfg   config
}

var _ Classifier = (*Curvature)(nil)

// NewCurvature returns a classifier reading per-vertex values from field.
// The field is not copied.
func NewCurvature(field cloud.Field, opts ...Option) *Curvature {
	return &Curvature{field: field, cfg: newConfig(opts...)}
}

// Classify returns |f(s[0]) − f(s[len(s)−1])| per simplex.
//
// Errors:
//   - ErrVertexOutOfField when an end vertex has no field value.
func (cv *Curvature) Classify(c *simplex.Complex) ([]Tagged, error) {
	log := cv.cfg.logger.With("op", "Curvature.Classify")
	if c.Empty() {
		log.Warn("empty complex for curvature weighting")
		return nil, nil
	}

	out := make([]Tagged, 0, c.Len())
	for _, s := range c.Simplices() {
		first, ok1 := cv.field.At(s[0])
		last, ok2 := cv.field.At(s[len(s)-1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("Curvature.Classify: simplex %s, field size %d: %w",
				s, len(cv.field), ErrVertexOutOfField)
		}
		out = append(out, Tagged{Simplex: s, Value: math.Abs(last - first)})
	}
	log.Info("curvature weights applied", "simplices", len(out))

	return out, nil
}
