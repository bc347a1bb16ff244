// SPDX-License-Identifier: MIT
// Package: lvtopo/classify
//
// morse.go — dimension-valued critical tagging.

package classify

import (
	"github.com/katalvlaran/lvtopo/simplex"
)

// Morse marks every simplex as critical at its dimension.
type Morse struct {
	cfg config
}

var _ Classifier = (*Morse)(nil)

// NewMorse returns a Morse classifier.
func NewMorse(opts ...Option) *Morse {
	return &Morse{cfg: newConfig(opts...)}
}

// Classify tags every simplex with its dimension: vertices 0, edges 1,
// triangles 2, and so on for larger simplices a caller may supply.
func (m *Morse) Classify(c *simplex.Complex) ([]Tagged, error) {
	log := m.cfg.logger.With("op", "Morse.Classify")
	if c.Empty() {
		log.Warn("empty complex, no critical simplices")
		return nil, nil
	}

	out := make([]Tagged, 0, c.Len())
	for _, s := range c.Simplices() {
		out = append(out, Tagged{Simplex: s, Value: float64(s.Dim())})
	}
	log.Info("critical values assigned", "simplices", len(out))

	return out, nil
}
