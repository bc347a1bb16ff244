// SPDX-License-Identifier: MIT
// Package: lvtopo/hybrid
//
// composer.go — region builds, transition gluing and options.

package hybrid

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/classify"
	"github.com/katalvlaran/lvtopo/radius"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Option customises a Composer.
type Option func(*Composer)

// WithLogger routes composer and sub-component diagnostics to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("hybrid: WithLogger(nil)")
	}
	return func(c *Composer) { c.logger = l }
}

// WithRadius sets the smooth-region radius selection. Validated on use.
func WithRadius(o radius.Options) Option {
	return func(c *Composer) { c.radius = o }
}

// WithNonSmoothClassifier replaces the Morse classifier. Panics on nil.
func WithNonSmoothClassifier(cl classify.Classifier) Option {
	if cl == nil {
		panic("hybrid: WithNonSmoothClassifier(nil)")
	}
	return func(c *Composer) { c.nonSmooth = cl }
}

// Composer builds hybrid filtrations. It is stateless between calls.
type Composer struct {
	logger    *slog.Logger
	radius    radius.Options
	nonSmooth classify.Classifier
}

// NewComposer returns a Composer with default radius options and the Morse
// classifier for the non-smooth region.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		logger: slog.New(slog.DiscardHandler),
		radius: radius.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.nonSmooth == nil {
		c.nonSmooth = classify.NewMorse(classify.WithLogger(c.logger))
	}
	return c
}

// Compose builds the three regions in order smooth, non-smooth, singular,
// then appends transition entries.
//
// Stages:
//  1. Smooth: radius selection and Rips build; an empty cloud or empty
//     build is skipped with a Warn.
//  2. Non-smooth: critical-value tagging.
//  3. Singular: curvature weighting against SingularField.
//  4. Transitions: one extra entry per region occurrence of a simplex that
//     also occurs in another region.
//
// Errors:
//   - radius.ErrUnknownMethod, radius.ErrBadOptions (configuration).
//   - classify.ErrVertexOutOfField (input).
func (c *Composer) Compose(in Input) (*Result, error) {
	const method = "Compose"
	log := c.logger.With("op", method)
	res := &Result{}

	// Stage 1.
	var smooth Filtration
	if in.Smooth.Len() == 0 {
		log.Warn("smooth region empty, skipped")
	} else {
		r, err := radius.Select(in.Smooth, c.radius)
		if err != nil {
			return nil, fmt.Errorf("%s: smooth radius: %w", method, err)
		}
		cx, ok := simplex.VietorisRips(in.Smooth, r, simplex.WithLogger(c.logger))
		if ok {
			res.Radius, res.SmoothBuilt = r, true
			for _, s := range cx.Simplices() {
				smooth = append(smooth, Entry{Simplex: s, Region: Smooth, Source: Smooth})
			}
		} else {
			log.Warn("insufficient simplices in smooth region, skipped", "radius", r)
		}
	}

	// Stage 2.
	nonSmooth, err := c.tag(in.NonSmooth, c.nonSmooth, NonSmooth)
	if err != nil {
		return nil, fmt.Errorf("%s: non-smooth: %w", method, err)
	}

	// Stage 3.
	curv := classify.NewCurvature(in.SingularField, classify.WithLogger(c.logger))
	singular, err := c.tag(in.Singular, curv, Singular)
	if err != nil {
		return nil, fmt.Errorf("%s: singular: %w", method, err)
	}

	// Stage 4.
	regions := []Filtration{smooth, nonSmooth, singular}
	transitions := glue(regions)

	total := len(smooth) + len(nonSmooth) + len(singular) + len(transitions)
	res.Filtration = make(Filtration, 0, total)
	for _, r := range regions {
		res.Filtration = append(res.Filtration, r...)
	}
	res.Filtration = append(res.Filtration, transitions...)
	res.Transitions = len(transitions)

	log.Info("hybrid filtration composed",
		"smooth", len(smooth), "non_smooth", len(nonSmooth), "singular", len(singular),
		"transitions", len(transitions), "radius", res.Radius)

	return res, nil
}

func (c *Composer) tag(cx *simplex.Complex, cl classify.Classifier, region Region) (Filtration, error) {
	tagged, err := cl.Classify(cx)
	if err != nil {
		return nil, err
	}
	out := make(Filtration, len(tagged))
	for i, t := range tagged {
		out[i] = Entry{Simplex: t.Simplex, Value: t.Value, HasValue: true, Region: region, Source: region}
	}
	return out, nil
}

// glue returns a Transition entry for every entry of every region whose
// simplex also appears in at least one other region.
func glue(regions []Filtration) Filtration {
	present := make([]map[string]struct{}, len(regions))
	for i, r := range regions {
		present[i] = make(map[string]struct{}, len(r))
		for _, e := range r {
			present[i][e.Simplex.Key()] = struct{}{}
		}
	}

	var out Filtration
	for i, r := range regions {
		for _, e := range r {
			key := e.Simplex.Key()
			for j := range regions {
				if j == i {
					continue
				}
				if _, ok := present[j][key]; ok {
					t := e
					t.Region = Transition
					out = append(out, t)
					break
				}
			}
		}
	}
	return out
}
