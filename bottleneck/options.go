// SPDX-License-Identifier: MIT
// Package: lvtopo/bottleneck
//
// options.go — padding policy and functional options.

package bottleneck

import (
	"fmt"
	"log/slog"
)

// Padding selects what the unused padding cells cost.
type Padding int

const (
	// PaddingZeroFill leaves unused padding cells at zero cost.
	PaddingZeroFill Padding = iota
	// PaddingStrict forbids unused padding cells.
	PaddingStrict
)

// String returns the config name of p.
func (p Padding) String() string {
	switch p {
	case PaddingZeroFill:
		return "zero"
	case PaddingStrict:
		return "strict"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// ParsePadding maps "zero" or "strict" to a Padding.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "zero", "":
		return PaddingZeroFill, nil
	case "strict":
		return PaddingStrict, nil
	}
	return 0, fmt.Errorf("ParsePadding(%q): %w", s, ErrUnknownPadding)
}

// Option customises Distance.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	padding Padding
}

func newOptions(opts ...Option) options {
	o := options{
		logger:  slog.New(slog.DiscardHandler),
		padding: PaddingZeroFill,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bottleneck: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithPadding selects the padding policy. Panics on an unknown value.
func WithPadding(p Padding) Option {
	if p != PaddingZeroFill && p != PaddingStrict {
		panic("bottleneck: WithPadding unknown policy")
	}
	return func(o *options) { o.padding = p }
}
