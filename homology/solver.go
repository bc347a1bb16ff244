// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// solver.go — logged homology and intersection-homology drivers.

package homology

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/simplex"
)

// Option customises a Solver.
type Option func(*Solver)

// WithLogger routes solver diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("homology: WithLogger(nil)")
	}
	return func(s *Solver) { s.logger = l }
}

// WithEstimator replaces the default SVDEstimator. Panics on nil.
func WithEstimator(e RankEstimator) Option {
	if e == nil {
		panic("homology: WithEstimator(nil)")
	}
	return func(s *Solver) { s.estimator = e }
}

// Solver runs boundary construction, perversity filtering and rank
// estimation with failures absorbed into rank 0. It holds no state between
// calls and is safe for concurrent use when its estimator is.
type Solver struct {
	logger    *slog.Logger
	estimator RankEstimator
}

// NewSolver returns a Solver using SVDEstimator{DefaultTolerance} unless
// overridden.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		logger:    slog.New(slog.DiscardHandler),
		estimator: SVDEstimator{Tolerance: DefaultTolerance},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rank estimates the homology rank of rec. Empty records, malformed records
// and numerical failures all yield 0; the latter two are logged at Error.
func (s *Solver) Rank(rec BoundaryRecord) int {
	log := s.logger.With("op", "Rank", "dim", rec.Dim)

	m, err := rec.Matrix()
	if err != nil {
		log.Error("boundary matrix rejected, rank downgraded to 0", "err", err)
		return 0
	}
	if m == nil {
		log.Warn("empty boundary matrix, rank 0", "chains", rec.Len())
		return 0
	}

	est, err := s.estimator.EstimateRank(m)
	if err != nil {
		log.Error("rank estimation failed, rank downgraded to 0", "err", err)
		return 0
	}
	log.Debug("rank estimated", "kernel", est.Kernel, "image", est.Image, "rank", est.Rank)

	return est.Rank
}

// Ranks returns one estimated rank per dimension 0..degree-1.
//
// Errors:
//   - ErrNegativeDegree when degree < 0.
func (s *Solver) Ranks(c *simplex.Complex, degree int) ([]int, error) {
	if degree < 0 {
		return nil, homologyErrorf("Ranks", ErrNegativeDegree)
	}
	if c.Empty() {
		s.logger.Warn("empty complex, all ranks zero", "op", "Ranks", "degree", degree)
	}

	ranks := make([]int, degree)
	for dim := 0; dim < degree; dim++ {
		ranks[dim] = s.Rank(Boundary(c, dim))
	}
	return ranks, nil
}

// AllowableChains filters rec under strata and perversity p, logging the
// kept/total counts.
func (s *Solver) AllowableChains(rec BoundaryRecord, strata Strata, p int) (BoundaryRecord, error) {
	out, err := AllowableChains(rec, strata, p)
	if err != nil {
		return out, err
	}
	if len(strata) == 0 {
		s.logger.Warn("empty strata, every chain is allowable", "op", "AllowableChains", "dim", rec.Dim)
	}
	s.logger.Debug("allowable chains computed",
		"op", "AllowableChains", "dim", rec.Dim, "perversity", p, "kept", out.Len(), "total", rec.Len())

	return out, nil
}

// IntersectionHomology returns one estimated rank per dimension
// 0..degree-1, each computed on the allowable chains of that dimension's
// boundary record.
//
// Errors:
//   - ErrNegativeDegree, ErrNegativePerversity (configuration).
//
// Complexity: O(degree·(|K|·degree² + SVD)).
func (s *Solver) IntersectionHomology(c *simplex.Complex, strata Strata, degree, perversity int) ([]int, error) {
	const method = "IntersectionHomology"
	if degree < 0 {
		return nil, homologyErrorf(method, ErrNegativeDegree)
	}
	if perversity < 0 {
		return nil, homologyErrorf(method, ErrNegativePerversity)
	}
	if c.Empty() {
		s.logger.Warn("empty complex, all ranks zero", "op", method, "degree", degree)
	}

	ranks := make([]int, degree)
	for dim := 0; dim < degree; dim++ {
		allowed, err := s.AllowableChains(Boundary(c, dim), strata, perversity)
		if err != nil {
			return nil, fmt.Errorf("%s: dim %d: %w", method, dim, err)
		}
		ranks[dim] = s.Rank(allowed)
	}
	s.logger.Info("intersection homology computed",
		"op", method, "degree", degree, "perversity", perversity, "ranks", ranks)

	return ranks, nil
}
