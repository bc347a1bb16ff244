// SPDX-License-Identifier: MIT
// Package: lvtopo/pipeline
//
// runner.go — bounded worker pool over analysis units.

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtopo/diagram"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/hybrid"
	"github.com/katalvlaran/lvtopo/persistence"
	"github.com/katalvlaran/lvtopo/radius"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Option customises a Runner.
type Option func(*Runner)

// WithLogger routes runner and component diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithWorkers bounds concurrent units. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pipeline: WithWorkers < 1")
	}
	return func(r *Runner) { r.workers = n }
}

// WithUnitTimeout sets a per-unit deadline; 0 disables it.
// Panics when d < 0.
func WithUnitTimeout(d time.Duration) Option {
	if d < 0 {
		panic("pipeline: WithUnitTimeout < 0")
	}
	return func(r *Runner) { r.timeout = d }
}

// WithEngine replaces the built-in H0 engine. Panics on nil.
func WithEngine(e persistence.Engine) Option {
	if e == nil {
		panic("pipeline: WithEngine(nil)")
	}
	return func(r *Runner) { r.engine = e }
}

// WithEstimator replaces the homology rank estimator. Panics on nil.
func WithEstimator(e homology.RankEstimator) Option {
	if e == nil {
		panic("pipeline: WithEstimator(nil)")
	}
	return func(r *Runner) { r.estimator = e }
}

// WithMetrics instruments the runner. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("pipeline: WithMetrics(nil)")
	}
	return func(r *Runner) { r.metrics = m }
}

// WithParams sets the analysis parameters. Validated by Run.
func WithParams(p Params) Option {
	return func(r *Runner) { r.params = p }
}

// Runner analyses units concurrently. A Runner is safe for concurrent Run
// calls.
type Runner struct {
	logger    *slog.Logger
	workers   int
	timeout   time.Duration
	engine    persistence.Engine
	estimator homology.RankEstimator
	metrics   *Metrics
	params    Params

	solver   *homology.Solver
	composer *hybrid.Composer
}

// NewRunner returns a Runner with GOMAXPROCS workers, no deadline, the
// ZeroDim engine and DefaultParams.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:    slog.New(slog.DiscardHandler),
		workers:   runtime.GOMAXPROCS(0),
		estimator: homology.SVDEstimator{Tolerance: homology.DefaultTolerance},
		params:    DefaultParams(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = persistence.NewZeroDim(persistence.WithLogger(r.logger))
	}
	r.solver = homology.NewSolver(homology.WithLogger(r.logger), homology.WithEstimator(r.estimator))
	r.composer = hybrid.NewComposer(hybrid.WithLogger(r.logger), hybrid.WithRadius(r.params.Radius))
	return r
}

// accumulator collects reports at their input positions.
type accumulator struct {
	mu      sync.Mutex
	reports []Report
	ran     []bool
	failed  int
}

func (a *accumulator) put(i int, rep Report) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports[i] = rep
	a.ran[i] = true
	if !rep.OK() {
		a.failed++
	}
}

// abandon marks every slot that never ran as failed with err.
func (a *accumulator) abandon(units []Unit, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, ok := range a.ran {
		if !ok {
			a.reports[i] = Report{ID: uuid.New(), Name: units[i].Name, Err: err}
			a.failed++
		}
	}
}

// Run analyses every unit and returns one Report per unit, in input order.
//
// Errors:
//   - radius.ErrUnknownMethod, ErrBadParams, homology.ErrNegativeDegree,
//     homology.ErrNegativePerversity before any unit starts.
//   - ctx.Err() when ctx ends before all units finish; the partial reports
//     are still returned, and units that never started carry ctx.Err().
func (r *Runner) Run(ctx context.Context, units []Unit) ([]Report, error) {
	if err := r.params.validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	acc := &accumulator{reports: make([]Report, len(units)), ran: make([]bool, len(units))}
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, u := range units {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			acc.put(i, r.analyze(ctx, u))
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		acc.abandon(units, err)
	}

	r.logger.Info("batch finished", "units", len(units), "failed", acc.failed, "workers", r.workers)
	if err := ctx.Err(); err != nil {
		return acc.reports, fmt.Errorf("Run: %w", err)
	}
	return acc.reports, nil
}

// analyze runs one unit to completion or first failure.
func (r *Runner) analyze(parent context.Context, u Unit) (rep Report) {
	rep = Report{ID: uuid.New(), Name: u.Name}
	log := r.logger.With("unit", u.Name, "unit_id", rep.ID.String())
	start := time.Now()

	r.metrics.active(1)
	defer func() {
		rep.Elapsed = time.Since(start)
		r.metrics.active(-1)
		r.metrics.observeUnit(rep)
		if rep.Err != nil {
			log.Error("unit failed", "err", rep.Err, "elapsed", rep.Elapsed)
			return
		}
		log.Info("unit done", "ranks", rep.Ranks, "ih_ranks", rep.IntersectionRanks, "elapsed", rep.Elapsed)
	}()

	ctx := parent
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, r.timeout)
		defer cancel()
	}
	p := r.params

	// Complex.
	var c *simplex.Complex
	if u.Cloud.Len() == 0 {
		log.Warn("empty point cloud")
	} else {
		rad, err := radius.Select(u.Cloud, p.Radius)
		if err != nil {
			rep.Err = err
			return rep
		}
		rep.Radius = rad
	}
	c, rep.Built = simplex.VietorisRips(u.Cloud, rep.Radius, simplex.WithLogger(log))
	rep.Simplices = c.Len()
	if rep.Err = ctx.Err(); rep.Err != nil {
		return rep
	}

	// Homology.
	var err error
	if rep.Ranks, err = r.solver.Ranks(c, p.Degree); err != nil {
		rep.Err = err
		return rep
	}
	if rep.IntersectionRanks, err = r.solver.IntersectionHomology(c, u.Strata, p.Degree, p.Perversity); err != nil {
		rep.Err = err
		return rep
	}
	if rep.Err = ctx.Err(); rep.Err != nil {
		return rep
	}

	// Persistence.
	ds, err := r.engine.Diagrams(ctx, u.Cloud)
	if err != nil {
		rep.Err = fmt.Errorf("persistence: %w", err)
		return rep
	}
	rep.Diagrams = make([]diagram.Diagram, len(ds))
	rep.Summaries = make([]diagram.Summary, len(ds))
	rep.Transitions = make([][]diagram.Transition, len(ds))
	for dim, d := range ds {
		kept := diagram.Filter(d, p.Threshold)
		rep.Diagrams[dim] = kept
		rep.Summaries[dim] = diagram.Summarize(kept)
		rep.Transitions[dim] = diagram.Transitions(kept, p.Prominence)
	}

	// Hybrid.
	if u.Hybrid != nil {
		if rep.Hybrid, err = r.composer.Compose(*u.Hybrid); err != nil {
			rep.Err = fmt.Errorf("hybrid: %w", err)
			return rep
		}
	}

	return rep
}
