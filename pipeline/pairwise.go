// SPDX-License-Identifier: MIT
// Package: lvtopo/pipeline
//
// pairwise.go — bottleneck distance matrix between unit diagrams.

package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtopo/bottleneck"
	"github.com/katalvlaran/lvtopo/diagram"
)

// WeightFunc assigns one weight per pair of a diagram.
type WeightFunc func(diagram.Diagram) []float64

// UniformWeights weighs every pair 1.
func UniformWeights(d diagram.Diagram) []float64 { return diagram.UniformWeights(len(d)) }

// PairwiseBottleneck returns the symmetric matrix of weighted bottleneck
// distances between the dimension-dim diagrams of reports. The diagonal is 0.
// Pairs are computed concurrently with the runner's worker bound; the first
// failure cancels the rest.
//
// Errors:
//   - ErrNoDiagram when a report lacks dimension dim (including failed units).
//   - bottleneck errors for invalid diagrams or weights.
//
// Complexity: O(U²·(n+m)³) for U reports.
func (r *Runner) PairwiseBottleneck(ctx context.Context, reports []Report, dim int, weigh WeightFunc, opts ...bottleneck.Option) (*mat.SymDense, error) {
	n := len(reports)
	if n == 0 {
		return nil, nil
	}
	if weigh == nil {
		weigh = UniformWeights
	}
	ds := make([]diagram.Diagram, n)
	for i, rep := range reports {
		if !rep.OK() || dim < 0 || dim >= len(rep.Diagrams) {
			return nil, fmt.Errorf("PairwiseBottleneck: unit %q dim %d: %w", rep.Name, dim, ErrNoDiagram)
		}
		ds[i] = rep.Diagrams[dim]
	}

	out := mat.NewSymDense(n, nil)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := bottleneck.Distance(ds[i], ds[j], weigh(ds[i]), weigh(ds[j]), opts...)
				if err != nil {
					return fmt.Errorf("units %q/%q: %w", reports[i].Name, reports[j].Name, err)
				}
				// Distinct (i,j) cells; SymDense writes one backing slot.
				out.SetSym(i, j, d)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("PairwiseBottleneck: %w", err)
	}
	r.metrics.distances(n * (n - 1) / 2)

	return out, nil
}
