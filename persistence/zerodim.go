// SPDX-License-Identifier: MIT
// Package: lvtopo/persistence
//
// zerodim.go — H0 persistence via Kruskal union-find.

package persistence

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/diagram"
)

// cancelEvery bounds how many edges are merged between context checks.
const cancelEvery = 1024

// Option customises ZeroDim.
type Option func(*ZeroDim)

// WithLogger routes engine diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("persistence: WithLogger(nil)")
	}
	return func(z *ZeroDim) { z.logger = l }
}

// ZeroDim is an Engine producing only the dimension-0 diagram.
type ZeroDim struct {
	logger *slog.Logger
}

var _ Engine = (*ZeroDim)(nil)

// NewZeroDim returns a ZeroDim engine.
func NewZeroDim(opts ...Option) *ZeroDim {
	z := &ZeroDim{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// Edge is a weighted pair of point indices.
type Edge struct {
	U, V   int
	Length float64
}

// Diagrams returns a single-element slice holding the H0 diagram, finite
// pairs in ascending death order followed by the essential class.
// An empty cloud yields one empty diagram.
//
// Errors:
//   - ctx.Err() when cancelled mid-merge.
//
// Complexity: O(N²·D + N² log N) time, O(N²) memory.
func (z *ZeroDim) Diagrams(ctx context.Context, pc *cloud.PointCloud) ([]diagram.Diagram, error) {
	log := z.logger.With("op", "ZeroDim.Diagrams", "points", pc.Len())
	if pc.Len() == 0 {
		log.Warn("empty point cloud, empty H0 diagram")
		return []diagram.Diagram{{}}, nil
	}

	tree, err := SpanningTree(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("ZeroDim.Diagrams: %w", err)
	}

	h0 := make(diagram.Diagram, 0, len(tree)+1)
	for _, e := range tree {
		if e.Length > 0 {
			h0 = append(h0, diagram.Pair{Birth: 0, Death: e.Length})
		}
	}
	h0 = append(h0, diagram.Pair{Birth: 0, Death: math.Inf(1)})
	log.Debug("H0 diagram computed", "pairs", len(h0))

	return []diagram.Diagram{h0}, nil
}

// SpanningTree returns the N−1 edges of a Euclidean minimum spanning tree of
// pc in ascending length, ties broken by (U, V).
//
// Steps:
//  1. Enumerate all i<j pairs with their distances.
//  2. Stable sort by length.
//  3. Merge with union by rank and path halving, stopping at N−1 edges.
func SpanningTree(ctx context.Context, pc *cloud.PointCloud) ([]Edge, error) {
	n := pc.Len()
	if n < 2 {
		return nil, nil
	}

	dist := pc.DistanceMatrix()
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Length: dist.At(i, j)})
		}
	}
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.Length, b.Length) })

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	tree := make([]Edge, 0, n-1)
	for k, e := range edges {
		if k%cancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, e)
		if len(tree) == n-1 {
			break
		}
	}

	return tree, nil
}
