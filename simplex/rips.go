// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// rips.go — Vietoris–Rips complex bounded to dimension 2.

package simplex

import (
	"github.com/katalvlaran/lvtopo/cloud"
)

// VietorisRips builds the Rips complex of pc at the given radius.
//
// Emission order is: all vertices by index, then edges in lexicographic
// order, then triangles in lexicographic order.
//
// The boolean is true when the complex is non-empty. On false the (empty)
// complex is still returned and the caller should treat the region as
// degenerate. A negative or NaN radius admits no edges.
//
// Stages:
//  1. Validate: an empty cloud short-circuits to (empty, false).
//  2. Prepare: full distance matrix and an adjacency bitmap for d ≤ r.
//  3. Execute: vertices, then edges, then triangles via common neighbours.
//
// Complexity: O(N²·D + N·E) time, O(N²) memory.
func VietorisRips(pc *cloud.PointCloud, radius float64, opts ...Option) (*Complex, bool) {
	cfg := newRipsConfig(opts...)
	log := cfg.logger.With("op", "VietorisRips", "radius", radius)

	n := pc.Len()
	if n == 0 {
		log.Warn("empty point cloud, returning empty complex")
		return newComplex(0), false
	}

	dist := pc.DistanceMatrix()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dist.At(i, j) <= radius {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}

	c := newComplex(n)
	for i := 0; i < n; i++ {
		c.add(Simplex{i})
	}

	var edges, triangles int
	if cfg.maxDim >= 1 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if adj[i][j] {
					c.add(Simplex{i, j})
					edges++
				}
			}
		}
	}
	if cfg.maxDim >= 2 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !adj[i][j] {
					continue
				}
				for k := j + 1; k < n; k++ {
					if adj[i][k] && adj[j][k] {
						c.add(Simplex{i, j, k})
						triangles++
					}
				}
			}
		}
	}

	log.Info("built Vietoris-Rips complex",
		"vertices", n, "edges", edges, "triangles", triangles, "simplices", c.Len())

	return c, c.Len() > 0
}
