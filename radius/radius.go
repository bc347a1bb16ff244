// SPDX-License-Identifier: MIT
// Package: lvtopo/radius
//
// radius.go — adaptive radius selection.

package radius

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/cloud"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Select returns the adaptive radius for pc under opts.
//
// The result is ≥ 0; it is 0 only when every point coincides with its
// k-th neighbour (e.g. a single-point cloud).
//
// Errors:
//   - ErrUnknownMethod — opts.Method is not knn or density.
//   - ErrBadOptions    — Neighbors < 1 or ScaleFactor ≤ 0.
//   - ErrEmptyCloud    — pc has no points.
//
// Complexity: O(N²·D) for distances, plus O(N² log N) sorting for KNN.
func Select(pc *cloud.PointCloud, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, fmt.Errorf("Select(%s): %w", opts.Method, err)
	}
	if pc.Len() == 0 {
		return 0, fmt.Errorf("Select(%s): %w", opts.Method, ErrEmptyCloud)
	}

	dist := pc.DistanceMatrix()
	var avg float64
	switch opts.Method {
	case KNN:
		avg = meanKthNeighbor(dist, opts.Neighbors)
	case Density:
		avg = meanPairwise(dist)
	}

	return avg * opts.ScaleFactor, nil
}

// meanKthNeighbor averages, over rows, the k-th smallest entry of each row
// of dist (the zero self-distance is the first).
func meanKthNeighbor(dist *mat.SymDense, k int) float64 {
	n := dist.SymmetricDim()
	if k > n {
		k = n
	}
	kth := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, dist)
		sorted := slices.Clone(row)
		slices.Sort(sorted)
		kth[i] = sorted[k-1]
	}
	return stat.Mean(kth, nil)
}

// meanPairwise averages all N² entries of dist.
func meanPairwise(dist *mat.SymDense) float64 {
	n := dist.SymmetricDim()
	all := make([]float64, 0, n*n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		all = append(all, mat.Row(row, i, dist)...)
	}
	return stat.Mean(all, nil)
}
