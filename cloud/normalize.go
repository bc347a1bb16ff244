// SPDX-License-Identifier: MIT
// Package: lvtopo/cloud
//
// normalize.go — per-column min-max scaling.

package cloud

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MinMaxNormalize returns a new cloud whose columns are rescaled into [0,1].
// Constant columns collapse to 0. The input is left untouched.
// Complexity: O(N·D).
func MinMaxNormalize(pc *PointCloud) *PointCloud {
	n, d := pc.Len(), pc.Dim()
	if n == 0 {
		return &PointCloud{}
	}

	out := mat.DenseCopyOf(pc.data)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, pc.data)
		lo, hi := floats.Min(col), floats.Max(col)
		span := hi - lo
		for i := 0; i < n; i++ {
			if span == 0 {
				out.Set(i, j, 0)
				continue
			}
			out.Set(i, j, (col[i]-lo)/span)
		}
	}

	return &PointCloud{data: out, n: n, d: d}
}
