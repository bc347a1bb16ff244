// SPDX-License-Identifier: MIT
// Package: lvtopo/cloud
//
// embed.go — Takens-style time-delay embedding of a scalar series.
//
// Contract:
//   - Window i is (x[i], x[i+τ], …, x[i+(m-1)τ]) for delay τ ≥ 1 and dimension m ≥ 1.
//   - Window count is len(x) - (m-1)τ; fewer than one window ⇒ ErrSeriesTooShort.
//   - Non-finite samples are rejected up front (ErrNaNInf).

package cloud

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const methodDelayEmbed = "DelayEmbed"

// DelayEmbed converts a scalar series into a point cloud of delay vectors.
// Point i of the result starts at sample i, so a per-vertex field over the
// cloud can be read straight from the series (see SeriesField).
//
// Complexity: O(W·m) where W is the window count.
func DelayEmbed(series []float64, delay, dim int) (*PointCloud, error) {
	if delay < 1 || dim < 1 {
		return nil, cloudErrorf(methodDelayEmbed, ErrBadEmbedding)
	}
	span := (dim - 1) * delay
	windows := len(series) - span
	if windows < 1 {
		return nil, cloudErrorf(methodDelayEmbed, ErrSeriesTooShort)
	}
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, cloudErrorf(methodDelayEmbed, ErrNaNInf)
		}
	}

	data := mat.NewDense(windows, dim, nil)
	for i := 0; i < windows; i++ {
		row := data.RawRowView(i)
		for k := 0; k < dim; k++ {
			row[k] = series[i+k*delay]
		}
	}

	return &PointCloud{data: data, n: windows, d: dim}, nil
}
