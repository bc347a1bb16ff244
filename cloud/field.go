// SPDX-License-Identifier: MIT
// Package: lvtopo/cloud
//
// field.go — per-vertex scalar fields (prices, curvature proxies, projections).

package cloud

import (
	"gonum.org/v1/gonum/floats"
)

// Field assigns one scalar to every vertex index of a cloud.
type Field []float64

// At returns the value at vertex v and whether v is covered by the field.
func (f Field) At(v int) (float64, bool) {
	if v < 0 || v >= len(f) {
		return 0, false
	}
	return f[v], true
}

// ColumnField projects every point onto coordinate col.
func ColumnField(pc *PointCloud, col int) (Field, error) {
	if col < 0 || col >= pc.Dim() {
		return nil, cloudErrorf("ColumnField", ErrColumnOutOfRange)
	}
	f := make(Field, pc.Len())
	for i := range f {
		f[i] = pc.data.At(i, col)
	}
	return f, nil
}

// NormField assigns each vertex the Euclidean norm of its point.
func NormField(pc *PointCloud) Field {
	f := make(Field, pc.Len())
	for i := range f {
		f[i] = floats.Norm(pc.data.RawRowView(i), 2)
	}
	return f
}

// SeriesField aligns a raw series with a delay-embedded cloud: vertex i gets
// series[i], the first sample of its window. The result is truncated to the
// cloud size, or to the series length when the series is shorter.
func SeriesField(series []float64, pc *PointCloud) Field {
	n := pc.Len()
	if len(series) < n {
		n = len(series)
	}
	f := make(Field, n)
	copy(f, series[:n])
	return f
}
