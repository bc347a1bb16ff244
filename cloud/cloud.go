// SPDX-License-Identifier: MIT
// Package: lvtopo/cloud
//
// cloud.go — immutable point cloud over a gonum row-major matrix.

package cloud

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	methodNew       = "New"
	methodFromDense = "FromDense"
)

// PointCloud is an ordered set of N points in D dimensions.
// Row i of data is the point with vertex identifier i. The zero value and
// a nil pointer are both valid empty clouds.
type PointCloud struct {
	data *mat.Dense // nil when n == 0 (gonum forbids zero-sized matrices)
	n, d int
}

// New copies points into a PointCloud.
// An empty (or nil) slice yields an empty cloud, not an error.
//
// Errors:
//   - ErrZeroDimension when the first point has no coordinates.
//   - ErrRaggedPoints  when point lengths differ.
//   - ErrNaNInf        when any coordinate is not finite.
//
// Complexity: O(N·D).
func New(points [][]float64) (*PointCloud, error) {
	n := len(points)
	if n == 0 {
		return &PointCloud{}, nil
	}
	d := len(points[0])
	if d == 0 {
		return nil, cloudErrorf(methodNew, ErrZeroDimension)
	}

	flat := make([]float64, 0, n*d)
	for _, p := range points {
		if len(p) != d {
			return nil, cloudErrorf(methodNew, ErrRaggedPoints)
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, cloudErrorf(methodNew, ErrNaNInf)
			}
		}
		flat = append(flat, p...)
	}

	return &PointCloud{data: mat.NewDense(n, d, flat), n: n, d: d}, nil
}

// FromDense copies a gonum matrix (one point per row) into a PointCloud.
// A nil matrix yields an empty cloud.
func FromDense(m mat.Matrix) (*PointCloud, error) {
	if m == nil {
		return &PointCloud{}, nil
	}
	r, c := m.Dims()
	if r == 0 {
		return &PointCloud{}, nil
	}
	if c == 0 {
		return nil, cloudErrorf(methodFromDense, ErrZeroDimension)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, cloudErrorf(methodFromDense, ErrNaNInf)
			}
		}
	}

	return &PointCloud{data: mat.DenseCopyOf(m), n: r, d: c}, nil
}

// Len returns the number of points N.
func (pc *PointCloud) Len() int {
	if pc == nil {
		return 0
	}
	return pc.n
}

// Dim returns the ambient dimension D (0 for an empty cloud).
func (pc *PointCloud) Dim() int {
	if pc == nil {
		return 0
	}
	return pc.d
}

// Point returns a copy of point i, or nil when i is out of range.
func (pc *PointCloud) Point(i int) []float64 {
	if i < 0 || i >= pc.Len() {
		return nil
	}
	out := make([]float64, pc.d)
	copy(out, pc.data.RawRowView(i))

	return out
}

// Points returns a deep copy of all points.
func (pc *PointCloud) Points() [][]float64 {
	out := make([][]float64, pc.Len())
	for i := range out {
		out[i] = pc.Point(i)
	}
	return out
}

// Dense returns a copy of the backing matrix, or nil for an empty cloud.
func (pc *PointCloud) Dense() *mat.Dense {
	if pc.Len() == 0 {
		return nil
	}
	return mat.DenseCopyOf(pc.data)
}

// Distance returns the Euclidean distance between points i and j.
// Out-of-range indices yield NaN.
// Complexity: O(D).
func (pc *PointCloud) Distance(i, j int) float64 {
	n := pc.Len()
	if i < 0 || j < 0 || i >= n || j >= n {
		return math.NaN()
	}
	return floats.Distance(pc.data.RawRowView(i), pc.data.RawRowView(j), 2)
}

// DistanceMatrix returns the full symmetric N×N Euclidean distance matrix
// with a zero diagonal, or nil for an empty cloud.
// Complexity: O(N²·D) time, O(N²) memory.
func (pc *PointCloud) DistanceMatrix() *mat.SymDense {
	n := pc.Len()
	if n == 0 {
		return nil
	}
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist.SetSym(i, j, pc.Distance(i, j))
		}
	}

	return dist
}

// Concat stacks the points of several clouds in order. Clouds of differing
// non-zero dimension are rejected with ErrRaggedPoints.
func Concat(clouds ...*PointCloud) (*PointCloud, error) {
	var all [][]float64
	for _, pc := range clouds {
		all = append(all, pc.Points()...)
	}
	pc, err := New(all)
	if err != nil {
		return nil, cloudErrorf("Concat", err)
	}

	return pc, nil
}
