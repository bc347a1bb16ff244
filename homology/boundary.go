// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// boundary.go — boundary records and their numeric matrix form.

package homology

import (
	"github.com/katalvlaran/lvtopo/simplex"
	"gonum.org/v1/gonum/mat"
)

// Chain is the list of faces produced by one simplex.
type Chain []simplex.Simplex

// BoundaryRecord holds the chains of every simplex of dimension Dim.
// Each chain has exactly Dim+1 faces of Dim vertices each.
type BoundaryRecord struct {
	Dim    int
	Chains []Chain
}

// Len returns the number of chains.
func (r BoundaryRecord) Len() int { return len(r.Chains) }

// FaceCount returns the total number of faces over all chains.
func (r BoundaryRecord) FaceCount() int {
	n := 0
	for _, ch := range r.Chains {
		n += len(ch)
	}
	return n
}

// Boundary builds the record for dimension dim: every simplex with exactly
// dim+1 vertices contributes its dim+1 faces; all others are skipped.
// An empty complex yields an empty record.
// Complexity: O(|K|·dim²).
func Boundary(c *simplex.Complex, dim int) BoundaryRecord {
	rec := BoundaryRecord{Dim: dim}
	for _, s := range c.Simplices() {
		if len(s) != dim+1 {
			continue
		}
		rec.Chains = append(rec.Chains, Chain(s.Faces()))
	}
	return rec
}

// Matrix stacks all faces of r as rows of a dense matrix whose columns are
// vertex slots. It returns (nil, nil) when the matrix would be empty (no
// faces, or zero-vertex faces as for Dim 0).
//
// Errors:
//   - ErrMalformedRecord when faces have differing sizes.
func (r BoundaryRecord) Matrix() (*mat.Dense, error) {
	rows := r.FaceCount()
	if rows == 0 {
		return nil, nil
	}
	cols := -1
	for _, ch := range r.Chains {
		for _, f := range ch {
			if cols < 0 {
				cols = len(f)
			}
			if len(f) != cols {
				return nil, homologyErrorf("BoundaryRecord.Matrix", ErrMalformedRecord)
			}
		}
	}
	if cols == 0 {
		return nil, nil
	}

	data := make([]float64, 0, rows*cols)
	for _, ch := range r.Chains {
		for _, f := range ch {
			for _, v := range f {
				data = append(data, float64(v))
			}
		}
	}

	return mat.NewDense(rows, cols, data), nil
}
