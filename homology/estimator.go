// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// estimator.go — pluggable rank estimation over boundary matrices.

package homology

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance classifies singular values as numerically zero.
const DefaultTolerance = 1e-10

// Estimate is the outcome of one rank estimation.
type Estimate struct {
	// Rank is the estimated homology rank, never negative.
	Rank int
	// Kernel is the size of the estimated kernel basis.
	Kernel int
	// Image is the image-rank proxy used by the estimator.
	Image int
	// Basis holds the kernel basis vectors (right-singular vectors).
	Basis [][]float64
}

// RankEstimator turns a boundary matrix into a homology-rank estimate.
// Implementations must be deterministic for a given input.
type RankEstimator interface {
	EstimateRank(m mat.Matrix) (Estimate, error)
}

// SVDEstimator is the nullspace heuristic: kernel from tiny singular values,
// image approximated by the row count.
type SVDEstimator struct {
	// Tolerance below which a singular value counts as zero.
	// Zero selects DefaultTolerance.
	Tolerance float64
}

// EstimateRank factorises m with a thin SVD and returns
// max(0, |kernel| − rows). On failure it returns a zero Estimate and an
// error wrapping ErrNumericalFailure.
func (e SVDEstimator) EstimateRank(m mat.Matrix) (est Estimate, err error) {
	// gonum panics on shape misuse; keep that inside the failure taxonomy.
	defer func() {
		if r := recover(); r != nil {
			est = Estimate{}
			err = fmt.Errorf("SVDEstimator: %v: %w", r, ErrNumericalFailure)
		}
	}()

	tol := e.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	rows, _ := m.Dims()
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThinV); !ok {
		return Estimate{}, fmt.Errorf("SVDEstimator: factorize: %w", ErrNumericalFailure)
	}
	values := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	for j, s := range values {
		if s <= tol {
			est.Basis = append(est.Basis, mat.Col(nil, j, &v))
		}
	}
	est.Kernel = len(est.Basis)
	est.Image = rows
	est.Rank = max(0, est.Kernel-est.Image)

	return est, nil
}
