package homology_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSVDEstimator_Kernel(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 1, 1, 1, 1, 1})

	est, err := homology.SVDEstimator{}.EstimateRank(m)
	require.NoError(t, err)
	assert.Equal(t, 1, est.Kernel, "rank-1 matrix has one null direction")
	assert.Equal(t, 3, est.Image, "image is approximated by the row count")
	assert.Equal(t, 0, est.Rank, "max(0, 1-3)")

	require.Len(t, est.Basis, 1)
	b := est.Basis[0]
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(b[0]), 1e-9)
	assert.InDelta(t, -b[0], b[1], 1e-9, "null vector is ±(1,-1)/√2")
}

func TestSVDEstimator_FullRank(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 0, 0, 2})
	est, err := homology.SVDEstimator{Tolerance: 1e-10}.EstimateRank(m)
	require.NoError(t, err)
	assert.Zero(t, est.Kernel)
	assert.Empty(t, est.Basis)
	assert.Zero(t, est.Rank)
}

func TestSVDEstimator_Deterministic(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 0, 2, 0, 1})
	a, errA := homology.SVDEstimator{}.EstimateRank(m)
	b, errB := homology.SVDEstimator{}.EstimateRank(m)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

// stubEstimator returns a fixed estimate or error.
type stubEstimator struct {
	est   homology.Estimate
	err   error
	calls int
}

func (s *stubEstimator) EstimateRank(mat.Matrix) (homology.Estimate, error) {
	s.calls++
	return s.est, s.err
}

func TestSolver_PluggableEstimator(t *testing.T) {
	stub := &stubEstimator{est: homology.Estimate{Rank: 7}}
	solver := homology.NewSolver(homology.WithEstimator(stub))

	ranks, err := solver.Ranks(triangleComplex(t), 3)
	require.NoError(t, err)
	// Dimension 0 faces are empty, so only dims 1 and 2 reach the estimator.
	assert.Equal(t, []int{0, 7, 7}, ranks)
	assert.Equal(t, 2, stub.calls)
}

func TestSolver_NumericalFailureDowngrades(t *testing.T) {
	stub := &stubEstimator{err: homology.ErrNumericalFailure}
	solver := homology.NewSolver(homology.WithEstimator(stub))

	ranks, err := solver.Ranks(triangleComplex(t), 3)
	require.NoError(t, err, "numerical failure is never propagated")
	assert.Equal(t, []int{0, 0, 0}, ranks)

	malformed := homology.BoundaryRecord{Dim: 1, Chains: []homology.Chain{{{0}, {0, 1}}}}
	assert.Zero(t, solver.Rank(malformed))
}

func TestSolver_Ranks(t *testing.T) {
	solver := homology.NewSolver()

	ranks, err := solver.Ranks(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, ranks, "empty complex yields zero ranks")

	_, err = solver.Ranks(triangleComplex(t), -1)
	assert.ErrorIs(t, err, homology.ErrNegativeDegree)

	empty, err := simplex.NewComplex()
	require.NoError(t, err)
	ranks, err = solver.Ranks(empty, 0)
	require.NoError(t, err)
	assert.Empty(t, ranks)

	assert.Panics(t, func() { homology.WithEstimator(nil) })
	assert.Panics(t, func() { homology.WithLogger(nil) })
}
