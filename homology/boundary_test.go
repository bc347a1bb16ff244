package homology_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleComplex(t *testing.T) *simplex.Complex {
	t.Helper()
	c, err := simplex.NewComplex(
		[]int{0}, []int{1}, []int{2},
		[]int{0, 1}, []int{0, 2}, []int{1, 2},
		[]int{0, 1, 2},
	)
	require.NoError(t, err)
	return c
}

func TestBoundary_Shape(t *testing.T) {
	c := triangleComplex(t)
	for dim := 0; dim <= 2; dim++ {
		rec := homology.Boundary(c, dim)
		assert.Equal(t, dim, rec.Dim)
		assert.Equal(t, c.CountDim(dim), rec.Len(), "one chain per %d-simplex", dim)
		for _, ch := range rec.Chains {
			require.Len(t, ch, dim+1, "d+1 faces per chain")
			for _, f := range ch {
				assert.Len(t, f, dim, "faces have d vertices")
			}
		}
	}

	assert.Zero(t, homology.Boundary(c, 3).Len(), "no 3-simplices")
}

func TestBoundary_ShapeOnRips(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}})
	require.NoError(t, err)
	c, ok := simplex.VietorisRips(pc, 1.1)
	require.True(t, ok)

	rec := homology.Boundary(c, 2)
	assert.Equal(t, c.CountDim(2), rec.Len())
	assert.Equal(t, 3*rec.Len(), rec.FaceCount())
}

func TestBoundary_EmptyComplex(t *testing.T) {
	rec := homology.Boundary(nil, 1)
	assert.Zero(t, rec.Len())

	m, err := rec.Matrix()
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestBoundaryRecord_Matrix(t *testing.T) {
	rec := homology.Boundary(triangleComplex(t), 2)
	m, err := rec.Matrix()
	require.NoError(t, err)
	require.NotNil(t, m)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{1, 2}, m.RawRowView(0))
	assert.Equal(t, []float64{0, 1}, m.RawRowView(2))

	vertices := homology.Boundary(triangleComplex(t), 0)
	m, err = vertices.Matrix()
	assert.NoError(t, err)
	assert.Nil(t, m, "vertex faces are empty, so the matrix has no columns")
}

func TestBoundaryRecord_MatrixMalformed(t *testing.T) {
	rec := homology.BoundaryRecord{Dim: 1, Chains: []homology.Chain{
		{{0}, {1}},
		{{0, 1}},
	}}
	_, err := rec.Matrix()
	assert.ErrorIs(t, err, homology.ErrMalformedRecord)
}
