package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Canonical(t *testing.T) {
	s, err := simplex.New(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, simplex.Simplex{0, 1, 2}, s)
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, "0,1,2", s.Key())
	assert.Equal(t, "{0,1,2}", s.String())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(3))
}

func TestNew_Errors(t *testing.T) {
	_, err := simplex.New()
	assert.ErrorIs(t, err, simplex.ErrEmptySimplex)

	_, err = simplex.New(1, 1)
	assert.ErrorIs(t, err, simplex.ErrDuplicateVertex)

	_, err = simplex.New(-1, 2)
	assert.ErrorIs(t, err, simplex.ErrNegativeVertex)
}

func TestFaces(t *testing.T) {
	tri := simplex.Simplex{0, 1, 2}
	assert.Equal(t, []simplex.Simplex{{1, 2}, {0, 2}, {0, 1}}, tri.Faces())

	vertex := simplex.Simplex{7}
	faces := vertex.Faces()
	require.Len(t, faces, 1)
	assert.Empty(t, faces[0], "a vertex has one empty face")
	assert.Equal(t, -1, faces[0].Dim())
}

func TestComplex_Dedup(t *testing.T) {
	c, err := simplex.NewComplex([]int{0}, []int{1, 0}, []int{0, 1}, []int{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len(), "{0,1} and {1,0} are the same simplex")
	assert.True(t, c.Contains(simplex.Simplex{0, 1}))
	assert.Equal(t, 1, c.CountDim(1))
	assert.Equal(t, 2, c.MaxDim())
	assert.Equal(t, []simplex.Simplex{{0, 1, 2}}, c.OfDim(2))

	_, err = simplex.NewComplex([]int{3, 3})
	assert.ErrorIs(t, err, simplex.ErrDuplicateVertex)
}

func TestComplex_NilReadsEmpty(t *testing.T) {
	var c *simplex.Complex
	assert.True(t, c.Empty())
	assert.Equal(t, -1, c.MaxDim())
	assert.False(t, c.Contains(simplex.Simplex{0}))
	assert.Nil(t, c.Simplices())

	other, err := simplex.NewComplex([]int{0})
	require.NoError(t, err)
	assert.True(t, c.SubsetOf(other))
	assert.False(t, other.SubsetOf(c))
}
