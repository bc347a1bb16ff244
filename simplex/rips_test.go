package simplex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCloud(t *testing.T, pts [][]float64) *cloud.PointCloud {
	t.Helper()
	pc, err := cloud.New(pts)
	require.NoError(t, err)
	return pc
}

func TestVietorisRips_SinglePoint(t *testing.T) {
	pc := mustCloud(t, [][]float64{{3, 4}})
	for _, r := range []float64{0, 0.5, 10} {
		c, ok := simplex.VietorisRips(pc, r)
		assert.True(t, ok)
		assert.Equal(t, 1, c.Len(), "radius %v", r)
		assert.Equal(t, 1, c.CountDim(0))
		assert.Equal(t, 0, c.MaxDim())
	}
}

func TestVietorisRips_Empty(t *testing.T) {
	c, ok := simplex.VietorisRips(mustCloud(t, nil), 1)
	assert.False(t, ok, "empty cloud reports failure")
	require.NotNil(t, c)
	assert.True(t, c.Empty())
}

func TestVietorisRips_UnitSquare(t *testing.T) {
	pc := mustCloud(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})

	c, ok := simplex.VietorisRips(pc, 1)
	require.True(t, ok)
	assert.Equal(t, 4, c.CountDim(0))
	assert.Equal(t, 4, c.CountDim(1), "only the unit sides")
	assert.Equal(t, 0, c.CountDim(2), "diagonals are longer than 1")
	assert.False(t, c.Contains(simplex.Simplex{0, 3}))
	assert.False(t, c.Contains(simplex.Simplex{1, 2}))

	c, ok = simplex.VietorisRips(pc, math.Sqrt2)
	require.True(t, ok)
	assert.Equal(t, 6, c.CountDim(1), "diagonals enter at sqrt(2)")
	// Every triple of the square has all pairwise distances ≤ √2.
	assert.Equal(t, 4, c.CountDim(2))
	assert.True(t, c.Contains(simplex.Simplex{0, 1, 2}))
	assert.True(t, c.Contains(simplex.Simplex{1, 2, 3}))
}

func TestVietorisRips_EmissionOrder(t *testing.T) {
	pc := mustCloud(t, [][]float64{{0}, {1}, {2}})
	c, _ := simplex.VietorisRips(pc, 2)
	assert.Equal(t, []simplex.Simplex{
		{0}, {1}, {2},
		{0, 1}, {0, 2}, {1, 2},
		{0, 1, 2},
	}, c.Simplices())
}

func TestVietorisRips_MaxDim(t *testing.T) {
	pc := mustCloud(t, [][]float64{{0}, {1}, {2}})
	c, _ := simplex.VietorisRips(pc, 5, simplex.WithMaxDim(1))
	assert.Equal(t, 0, c.CountDim(2))
	assert.Equal(t, 3, c.CountDim(1))

	assert.Panics(t, func() { simplex.WithMaxDim(3) })
	assert.Panics(t, func() { simplex.WithLogger(nil) })
}

func TestVietorisRips_NegativeRadius(t *testing.T) {
	pc := mustCloud(t, [][]float64{{0}, {0}})
	c, ok := simplex.VietorisRips(pc, -1)
	assert.True(t, ok)
	assert.Equal(t, 0, c.CountDim(1), "negative radius admits no edge")

	c, _ = simplex.VietorisRips(pc, 0)
	assert.Equal(t, 1, c.CountDim(1), "coincident points connect at radius 0")
}

// TestVietorisRips_Monotone checks complex(r1) ⊆ complex(r2) for r1 ≤ r2.
func TestVietorisRips_Monotone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("rips complex grows with radius", prop.ForAll(
		func(coords []float64, r1, dr float64) bool {
			pts := make([][]float64, 0, len(coords)/2)
			for i := 0; i+1 < len(coords); i += 2 {
				pts = append(pts, []float64{coords[i], coords[i+1]})
			}
			pc, err := cloud.New(pts)
			if err != nil {
				return false
			}
			small, _ := simplex.VietorisRips(pc, r1)
			large, _ := simplex.VietorisRips(pc, r1+dr)
			return small.SubsetOf(large) && small.Len() <= large.Len()
		},
		gen.SliceOfN(16, gen.Float64Range(-1, 1)),
		gen.Float64Range(0, 1.5),
		gen.Float64Range(0, 1.5),
	))

	properties.TestingRun(t)
}
