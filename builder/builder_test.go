package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SizesAndDeterminism(t *testing.T) {
	for _, f := range builder.Frameworks() {
		t.Run(string(f), func(t *testing.T) {
			a, err := builder.Generate(f, 10, 2, 1, 42)
			require.NoError(t, err)
			b, err := builder.Generate(f, 10, 2, 1, 42)
			require.NoError(t, err)

			assert.Equal(t, 2, a.Dim())
			assert.Equal(t, a.Points(), b.Points())
			switch f {
			case builder.Fractal:
				// One refinement of a triangle: 3 vertices + 3 midpoints.
				assert.Equal(t, 6, a.Len())
			default:
				assert.Equal(t, 10, a.Len())
			}
		})
	}
}

func TestGenerate_SeedChangesOutput(t *testing.T) {
	a, err := builder.Generate(builder.Control, 5, 3, 0, 1)
	require.NoError(t, err)
	b, err := builder.Generate(builder.Control, 5, 3, 0, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Points(), b.Points())
}

func TestGenerate_FrameworkShapes(t *testing.T) {
	// Complexity 0 collapses the non-smooth half onto the origin.
	ns, err := builder.Generate(builder.NonSmooth, 6, 2, 0, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, []float64{0, 0}, ns.Point(i))
	}
	assert.NotEqual(t, []float64{0, 0}, ns.Point(5))

	// sin(0) zeroes the first curvature row.
	cv, err := builder.Generate(builder.Curvature, 8, 3, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, cv.Point(0))

	// Complexity 0 leaves singular equal to control.
	s, err := builder.Generate(builder.Singular, 8, 2, 0, 9)
	require.NoError(t, err)
	c, err := builder.Generate(builder.Control, 8, 2, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, c.Points(), s.Points())
}

func TestGenerate_FractalTruncatesAndSorts(t *testing.T) {
	pc, err := builder.Generate(builder.Fractal, 4, 2, 2, 5)
	require.NoError(t, err)
	require.Equal(t, 4, pc.Len())

	pts := pc.Points()
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, pts[i-1][0], pts[i][0], "rows sorted by first coordinate")
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := builder.Generate("spiral", 5, 2, 1, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownFramework)

	_, err = builder.Generate(builder.Control, 0, 2, 1, 0)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Generate(builder.Control, 5, 0, 1, 0)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Generate(builder.Control, 5, 2, -1, 0)
	assert.ErrorIs(t, err, builder.ErrBadComplexity)

	_, err = builder.Generate(builder.Fractal, 5, 2, builder.MaxRefineDepth+1, 0)
	assert.ErrorIs(t, err, builder.ErrBadComplexity)

	_, err = builder.Generate(builder.Hybrid, 1, 2, 1, 0)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestParseFramework(t *testing.T) {
	f, err := builder.ParseFramework("non-smooth")
	require.NoError(t, err)
	assert.Equal(t, builder.NonSmooth, f)

	_, err = builder.ParseFramework("nonsmooth")
	assert.ErrorIs(t, err, builder.ErrUnknownFramework)
}

func TestSierpinskiGasket(t *testing.T) {
	pc, err := builder.SierpinskiGasket(0)
	require.NoError(t, err)
	assert.Equal(t, 3, pc.Len())

	pc, err = builder.SierpinskiGasket(1)
	require.NoError(t, err)
	require.Equal(t, 6, pc.Len())
	assert.Equal(t, []float64{0, 0}, pc.Point(0))
	assert.Equal(t, []float64{1, 0}, pc.Point(5))

	_, err = builder.SierpinskiGasket(-1)
	assert.ErrorIs(t, err, builder.ErrBadComplexity)
}

func TestWhitneyUmbrella(t *testing.T) {
	pc, err := builder.WhitneyUmbrella(50, 11)
	require.NoError(t, err)
	require.Equal(t, 50, pc.Len())
	require.Equal(t, 3, pc.Dim())
	for _, p := range pc.Points() {
		assert.LessOrEqual(t, math.Abs(p[1]), math.Abs(p[0]))
		assert.InDelta(t, p[1]*p[1], p[2], 1e-15)
	}

	_, err = builder.WhitneyUmbrella(0, 11)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildChirp(t *testing.T) {
	one, err := builder.BuildChirp(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(2*math.Pi*0.02), one[0], 1e-12)

	a, err := builder.BuildChirp(64, 3, builder.WithNoise(0.1))
	require.NoError(t, err)
	b, err := builder.BuildChirp(64, 3, builder.WithNoise(0.1))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	trend, err := builder.BuildChirp(3, 0, builder.WithAmplitude(1e-9), builder.WithTrend(2))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, trend[2], 1e-6)

	_, err = builder.BuildChirp(0, 0)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildPriceSeries(t *testing.T) {
	p, err := builder.BuildPriceSeries(30, 7)
	require.NoError(t, err)
	require.Equal(t, 30, p.Len())
	assert.Equal(t, 100.0, p.Open[0])

	for d := 0; d < p.Len(); d++ {
		lo := math.Min(p.Open[d], p.Close[d])
		hi := math.Max(p.Open[d], p.Close[d])
		assert.LessOrEqual(t, p.Low[d], lo)
		assert.GreaterOrEqual(t, p.High[d], hi)
		if d > 0 {
			assert.Equal(t, p.Close[d-1], p.Open[d], "days chain close to open")
		}
	}

	flat, err := builder.BuildPriceSeries(3, 7, builder.WithPriceModel(50, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 50, 50}, flat.Close)

	_, err = builder.BuildPriceSeries(0, 7)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}
