package radius_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/radius"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineCloud(t *testing.T) *cloud.PointCloud {
	t.Helper()
	pc, err := cloud.New([][]float64{{0}, {1}, {3}})
	require.NoError(t, err)
	return pc
}

func TestSelect_KNN(t *testing.T) {
	// Second-nearest including self is the nearest other point:
	// 0→1 (1), 1→0 (1), 3→1 (2); mean 4/3.
	opts := radius.Options{Method: radius.KNN, Neighbors: 2, ScaleFactor: 1.5}
	r, err := radius.Select(lineCloud(t), opts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r, 1e-12)
}

func TestSelect_KNNClampsNeighbors(t *testing.T) {
	// k beyond N reads the farthest point: 3, 2, 3 → mean 8/3.
	opts := radius.Options{Method: radius.KNN, Neighbors: 10, ScaleFactor: 1}
	r, err := radius.Select(lineCloud(t), opts)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, r, 1e-12)
}

func TestSelect_Density(t *testing.T) {
	// Off-diagonal sum 2·(1+3+2)=12 over 9 cells.
	opts := radius.Options{Method: radius.Density, Neighbors: 1, ScaleFactor: 1.5}
	r, err := radius.Select(lineCloud(t), opts)
	require.NoError(t, err)
	assert.InDelta(t, 12.0/9.0*1.5, r, 1e-12)
}

func TestSelect_Defaults(t *testing.T) {
	opts := radius.DefaultOptions()
	assert.Equal(t, radius.KNN, opts.Method)
	assert.Equal(t, 5, opts.Neighbors)
	assert.Equal(t, 1.5, opts.ScaleFactor)

	pc, err := cloud.New([][]float64{{2, 2}})
	require.NoError(t, err)
	r, err := radius.Select(pc, opts)
	require.NoError(t, err)
	assert.Zero(t, r, "single point has no neighbour spread")
}

func TestSelect_Errors(t *testing.T) {
	_, err := radius.Select(lineCloud(t), radius.Options{Method: "ball-tree", Neighbors: 5, ScaleFactor: 1})
	assert.ErrorIs(t, err, radius.ErrUnknownMethod, "no silent fallback")

	_, err = radius.Select(lineCloud(t), radius.Options{Method: radius.KNN, Neighbors: 0, ScaleFactor: 1})
	assert.ErrorIs(t, err, radius.ErrBadOptions)

	_, err = radius.Select(lineCloud(t), radius.Options{Method: radius.KNN, Neighbors: 2, ScaleFactor: 0})
	assert.ErrorIs(t, err, radius.ErrBadOptions)

	empty, err := cloud.New(nil)
	require.NoError(t, err)
	_, err = radius.Select(empty, radius.DefaultOptions())
	assert.ErrorIs(t, err, radius.ErrEmptyCloud)
}

func TestParseMethod(t *testing.T) {
	m, err := radius.ParseMethod("density")
	require.NoError(t, err)
	assert.Equal(t, radius.Density, m)

	_, err = radius.ParseMethod("")
	assert.ErrorIs(t, err, radius.ErrUnknownMethod)
}
