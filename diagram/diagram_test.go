package diagram_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtopo/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spans(ls ...float64) diagram.Diagram {
	d := make(diagram.Diagram, len(ls))
	for i, l := range ls {
		d[i] = diagram.Pair{Birth: 0, Death: l}
	}
	return d
}

func TestPair_Validate(t *testing.T) {
	assert.NoError(t, diagram.Pair{Birth: 0, Death: math.Inf(1)}.Validate())
	assert.ErrorIs(t, diagram.Pair{Birth: 1, Death: 0}.Validate(), diagram.ErrInvalidPair)
	assert.ErrorIs(t, diagram.Pair{Birth: math.NaN(), Death: 0}.Validate(), diagram.ErrInvalidPair)
	assert.ErrorIs(t, diagram.Pair{Birth: math.Inf(1), Death: math.Inf(1)}.Validate(), diagram.ErrInvalidPair)

	err := diagram.Diagram{{0, 1}, {2, 1}}.Validate()
	assert.ErrorIs(t, err, diagram.ErrInvalidPair)
	assert.Contains(t, err.Error(), "index 1")
}

func TestFilter(t *testing.T) {
	d := diagram.Diagram{{0, 0.005}, {0.1, 0.5}, {0.2, math.Inf(1)}, {0.3, 0.35}}
	got := diagram.Filter(d, diagram.DefaultThreshold)
	assert.Equal(t, diagram.Diagram{{0.1, 0.5}, {0.2, math.Inf(1)}, {0.3, 0.35}}, got)
	assert.Len(t, d, 4, "input untouched")
	assert.Empty(t, diagram.Filter(nil, 0.1))
}

func TestSummarize(t *testing.T) {
	s := diagram.Summarize(diagram.Diagram{{0, 1}, {0, 3}, {1, math.Inf(1)}})
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 1, s.Essential)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.0, s.Std, 1e-12, "population std")
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)

	assert.Equal(t, diagram.Summary{}, diagram.Summarize(nil))
}

func TestTransitions(t *testing.T) {
	d := spans(0.1, 0.5, 0.2, 0.21, 0.19)

	got := diagram.Transitions(d, diagram.DefaultProminence)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, d[1], got[0].Pair)
	assert.InDelta(t, 0.31, got[0].Prominence, 1e-12)

	all := diagram.Transitions(d, 0)
	require.Len(t, all, 2)
	assert.Equal(t, 3, all[1].Index)
	assert.InDelta(t, 0.01, all[1].Prominence, 1e-12)
}

func TestTransitions_EdgesAndPlateaus(t *testing.T) {
	assert.Empty(t, diagram.Transitions(spans(1, 0, 0, 2), 0), "ends are never peaks")
	assert.Empty(t, diagram.Transitions(spans(0, 1, 1), 0), "plateau must fall on both sides")
	assert.Empty(t, diagram.Transitions(nil, 0))

	got := diagram.Transitions(spans(0, 1, 1, 1, 0), 0)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Index, "plateau reported at its middle")

	got = diagram.Transitions(spans(0, 1, 1, 0), 0)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index, "even plateau rounds left")
}

func TestTransitions_SkipsEssential(t *testing.T) {
	d := diagram.Diagram{{0, 0.1}, {0, math.Inf(1)}, {0, 0.5}, {0, 0.2}}
	got := diagram.Transitions(d, 0)
	require.Len(t, got, 1)
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 0.5}, got[0].Pair)
}

func TestSplitAndWeights(t *testing.T) {
	parts := diagram.Split([]diagram.Feature{
		{Dim: 1, Pair: diagram.Pair{Birth: 0.2, Death: 0.4}},
		{Dim: 0, Pair: diagram.Pair{Birth: 0, Death: 1}},
		{Dim: -1, Pair: diagram.Pair{Birth: 0, Death: 1}},
	})
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 1)
	assert.Len(t, parts[1], 1)

	assert.Equal(t, []float64{1, 1, 1}, diagram.UniformWeights(3))
	w := diagram.LifespanWeights(diagram.Diagram{{0, 2}, {0, math.Inf(1)}})
	assert.Equal(t, []float64{2, 1}, w)
}
