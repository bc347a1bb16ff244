package config_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/bottleneck"
	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/config"
	"github.com/katalvlaran/lvtopo/radius"
)

func TestParse_EmptyYieldsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, radius.DefaultOptions(), cfg.RadiusOptions())
	assert.Len(t, cfg.Frameworks(), len(builder.Frameworks()))
	assert.Equal(t, bottleneck.PaddingStrict, cfg.Padding())
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "synth.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "density", cfg.Radius.Method)
	assert.Equal(t, 1.2, cfg.Radius.ScaleFactor)
	// Absent keys keep their defaults.
	assert.Equal(t, radius.DefaultNeighbors, cfg.Radius.Neighbors)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.UnitTimeout)
	assert.Equal(t, bottleneck.PaddingStrict, cfg.Padding())
	assert.Equal(t, []builder.Framework{builder.Singular, builder.Fractal, builder.Control}, cfg.Frameworks())
	assert.Equal(t, []int{1, 2}, cfg.Synthetic.Complexities)

	p := cfg.PipelineParams()
	assert.Equal(t, radius.Density, p.Radius.Method)
	assert.Equal(t, 2, p.Degree)
	assert.Equal(t, 0, p.Perversity)
	assert.Len(t, cfg.RunnerOptions(), 4)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "radius:\n  methd: knn\n",
		"unknown method":    "radius:\n  method: geodesic\n",
		"zero neighbors":    "radius:\n  neighbors: 0\n",
		"zero scale":        "radius:\n  scale_factor: 0\n",
		"negative degree":   "homology:\n  degree: -1\n",
		"tolerance too big": "homology:\n  tolerance: 2\n",
		"bad padding":       "bottleneck:\n  padding: loose\n",
		"bad weights":       "bottleneck:\n  weights: volume\n",
		"bad framework":     "synthetic:\n  frameworks: [spiral]\n",
		"no complexities":   "synthetic:\n  complexities: []\n",
		"deep fractal":      "synthetic:\n  frameworks: [fractal]\n  complexities: [9]\n",
		"bad level":         "log:\n  level: loud\n",
		"bad duration":      "pipeline:\n  unit_timeout: soon\n",
		"bad metrics addr":  "pipeline:\n  metrics_addr: nowhere\n",
		"malformed yaml":    "radius: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_DeepComplexityAllowedWithoutRefinement(t *testing.T) {
	cfg, err := config.Parse([]byte("synthetic:\n  frameworks: [control]\n  complexities: [9]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{9}, cfg.Synthetic.Complexities)
}

func TestParse_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LVTOPO_WORKERS", "3")
	t.Setenv("LVTOPO_UNIT_TIMEOUT", "250ms")
	t.Setenv("LVTOPO_SEED", "11")

	cfg, err := config.Parse([]byte("pipeline:\n  workers: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Pipeline.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.Pipeline.UnitTimeout)
	assert.Equal(t, int64(11), cfg.Synthetic.Seed)

	t.Setenv("LVTOPO_WORKERS", "many")
	_, err = config.Parse(nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_Nil(t *testing.T) {
	var cfg *config.Config
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestLogger_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "unit", "square")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "square", rec["unit"])
}
