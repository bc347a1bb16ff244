// SPDX-License-Identifier: MIT
// Package: lvtopo/config
//
// config.go — configuration tree and defaults.

package config

import (
	"time"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/diagram"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/radius"
)

// Config is the root of a run configuration.
type Config struct {
	Radius     RadiusConfig     `yaml:"radius"`
	Homology   HomologyConfig   `yaml:"homology"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Diagram    DiagramConfig    `yaml:"diagram"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Bottleneck BottleneckConfig `yaml:"bottleneck"`
	Synthetic  SyntheticConfig  `yaml:"synthetic"`
	Log        LogConfig        `yaml:"log"`
}

type RadiusConfig struct {
	Method      string  `yaml:"method" validate:"required,radius_method"`
	Neighbors   int     `yaml:"neighbors" validate:"min=1"`
	ScaleFactor float64 `yaml:"scale_factor" validate:"gt=0"`
}

type HomologyConfig struct {
	Degree     int     `yaml:"degree" validate:"min=0,max=3"`
	Perversity int     `yaml:"perversity" validate:"min=0"`
	Tolerance  float64 `yaml:"tolerance" validate:"gt=0,lt=1"`
}

// EmbeddingConfig drives delay embedding of scalar series.
type EmbeddingConfig struct {
	Dim       int  `yaml:"dim" validate:"min=1"`
	Delay     int  `yaml:"delay" validate:"min=1"`
	Normalize bool `yaml:"normalize"`
}

type DiagramConfig struct {
	Threshold  float64 `yaml:"threshold" validate:"min=0"`
	Prominence float64 `yaml:"prominence" validate:"min=0"`
}

type PipelineConfig struct {
	// Workers of 0 selects GOMAXPROCS.
	Workers     int           `yaml:"workers" validate:"min=0,max=1024"`
	UnitTimeout time.Duration `yaml:"unit_timeout" validate:"min=0"`
	// Metrics exposes Prometheus metrics on this address when set.
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

type BottleneckConfig struct {
	// Padding defaults to strict: under zero fill, diagrams with two or more
	// pairs can route every pair through a free padding cell and compare at 0.
	Padding string `yaml:"padding" validate:"omitempty,oneof=zero strict"`
	// Weights selects per-point weights: "uniform" or "lifespan".
	Weights string `yaml:"weights" validate:"required,oneof=uniform lifespan"`
	// Dim is the homology dimension compared.
	Dim int `yaml:"dim" validate:"min=0"`
}

// SyntheticConfig describes the framework × complexity experiment grid.
type SyntheticConfig struct {
	Frameworks   []string `yaml:"frameworks" validate:"required,min=1,dive,framework"`
	Complexities []int    `yaml:"complexities" validate:"required,min=1,dive,min=0"`
	Points       int      `yaml:"points" validate:"min=2,max=5000"`
	Dim          int      `yaml:"dim" validate:"min=1,max=64"`
	Seed         int64    `yaml:"seed"`
	Normalize    bool     `yaml:"normalize"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when a key is absent.
func Default() *Config {
	ropts := radius.DefaultOptions()

	frameworks := make([]string, 0, len(builder.Frameworks()))
	for _, f := range builder.Frameworks() {
		frameworks = append(frameworks, string(f))
	}

	return &Config{
		Radius: RadiusConfig{
			Method:      string(ropts.Method),
			Neighbors:   ropts.Neighbors,
			ScaleFactor: ropts.ScaleFactor,
		},
		Homology: HomologyConfig{
			Degree:     3,
			Perversity: 1,
			Tolerance:  homology.DefaultTolerance,
		},
		Embedding: EmbeddingConfig{Dim: 3, Delay: 1, Normalize: true},
		Diagram: DiagramConfig{
			Threshold:  diagram.DefaultThreshold,
			Prominence: diagram.DefaultProminence,
		},
		Pipeline: PipelineConfig{
			UnitTimeout: 30 * time.Second,
		},
		Bottleneck: BottleneckConfig{Padding: "strict", Weights: "lifespan"},
		Synthetic: SyntheticConfig{
			Frameworks:   frameworks,
			Complexities: []int{1, 2, 3, 4},
			Points:       100,
			Dim:          3,
			Seed:         42,
			Normalize:    true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}
