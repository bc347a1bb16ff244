// SPDX-License-Identifier: MIT
// Package: lvtopo/config
//
// load.go — YAML decoding and environment overrides.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const envPrefix = "LVTOPO_"

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, errors.Join(ErrInvalidConfig, err))
	}
	return Parse(data)
}

// Parse decodes data over Default, applies environment overrides and
// validates. Empty input yields the validated defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", errors.Join(ErrInvalidConfig, err))
	}

	if err := applyEnvironment(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironment overlays LVTOPO_* variables. lookup is os.LookupEnv
// outside tests.
func applyEnvironment(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("WORKERS", err)
		}
		cfg.Pipeline.Workers = n
	}
	if v, ok := lookup(envPrefix + "UNIT_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("UNIT_TIMEOUT", err)
		}
		cfg.Pipeline.UnitTimeout = d
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError("SEED", err)
		}
		cfg.Synthetic.Seed = n
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(envPrefix + "METRICS_ADDR"); ok {
		cfg.Pipeline.MetricsAddr = v
	}
	return nil
}

func envError(name string, err error) error {
	return fmt.Errorf("config: %s%s: %w", envPrefix, name, errors.Join(ErrInvalidConfig, err))
}
