// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/framesight/pkg/emit"
	"github.com/NVIDIA/framesight/pkg/errors"
	"github.com/NVIDIA/framesight/pkg/level"
)

// Config holds the emission policy and pipeline configuration.
type Config struct {
	// LogLevel is the host logger verbosity (debug, info, warn, error).
	LogLevel string `yaml:"logLevel"`

	// Filter is the active filter level for diagnostic records.
	Filter string `yaml:"filter"`

	// SampleRates overrides the default per-level sampling rates.
	// Keys are level names; values are rates in [0,1].
	SampleRates map[string]float64 `yaml:"sampleRates"`

	// RateLimit caps emission at this many records per second.
	// Zero disables the cap.
	RateLimit float64 `yaml:"rateLimit"`

	// RateBurst is the token-bucket burst size used with RateLimit.
	RateBurst int `yaml:"rateBurst"`

	// DisabledProviders lists provider names to exclude from capture
	// cycles at startup.
	DisabledProviders []string `yaml:"disabledProviders"`

	// Output selects the serialization format for snapshots and stats
	// (json or yaml) and an optional file destination.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig selects the snapshot/stats output destination.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// New returns a Config with sensible defaults: info host logging, dev
// filter (everything passes the filter gate), default sampling, no
// volume cap, JSON to stdout.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Filter:      level.Dev.String(),
		SampleRates: map[string]float64{},
		RateBurst:   1,
		Output:      OutputConfig{Format: "json"},
	}
}

// Load reads a YAML config file and applies environment overrides.
// An empty path returns the defaults (plus env overrides); a missing or
// malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "reading config file", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "parsing config file", err)
		}
	}

	// Environment overrides, teacher-style: set only when present.
	if v := os.Getenv("FRAMESIGHT_FILTER"); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv("FRAMESIGHT_RATE_LIMIT"); v != "" {
		var limit float64
		if _, err := fmt.Sscanf(v, "%g", &limit); err == nil && limit >= 0 {
			cfg.RateLimit = limit
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks rate bounds. Level strings are not validated here:
// unknown levels normalize downstream rather than failing the host.
func (c *Config) Validate() error {
	for name, r := range c.SampleRates {
		if r < 0 || r > 1 {
			return errors.New(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("sample rate for %q must be in [0,1], got %g", name, r))
		}
	}
	if c.RateLimit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rateLimit cannot be negative")
	}
	return nil
}

// EmitterOptions translates the config into emitter options.
func (c *Config) EmitterOptions() []emit.Option {
	opts := []emit.Option{
		emit.WithFilter(level.Parse(c.Filter)),
	}
	for name, r := range c.SampleRates {
		opts = append(opts, emit.WithSampleRate(level.Parse(name), r))
	}
	if c.RateLimit > 0 {
		burst := c.RateBurst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, emit.WithRateLimit(c.RateLimit, burst))
	}
	return opts
}
