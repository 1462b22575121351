// Copyright 2025 lanekit Authors
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

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the harness settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Sizes are the element counts of the synthetic minmax inputs.
	Sizes []int `yaml:"sizes"`
	// Trials is the number of timed runs averaged per measurement.
	Trials int `yaml:"trials"`
	// Warmup is the number of untimed runs before measuring.
	Warmup int `yaml:"warmup"`
	// Seed makes the synthetic data reproducible.
	Seed uint64 `yaml:"seed"`
	// Workers is the worker pool size for parallel kernels; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Parts is the number of ranges the parallel histogram splits the input
	// into; 0 means one per worker.
	Parts int `yaml:"parts"`
	// Needles are the search terms.
	Needles []string `yaml:"needles"`
	// Text is a text dataset for histogram and search. Synthetic text is
	// generated when empty.
	Text string `yaml:"text"`
	// TextSize is the size in bytes of the synthetic text.
	TextSize int `yaml:"text_size"`
	// Image is the image for luma. A synthetic gradient is used when empty.
	Image string `yaml:"image"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Sizes:    []int{1_000, 10_000, 100_000, 1_000_000, 10_000_000},
		Trials:   100,
		Warmup:   3,
		Seed:     1,
		Needles:  []string{"Path of Exile 2", "AVX-512", "Bannana"},
		TextSize: 64 << 20,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Fields missing from the
// file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case len(c.Sizes) == 0:
		return errors.New("config: sizes must not be empty")
	case c.Trials < 1:
		return errors.Errorf("config: trials must be positive, got %d", c.Trials)
	case c.Warmup < 0:
		return errors.Errorf("config: warmup must not be negative, got %d", c.Warmup)
	case c.Workers < 0:
		return errors.Errorf("config: workers must not be negative, got %d", c.Workers)
	case c.Parts < 0:
		return errors.Errorf("config: parts must not be negative, got %d", c.Parts)
	case c.TextSize < 0:
		return errors.Errorf("config: text_size must not be negative, got %d", c.TextSize)
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return errors.Errorf("config: sizes must be positive, got %d", n)
		}
	}
	return nil
}
