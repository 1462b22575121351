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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lanebench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1_000, 10_000, 100_000, 1_000_000, 10_000_000}, cfg.Sizes)
	assert.Equal(t, 100, cfg.Trials)
	assert.Equal(t, 3, cfg.Warmup)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
sizes: [10, 20]
trials: 5
workers: 2
needles:
  - foo
  - bar baz
text_size: 4096
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, 5, cfg.Trials)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"foo", "bar baz"}, cfg.Needles)
	assert.Equal(t, 4096, cfg.TextSize)
	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.Warmup)
	assert.Equal(t, uint64(1), cfg.Seed)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")

	_, err = LoadConfig(writeConfig(t, "trials: [1"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = LoadConfig(writeConfig(t, "trials: 0"))
	assert.ErrorContains(t, err, "trials must be positive")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"no sizes", func(c *Config) { c.Sizes = nil }, "sizes must not be empty"},
		{"zero size", func(c *Config) { c.Sizes = []int{10, 0} }, "sizes must be positive"},
		{"negative warmup", func(c *Config) { c.Warmup = -1 }, "warmup must not be negative"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers must not be negative"},
		{"negative parts", func(c *Config) { c.Parts = -1 }, "parts must not be negative"},
		{"negative text size", func(c *Config) { c.TextSize = -1 }, "text_size must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
