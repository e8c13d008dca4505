package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultWindowSize(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1280, cfg.WindowWidth())
	assert.Equal(t, 720, cfg.WindowHeight())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"grid_width: 20\nticks_per_second: 12\nseed: 77\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GridWidth)
	assert.Equal(t, 12, cfg.TicksPerSecond)
	assert.Equal(t, uint64(77), cfg.Seed)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().GridHeight, cfg.GridHeight)
	assert.Equal(t, Default().CellSize, cfg.CellSize)
	assert.Equal(t, Default().StatsPath, cfg.StatsPath)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_width: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.GridWidth = 2 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative border", func(c *Config) { c.BorderSize = -1 }},
		{"zero tick rate", func(c *Config) { c.TicksPerSecond = 0 }},
		{"zero initial length", func(c *Config) { c.InitialLength = 0 }},
		{"snake longer than half the board", func(c *Config) { c.InitialLength = c.GridWidth }},
		{"empty stats path", func(c *Config) { c.StatsPath = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
