package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the game. Fields absent from the YAML file
// keep their defaults.
type Config struct {
	GridWidth      int    `yaml:"grid_width"`
	GridHeight     int    `yaml:"grid_height"`
	CellSize       int    `yaml:"cell_size"`
	BorderSize     int    `yaml:"border_size"`
	TicksPerSecond int    `yaml:"ticks_per_second"`
	InitialLength  int    `yaml:"initial_length"`
	Seed           uint64 `yaml:"seed"`
	StatsPath      string `yaml:"stats_path"`
}

// Default returns the stock configuration: a 32x18 board of 38px cells with a
// 2px border, which works out to a 1280x720 window.
func Default() Config {
	return Config{
		GridWidth:      32,
		GridHeight:     18,
		CellSize:       38,
		BorderSize:     2,
		TicksPerSecond: 8,
		InitialLength:  3,
		Seed:           0, // 0 means seed from the clock
		StatsPath:      "data/gamestats.json",
	}
}

// Load reads the YAML file at path and overlays it on the defaults. A missing
// file is not an error; the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run on.
func (c Config) Validate() error {
	if c.GridWidth < 4 || c.GridHeight < 4 {
		return fmt.Errorf("grid %dx%d is too small, need at least 4x4", c.GridWidth, c.GridHeight)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	}
	if c.BorderSize < 0 {
		return fmt.Errorf("border size %d must not be negative", c.BorderSize)
	}
	if c.TicksPerSecond < 1 {
		return fmt.Errorf("ticks per second %d must be positive", c.TicksPerSecond)
	}
	if c.InitialLength < 1 || c.InitialLength > c.GridWidth/2 {
		return fmt.Errorf("initial length %d must be between 1 and half the grid width", c.InitialLength)
	}
	if c.StatsPath == "" {
		return fmt.Errorf("stats path must not be empty")
	}
	return nil
}

// WindowWidth returns the fixed window width in pixels: one cell plus one
// border per column.
func (c Config) WindowWidth() int {
	return c.GridWidth * (c.CellSize + c.BorderSize)
}

// WindowHeight returns the fixed window height in pixels.
func (c Config) WindowHeight() int {
	return c.GridHeight * (c.CellSize + c.BorderSize)
}
