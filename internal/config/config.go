// Package config loads gridastar settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
)

// Config holds all gridastar configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig describes generated ground-truth grids.
type GridConfig struct {
	Dim              int     `yaml:"dim"`
	BlockProbability float64 `yaml:"block_probability"`
	Seed             int64   `yaml:"seed"` // 0 = seed from the clock
	File             string  `yaml:"file"` // load this grid instead of generating one
}

// SearchConfig selects the search policy.
type SearchConfig struct {
	Heuristic  string `yaml:"heuristic"`  // euclidean, manhattan, chebyshev
	TieBreak   string `yaml:"tie_break"`  // neutral, higher-g, lower-g
	Direction  string `yaml:"direction"`  // forward, backward
	Visibility string `yaml:"visibility"` // local, adjacent, full
}

// BatchConfig configures experiment runs.
type BatchConfig struct {
	Runs       int      `yaml:"runs"`
	Workers    int      `yaml:"workers"`
	Heuristics []string `yaml:"heuristics"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Dim:              101,
			BlockProbability: 0.3,
		},
		Search: SearchConfig{
			Heuristic:  "manhattan",
			TieBreak:   "higher-g",
			Direction:  "forward",
			Visibility: "local",
		},
		Batch: BatchConfig{
			Runs:       50,
			Workers:    4,
			Heuristics: []string{"manhattan", "euclidean", "chebyshev"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Grid.Dim <= 0 {
		return fmt.Errorf("grid.dim must be positive, got %d", c.Grid.Dim)
	}
	if c.Grid.BlockProbability < 0 || c.Grid.BlockProbability > 1 {
		return fmt.Errorf("grid.block_probability must be in [0,1], got %v", c.Grid.BlockProbability)
	}
	if c.Batch.Runs < 0 {
		return fmt.Errorf("batch.runs must not be negative, got %d", c.Batch.Runs)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got %d", c.Batch.Workers)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.BatchHeuristics(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Policy is the parsed form of SearchConfig.
type Policy struct {
	Heuristic  gridastar.HeuristicKind
	TieBreak   gridastar.TieBreak
	Direction  gridastar.Direction
	Visibility gridastar.Visibility
}

// Policy parses the search section.
func (c *Config) Policy() (Policy, error) {
	var p Policy
	var err error
	if p.Heuristic, err = gridastar.ParseHeuristic(c.Search.Heuristic); err != nil {
		return p, fmt.Errorf("search.heuristic: %w", err)
	}
	if p.TieBreak, err = gridastar.ParseTieBreak(c.Search.TieBreak); err != nil {
		return p, fmt.Errorf("search.tie_break: %w", err)
	}
	if p.Direction, err = gridastar.ParseDirection(c.Search.Direction); err != nil {
		return p, fmt.Errorf("search.direction: %w", err)
	}
	if p.Visibility, err = gridastar.ParseVisibility(c.Search.Visibility); err != nil {
		return p, fmt.Errorf("search.visibility: %w", err)
	}
	return p, nil
}

// BatchHeuristics parses batch.heuristics. An empty list means every metric.
func (c *Config) BatchHeuristics() ([]gridastar.HeuristicKind, error) {
	if len(c.Batch.Heuristics) == 0 {
		return append([]gridastar.HeuristicKind(nil), gridastar.HeuristicKinds...), nil
	}
	kinds := make([]gridastar.HeuristicKind, 0, len(c.Batch.Heuristics))
	for _, name := range c.Batch.Heuristics {
		k, err := gridastar.ParseHeuristic(name)
		if err != nil {
			return nil, fmt.Errorf("batch.heuristics: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
