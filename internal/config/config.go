package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bench   BenchConfig   `toml:"bench" yaml:"bench"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type BenchConfig struct {
	CellSize    float64  `toml:"cell_size" yaml:"cell_size"`
	MinEntities int      `toml:"min_entities" yaml:"min_entities"` // rounded up to a square lattice
	Radius      float64  `toml:"radius" yaml:"radius"`
	Spacing     float64  `toml:"spacing" yaml:"spacing"`
	Ticks       int      `toml:"ticks" yaml:"ticks"`
	Resolve     bool     `toml:"resolve" yaml:"resolve"` // push overlapping circles apart as they are found
	Strategies  []string `toml:"strategies" yaml:"strategies"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a run cannot work without
func (c *Config) Validate() error {
	b := c.Bench
	switch {
	case !(b.CellSize > 0):
		return fmt.Errorf("bench.cell_size must be positive, got %v", b.CellSize)
	case b.MinEntities <= 0:
		return fmt.Errorf("bench.min_entities must be positive, got %d", b.MinEntities)
	case !(b.Radius > 0):
		return fmt.Errorf("bench.radius must be positive, got %v", b.Radius)
	case !(b.Spacing > 0):
		return fmt.Errorf("bench.spacing must be positive, got %v", b.Spacing)
	case b.Ticks <= 0:
		return fmt.Errorf("bench.ticks must be positive, got %d", b.Ticks)
	case len(b.Strategies) == 0:
		return errors.New("bench.strategies is empty")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Default is a 5000+ circle benchmark: radius 12, 9.6 units apart, 16 unit cells.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			CellSize:    16,
			MinEntities: 5000,
			Radius:      12,
			Spacing:     9.6,
			Ticks:       1,
			Resolve:     true,
			Strategies:  []string{"cell_neighbours", "grid"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
