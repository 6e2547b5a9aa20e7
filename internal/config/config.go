package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/distribution"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/gauss"
)

const (
	DefaultGridWidth  = 600.0
	DefaultGridHeight = 400.0
	DefaultCellSize   = 25.0
	DefaultDensity    = 1.0
	DefaultSize       = 100.0
	DefaultPoleRadius = 15.0
)

// Config is one scenario: what the learner placed and how to sample it.
type Config struct {
	Name         string              `yaml:"name"`
	Distribution distribution.Params `yaml:"distribution"`
	Gauss        gauss.Surface       `yaml:"gauss"`
	Poles        []PoleConfig        `yaml:"poles"`
	Grid         GridConfig          `yaml:"grid"`
	Sensor       field.Vec2          `yaml:"sensor"`
}

type PoleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Charge float64 `yaml:"charge"`
	Radius float64 `yaml:"radius,omitempty"`
}

type GridConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:         "default",
		Distribution: distribution.NewLinear(DefaultDensity, DefaultSize),
		Gauss: gauss.Surface{
			Center: distribution.Center,
			Radius: 0.1,
			Charge: 1e-6,
		},
		Grid: GridConfig{
			Width:    DefaultGridWidth,
			Height:   DefaultGridHeight,
			CellSize: DefaultCellSize,
		},
		Sensor: field.V(300, 220),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "name": cfg.Name}).Debug("scenario loaded")
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the boundary parameters the calculators do not guard.
func (c *Config) Validate() error {
	if err := c.Distribution.Validate(); err != nil {
		return fmt.Errorf("distribution: %w", err)
	}
	if err := c.Gauss.Validate(); err != nil {
		return fmt.Errorf("gauss: %w", err)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid: %w", field.ErrEmptyGrid)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid: %w", field.Invalid("cell_size", c.Grid.CellSize))
	}
	for i, p := range c.Poles {
		if p.Radius < 0 {
			return fmt.Errorf("pole %d: %w", i, field.Invalid("radius", p.Radius))
		}
	}
	return nil
}

// GetPoles builds pole snapshots for the configured charges. Ids are fresh
// for every call.
func (c *Config) GetPoles() []charge.Pole {
	poles := make([]charge.Pole, len(c.Poles))
	for i, p := range c.Poles {
		r := p.Radius
		if r == 0 {
			r = DefaultPoleRadius
		}
		poles[i] = charge.New(p.X, p.Y, p.Charge, r)
	}
	return poles
}
