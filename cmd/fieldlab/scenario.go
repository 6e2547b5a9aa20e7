package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldlab/internal/config"
	"github.com/san-kum/fieldlab/internal/distribution"
)

var (
	configFile string
	preset     string
	kind       string
	density    float64
	size       float64
	cellSize   float64
)

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
}

func addDistributionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&kind, "kind", "", "distribution kind (linear, surface, volumetric)")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "charge density")
	cmd.Flags().Float64Var(&size, "size", config.DefaultSize, "length, side or radius")
	cmd.Flags().Float64Var(&cellSize, "cell", config.DefaultCellSize, "grid cell size")
}

// loadScenario resolves the scenario in order default, preset, config file,
// then explicitly set flags.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Lookup("kind") != nil && flags.Changed("kind") {
		k, err := distribution.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		cfg.Distribution.Kind = k
	}
	if flags.Lookup("density") != nil && flags.Changed("density") {
		cfg.Distribution.Density = density
	}
	if flags.Lookup("size") != nil && flags.Changed("size") {
		cfg.Distribution.Size = size
	}
	if flags.Lookup("cell") != nil && flags.Changed("cell") {
		cfg.Grid.CellSize = cellSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"scenario": cfg.Name,
		"kind":     cfg.Distribution.Kind,
		"poles":    len(cfg.Poles),
	}).Debug("scenario resolved")

	return cfg, nil
}
