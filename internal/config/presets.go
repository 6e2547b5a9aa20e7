package config

import (
	"sort"

	"github.com/san-kum/fieldlab/internal/distribution"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/gauss"
)

var grid = GridConfig{Width: DefaultGridWidth, Height: DefaultGridHeight, CellSize: DefaultCellSize}

var poleGrid = GridConfig{Width: 700, Height: 500, CellSize: 12}

var sphere = gauss.Surface{Center: field.V(300, 200), Radius: 0.1, Charge: 1e-6}

var Presets = map[string]*Config{
	"linear": {
		Name:         "linear",
		Distribution: distribution.NewLinear(1, 100),
		Gauss:        sphere,
		Grid:         grid,
		Sensor:       field.V(300, 220),
	},
	"surface": {
		Name:         "surface",
		Distribution: distribution.NewSurface(2, 120),
		Gauss:        sphere,
		Grid:         grid,
		Sensor:       field.V(420, 200),
	},
	"volumetric": {
		Name:         "volumetric",
		Distribution: distribution.NewVolumetric(3, 60),
		Gauss:        sphere,
		Grid:         grid,
		Sensor:       field.V(300, 300),
	},
	"sphere": {
		Name:         "sphere",
		Distribution: distribution.NewVolumetric(1, 100),
		Gauss:        gauss.Surface{Center: field.V(300, 200), Radius: 100, Charge: 1e-3},
		Grid:         GridConfig{Width: 600, Height: 400, CellSize: 20},
		Sensor:       field.V(350, 200),
	},
	"dipole": {
		Name:         "dipole",
		Distribution: distribution.NewLinear(1, 100),
		Gauss:        sphere,
		Grid:         poleGrid,
		Poles: []PoleConfig{
			{X: 250, Y: 250, Charge: 1},
			{X: 450, Y: 250, Charge: -1},
		},
		Sensor: field.V(350, 200),
	},
	"quadrupole": {
		Name:         "quadrupole",
		Distribution: distribution.NewLinear(1, 100),
		Gauss:        sphere,
		Grid:         poleGrid,
		Poles: []PoleConfig{
			{X: 250, Y: 150, Charge: 1},
			{X: 450, Y: 150, Charge: -1},
			{X: 450, Y: 350, Charge: 1},
			{X: 250, Y: 350, Charge: -1},
		},
		Sensor: field.V(350, 250),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Poles = append([]PoleConfig(nil), p.Poles...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
