// Package config loads the host settings: grid construction parameters,
// window presentation and the initial solver options.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/render"
)

// Grid sizes reachable by Resized.
const (
	MinSize = 16
	MaxSize = 512
)

type Settings struct {
	Size        int           `json:"size"`
	SeedDensity bool          `json:"seedDensity"`
	SeedForce   bool          `json:"seedForce"`
	ForcePower  float64       `json:"forcePower"`
	Scale       int           `json:"scale"`
	Palette     string        `json:"palette"`
	Fluid       fluid.Options `json:"fluid"`
}

func Default() Settings {
	return Settings{
		Size:        128,
		SeedDensity: true,
		ForcePower:  2.0,
		Scale:       4,
		Palette:     "sci",
		Fluid:       fluid.DefaultOptions(),
	}
}

// Load decodes the JSON file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No %s found, using defaults", path)
			return s, nil
		}
		return s, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return s, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Size < 1 {
		return fmt.Errorf("grid size must be at least 1, got %d", s.Size)
	}
	if s.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", s.Scale)
	}
	if _, err := render.NewPalette(s.Palette); err != nil {
		return err
	}
	return s.Fluid.Validate()
}

// Resized returns s with Size doubled when grow is set and halved otherwise.
// A step never crosses MinSize or MaxSize, and never moves Size the wrong
// way when it already lies outside them.
func (s Settings) Resized(grow bool) Settings {
	if grow {
		s.Size = min(s.Size*2, max(s.Size, MaxSize))
	} else {
		s.Size = max(s.Size/2, min(s.Size, MinSize))
	}
	return s
}

// NewFluid builds the grid described by s. s must be valid.
func (s Settings) NewFluid() (*fluid.Fluid, error) {
	f := fluid.New(s.Size, fluid.Seed{
		Density:    s.SeedDensity,
		Force:      s.SeedForce,
		ForcePower: s.ForcePower,
	})
	if err := f.Configure(s.Fluid); err != nil {
		return nil, fmt.Errorf("configure fluid: %w", err)
	}
	return f, nil
}
