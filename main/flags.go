package main

import (
	"flag"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/config"
)

// Command-line flags. Flags given explicitly override the settings file.
var (
	// settingsFlag points at an optional JSON settings file.
	settingsFlag = flag.String("settings", "settings.json", "path to a JSON settings file")

	sizeFlag        = flag.Int("size", 128, "interior grid cells per side")
	seedDensityFlag = flag.Bool("seed-density", true, "seed a random density patch at start")
	seedForceFlag   = flag.Bool("seed-force", false, "seed a constant X-velocity patch at start")
	forcePowerFlag  = flag.Float64("force-power", 2.0, "X-velocity of the seeded force patch")

	// diffusionFlag and fidelityFlag are the initial solver options.
	diffusionFlag = flag.Float64("diffusion", 5.0, "diffusion rate")
	fidelityFlag  = flag.Int("fidelity", 20, "relaxation sweeps per solve")

	scaleFlag   = flag.Int("scale", 4, "window pixels per grid cell")
	paletteFlag = flag.String("palette", "sci", "colour palette: sci, viridis, inferno, turbo")

	// gifFlag switches to headless mode and writes an animated GIF.
	gifFlag    = flag.String("gif", "", "write a headless animation to this GIF file instead of opening a window")
	framesFlag = flag.Int("frames", 256, "frames to render in headless mode")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

// applyFlags copies every flag set on the command line into s.
func applyFlags(s *config.Settings, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "size":
			s.Size = *sizeFlag
		case "seed-density":
			s.SeedDensity = *seedDensityFlag
		case "seed-force":
			s.SeedForce = *seedForceFlag
		case "force-power":
			s.ForcePower = *forcePowerFlag
		case "diffusion":
			s.Fluid.DiffusionRate = *diffusionFlag
		case "fidelity":
			s.Fluid.Fidelity = *fidelityFlag
		case "scale":
			s.Scale = *scaleFlag
		case "palette":
			s.Palette = *paletteFlag
		}
	})
}
