package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/config"
	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/render"
)

const (
	gifDelay   = 2 // hundredths of a second
	jetForce   = 40.0
	jetDensity = 80.0
	jetWobble  = 16
	jetInset   = 4
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run must not exit the process: the CPU profile is stopped by a deferred
// call.
func run() error {
	settings, err := config.Load(*settingsFlag)
	if err != nil {
		return err
	}
	applyFlags(&settings, flag.CommandLine)
	if err := settings.Validate(); err != nil {
		return err
	}
	log.Printf("Grid %dx%d, diffusion %.1f, fidelity %d, palette %s",
		settings.Size, settings.Size, settings.Fluid.DiffusionRate, settings.Fluid.Fidelity, settings.Palette)

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return err
		}
		defer stop()
	}

	if *gifFlag != "" {
		return runHeadless(settings, *gifFlag, *framesFlag)
	}

	game, err := NewGame(settings)
	if err != nil {
		return err
	}
	setWindowSize(settings)
	ebiten.SetWindowTitle("FluidSim")
	return ebiten.RunGame(game)
}

func setWindowSize(s config.Settings) {
	side := s.Size * s.Scale
	ebiten.SetWindowSize(side, side)
}

// jet drives a wobbling upward stream from the bottom centre of the grid.
func jet(f *fluid.Fluid, frame int) {
	n := f.GridSize()
	sway := frame%jetWobble - jetWobble/2
	f.Inject(n/2, n-jetInset, float64(sway), -jetForce, jetDensity)
}

func runHeadless(s config.Settings, path string, frames int) error {
	p, err := render.NewPalette(s.Palette)
	if err != nil {
		return err
	}
	f, err := s.NewFluid()
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := render.ExportGIF(out, f, p, frames, gifDelay, jet); err != nil {
		return err
	}
	return out.Close()
}
