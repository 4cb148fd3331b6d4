package fluid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOptions is wrapped by every error returned from Options.Validate.
var ErrInvalidOptions = errors.New("invalid fluid options")

// Vec2 is a two component vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options are the runtime solver parameters. Changes apply from the next
// Update.
type Options struct {
	DiffusionRate float64 `json:"diffusionRate"`
	// Fidelity is the Gauss-Seidel sweep count for diffusion and projection.
	Fidelity int `json:"fidelity"`
	// Gravity is stored but not applied by any step.
	Gravity Vec2 `json:"gravity"`
}

func DefaultOptions() Options {
	return Options{
		DiffusionRate: 5.0,
		Fidelity:      20,
	}
}

func (o Options) Validate() error {
	if o.Fidelity < 1 {
		return fmt.Errorf("%w: fidelity must be at least 1, got %d", ErrInvalidOptions, o.Fidelity)
	}
	if math.IsNaN(o.DiffusionRate) || math.IsInf(o.DiffusionRate, 0) || o.DiffusionRate < 0 {
		return fmt.Errorf("%w: diffusion rate must be finite and non-negative, got %v", ErrInvalidOptions, o.DiffusionRate)
	}
	if math.IsNaN(o.Gravity.X) || math.IsNaN(o.Gravity.Y) {
		return fmt.Errorf("%w: gravity must not be NaN", ErrInvalidOptions)
	}
	return nil
}

// Configure applies o after validating it. The grid is left untouched when
// o is invalid.
func (f *Fluid) Configure(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	f.diffusionRate = o.DiffusionRate
	f.fidelity = o.Fidelity
	f.gravity = o.Gravity
	return nil
}

// Options returns the current solver parameters.
func (f *Fluid) Options() Options {
	return Options{
		DiffusionRate: f.diffusionRate,
		Fidelity:      f.fidelity,
		Gravity:       f.gravity,
	}
}

// SetDiffusionRate sets the diffusion rate. It panics if rate is negative,
// NaN or infinite.
func (f *Fluid) SetDiffusionRate(rate float64) {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		panic(fmt.Sprintf("invalid diffusion rate: %v", rate))
	}
	f.diffusionRate = rate
}

// SetFidelity sets the relaxation sweep count. It panics if iterations is
// less than 1.
func (f *Fluid) SetFidelity(iterations int) {
	if iterations < 1 {
		panic(fmt.Sprintf("invalid fidelity: %d", iterations))
	}
	f.fidelity = iterations
}

func (f *Fluid) SetGravity(g Vec2) { f.gravity = g }

func (f *Fluid) Gravity() Vec2 { return f.gravity }
