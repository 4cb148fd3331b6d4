package fluid

import (
	"fmt"
	"math/rand/v2"
)

// Fluid is a square Eulerian smoke grid advanced with the Stable Fluids
// scheme. Every field is stored with a one cell ghost border, so a grid of
// N interior cells per side holds (N+2)*(N+2) values per field.
//
// A Fluid is not safe for concurrent use. Inject stimuli, call Update, then
// read the fields, in that order.
type Fluid struct {
	n        int // interior cells per side
	numCells int

	u, v, dens             []float64 // persistent state
	uPrev, vPrev, densPrev []float64 // ping-pong slots
	srcU, srcV, srcDens    []float64 // pending injections
	p, div                 []float64 // projection scratch

	diffusionRate float64
	fidelity      int
	gravity       Vec2
}

// Seed selects the optional initial patterns applied by New.
type Seed struct {
	// Density fills the central 0.2N..0.8N patch with density in [0, 0.5].
	Density bool
	// Force sets X-velocity to ForcePower over the 0.3N..0.4N patch.
	Force      bool
	ForcePower float64
	// Rand is used for the density patch. A nil Rand uses the global source.
	Rand *rand.Rand
}

// New allocates a grid with size interior cells per side and applies seed.
// It panics if size is less than 1.
func New(size int, seed Seed) *Fluid {
	if size < 1 {
		panic(fmt.Sprintf("invalid grid size: %d", size))
	}
	numCells := (size + 2) * (size + 2)
	opts := DefaultOptions()
	f := &Fluid{
		n:        size,
		numCells: numCells,

		u:        make([]float64, numCells),
		v:        make([]float64, numCells),
		dens:     make([]float64, numCells),
		uPrev:    make([]float64, numCells),
		vPrev:    make([]float64, numCells),
		densPrev: make([]float64, numCells),
		srcU:     make([]float64, numCells),
		srcV:     make([]float64, numCells),
		srcDens:  make([]float64, numCells),
		p:        make([]float64, numCells),
		div:      make([]float64, numCells),

		diffusionRate: opts.DiffusionRate,
		fidelity:      opts.Fidelity,
		gravity:       opts.Gravity,
	}
	f.seed(seed)
	return f
}

func (f *Fluid) seed(s Seed) {
	n := float64(f.n)
	random := rand.Float64
	if s.Rand != nil {
		random = s.Rand.Float64
	}
	for i := 1; i <= f.n; i++ {
		x := float64(i)
		for j := 1; j <= f.n; j++ {
			y := float64(j)
			if s.Density && x > 0.2*n && x < 0.8*n && y > 0.2*n && y < 0.8*n {
				f.dens[f.ix(i, j)] = random() * 0.5
			}
			if s.Force && x > 0.3*n && x < 0.4*n && y > 0.3*n && y < 0.4*n {
				f.u[f.ix(i, j)] = s.ForcePower
			}
		}
	}
}

// GridSize returns the number of interior cells per side.
func (f *Fluid) GridSize() int { return f.n }

func (f *Fluid) ix(i, j int) int { return i*(f.n+2) + j }

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}

func swap(a, b *[]float64) { *a, *b = *b, *a }

// Update advances the simulation by dt seconds: velocity first, then density
// transported along the velocity already advanced for this frame.
func (f *Fluid) Update(dt float64) {
	f.updateVelocity(dt)
	f.updateDensity(dt)
}

func (f *Fluid) updateVelocity(dt float64) {
	f.addSource(f.u, f.srcU, dt)
	f.addSource(f.v, f.srcV, dt)

	f.diffuse(VelocityX, f.uPrev, f.u, dt)
	f.diffuse(VelocityY, f.vPrev, f.v, dt)
	swap(&f.u, &f.uPrev)
	swap(&f.v, &f.vPrev)

	f.project(f.u, f.v, f.p, f.div)

	f.advect(VelocityX, f.uPrev, f.u, f.u, f.v, dt)
	f.advect(VelocityY, f.vPrev, f.v, f.u, f.v, dt)
	swap(&f.u, &f.uPrev)
	swap(&f.v, &f.vPrev)

	f.project(f.u, f.v, f.p, f.div)
}

func (f *Fluid) updateDensity(dt float64) {
	f.addSource(f.dens, f.srcDens, dt)

	f.diffuse(Scalar, f.densPrev, f.dens, dt)
	swap(&f.dens, &f.densPrev)

	f.advect(Scalar, f.densPrev, f.dens, f.u, f.v, dt)
	swap(&f.dens, &f.densPrev)
}
