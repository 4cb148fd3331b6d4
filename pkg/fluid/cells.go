package fluid

import "fmt"

func (f *Fluid) checkCell(i, j int) {
	if i < 0 || i > f.n+1 {
		panic(fmt.Sprintf("invalid x-index: %d", i))
	}
	if j < 0 || j > f.n+1 {
		panic(fmt.Sprintf("invalid y-index: %d", j))
	}
}

// SetVelocity overwrites the velocity of cell (i, j). Ghost cells are
// accepted but are recomputed by the next step that reads the field.
func (f *Fluid) SetVelocity(i, j int, u, v float64) {
	f.checkCell(i, j)
	cell := f.ix(i, j)
	f.u[cell] = u
	f.v[cell] = v
}

// SetDensity overwrites the density of cell (i, j).
func (f *Fluid) SetDensity(i, j int, density float64) {
	f.checkCell(i, j)
	f.dens[f.ix(i, j)] = density
}

// Reset zeroes every field, including pending sources. Options are kept.
func (f *Fluid) Reset() {
	for _, field := range [][]float64{
		f.u, f.v, f.dens,
		f.uPrev, f.vPrev, f.densPrev,
		f.srcU, f.srcV, f.srcDens,
		f.p, f.div,
	} {
		fill(field, 0.0)
	}
}
