package fluid

import "math"

// advect writes into dst the value of src traced backwards along (u, v) for
// dt from each interior cell centre.
func (f *Fluid) advect(t FieldType, dst, src, u, v []float64, dt float64) {
	n := f.n
	dt0 := dt * float64(n)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cell := f.ix(i, j)
			x := float64(i) - dt0*u[cell]
			y := float64(j) - dt0*v[cell]
			dst[cell] = f.sample(src, x, y)
		}
	}
	f.setBoundary(t, dst)
}

// sample bilinearly interpolates field at grid coordinates (x, y), clamped
// to the half cell inside the ghost border.
func (f *Fluid) sample(field []float64, x, y float64) float64 {
	lo, hi := 0.5, float64(f.n)+0.5
	x = max(min(x, hi), lo)
	y = max(min(y, hi), lo)

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1, y1 := x0+1, y0+1

	tx := x - float64(x0)
	ty := y - float64(y0)
	sx := 1.0 - tx
	sy := 1.0 - ty

	return sx*(sy*field[f.ix(x0, y0)]+ty*field[f.ix(x0, y1)]) +
		tx*(sy*field[f.ix(x1, y0)]+ty*field[f.ix(x1, y1)])
}

// SampleDensity returns the interpolated density at grid coordinates (x, y).
func (f *Fluid) SampleDensity(x, y float64) float64 {
	return f.sample(f.dens, x, y)
}

// SampleVelocity returns the interpolated velocity at grid coordinates (x, y).
func (f *Fluid) SampleVelocity(x, y float64) (float64, float64) {
	return f.sample(f.u, x, y), f.sample(f.v, x, y)
}
