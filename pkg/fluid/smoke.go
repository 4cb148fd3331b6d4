package fluid

import "gonum.org/v1/gonum/mat"

// Density returns the density field with its interior value range.
func (f *Fluid) Density() ScalarField {
	s := f.scalarField(f.dens)
	s.MinValue, s.MaxValue = interiorRange(f, f.dens)
	return s
}

func interiorRange(f *Fluid, values []float64) (float64, float64) {
	m := f.scalarField(values).Interior()
	return mat.Min(m), mat.Max(m)
}
