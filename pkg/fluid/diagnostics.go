package fluid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TotalDensity returns the sum of density over interior cells.
func (f *Fluid) TotalDensity() float64 {
	total := 0.0
	for i := 1; i <= f.n; i++ {
		total += floats.Sum(f.dens[f.ix(i, 1) : f.ix(i, f.n)+1])
	}
	return total
}

// MaxDivergence returns the largest absolute central-difference divergence
// over interior cells.
func (f *Fluid) MaxDivergence() float64 {
	h := 1.0 / float64(f.n)
	maxDiv := 0.0
	for i := 1; i <= f.n; i++ {
		for j := 1; j <= f.n; j++ {
			div := 0.5 * (f.u[f.ix(i+1, j)] - f.u[f.ix(i-1, j)] +
				f.v[f.ix(i, j+1)] - f.v[f.ix(i, j-1)]) / h
			maxDiv = max(maxDiv, math.Abs(div))
		}
	}
	return maxDiv
}

// Vorticity computes the curl of the velocity field at interior cells. The
// ghost border of the result is zero.
func (f *Fluid) Vorticity() ScalarField {
	h := 1.0 / float64(f.n)
	curl := make([]float64, f.numCells)
	for i := 1; i <= f.n; i++ {
		for j := 1; j <= f.n; j++ {
			dvdx := (f.v[f.ix(i+1, j)] - f.v[f.ix(i-1, j)]) * 0.5 / h
			dudy := (f.u[f.ix(i, j+1)] - f.u[f.ix(i, j-1)]) * 0.5 / h
			curl[f.ix(i, j)] = dvdx - dudy
		}
	}
	s := f.scalarField(curl)
	s.MinValue, s.MaxValue = interiorRange(f, curl)
	return s
}

// VelocityMagnitude computes |v| at every cell.
func (f *Fluid) VelocityMagnitude() ScalarField {
	mag := make([]float64, f.numCells)
	for i := range mag {
		mag[i] = math.Hypot(f.u[i], f.v[i])
	}
	s := f.scalarField(mag)
	s.MinValue, s.MaxValue = interiorRange(f, mag)
	return s
}
