package render

import (
	"gonum.org/v1/gonum/mat"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
)

// Fill writes the interior of s into pixels as RGBA, row by row, one pixel
// per cell. pixels must hold 4*N*N bytes.
func Fill(pixels []byte, s fluid.ScalarField, p *Palette, minVal, maxVal float64) {
	n := s.NumX - 2
	parallelRows(n, func(y int) {
		row := pixels[y*n*4 : (y+1)*n*4]
		for x := 0; x < n; x++ {
			c := p.Color(s.At(x+1, y+1), minVal, maxVal)
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	})
}

// SymmetricRange returns (-r, r) where r is the largest interior magnitude
// of s, so that zero maps to the middle of a palette.
func SymmetricRange(s fluid.ScalarField) (float64, float64) {
	m := s.Interior()
	r := max(1e-6, mat.Max(m), -mat.Min(m))
	return -r, r
}
