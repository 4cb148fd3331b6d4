package fluid

import "gonum.org/v1/gonum/floats"

// brushScale is the brush diameter as a fraction of the grid size.
const brushScale = 0.10

// brushSize returns the brush half-width. Grids too small for the scaled
// brush still get their centre cell.
func (f *Fluid) brushSize() int {
	return max(1, int(float64(f.n)*brushScale*0.5))
}

// Inject queues force and density around cell (cx, cy) with a diamond
// falloff: a cell at Manhattan distance d from the centre receives
// amount/(1+d). Cells outside [0, N] on either axis are skipped. Injections
// accumulate until drained by Update.
func (f *Fluid) Inject(cx, cy int, forceX, forceY, density float64) {
	size := f.brushSize()
	for i := -size + 1; i < size; i++ {
		for j := -size + 1; j < size; j++ {
			d := abs(i) + abs(j)
			if d >= size {
				continue
			}
			x, y := cx+i, cy+j
			if x < 0 || x > f.n || y < 0 || y > f.n {
				continue
			}
			w := 1.0 / float64(1+d)
			cell := f.ix(x, y)
			f.srcDens[cell] += density * w
			f.srcU[cell] += forceX * w
			f.srcV[cell] += forceY * w
		}
	}
}

// addSource moves dt*src into x and leaves src decayed by (1-dt), so a
// stimulus keeps leaking into the field over the following frames.
func (f *Fluid) addSource(x, src []float64, dt float64) {
	floats.AddScaled(x, dt, src)
	floats.AddScaled(src, -dt, src)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
