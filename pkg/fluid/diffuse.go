package fluid

// diffusionScale converts the user facing diffusion rate to the
// coefficient used by the relaxation.
const diffusionScale = 1.0 / 100000

// diffuse relaxes dst towards src diffused over dt using fidelity
// Gauss-Seidel sweeps. dst starts from zero. The boundary is enforced on
// src, not dst.
func (f *Fluid) diffuse(t FieldType, dst, src []float64, dt float64) {
	n := f.n
	a := f.diffusionRate * diffusionScale * dt * float64(n*n)
	c := 1 + 4*a

	fill(dst, 0.0)
	for k := 0; k < f.fidelity; k++ {
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				dst[f.ix(i, j)] = (src[f.ix(i, j)] + a*(dst[f.ix(i-1, j)]+dst[f.ix(i+1, j)]+
					dst[f.ix(i, j-1)]+dst[f.ix(i, j+1)])) / c
			}
		}
	}
	f.setBoundary(t, src)
}
