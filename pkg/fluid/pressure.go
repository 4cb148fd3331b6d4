package fluid

// project removes the divergent part of (u, v). p and div are scratch
// buffers; p holds the pressure field on return.
func (f *Fluid) project(u, v, p, div []float64) {
	n := f.n
	h := 1.0 / float64(n)

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			div[f.ix(i, j)] = -0.5 * h * (u[f.ix(i+1, j)] - u[f.ix(i-1, j)] +
				v[f.ix(i, j+1)] - v[f.ix(i, j-1)])
		}
	}
	fill(p, 0.0)
	f.setBoundary(Scalar, div)
	f.setBoundary(Scalar, p)

	for k := 0; k < f.fidelity; k++ {
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				p[f.ix(i, j)] = (div[f.ix(i, j)] + p[f.ix(i-1, j)] + p[f.ix(i+1, j)] +
					p[f.ix(i, j-1)] + p[f.ix(i, j+1)]) / 4
			}
		}
		f.setBoundary(Scalar, p)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			u[f.ix(i, j)] -= 0.5 * (p[f.ix(i+1, j)] - p[f.ix(i-1, j)]) / h
			v[f.ix(i, j)] -= 0.5 * (p[f.ix(i, j+1)] - p[f.ix(i, j-1)]) / h
		}
	}
	f.setBoundary(VelocityX, u)
	f.setBoundary(VelocityY, v)
}

// Pressure returns the pressure solved by the last projection.
func (f *Fluid) Pressure() ScalarField {
	return f.scalarField(f.p)
}
