package fluid

// Velocity returns both velocity components. The view shares storage with
// the grid.
func (f *Fluid) Velocity() VectorField {
	return VectorField{
		NumX:    f.n + 2,
		NumY:    f.n + 2,
		valuesU: f.u,
		valuesV: f.v,
	}
}

func (f *Fluid) VelocityX() ScalarField { return f.scalarField(f.u) }

func (f *Fluid) VelocityY() ScalarField { return f.scalarField(f.v) }
