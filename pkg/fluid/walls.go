package fluid

// FieldType selects the wall condition applied to a field's ghost cells.
type FieldType int

const (
	// Scalar fields (density, pressure, divergence) copy their interior
	// neighbour into the ghost cell: zero gradient across the wall.
	Scalar FieldType = iota
	// VelocityX is negated across the left and right walls.
	VelocityX
	// VelocityY is negated across the top and bottom walls.
	VelocityY
)

func (t FieldType) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case VelocityX:
		return "velocity-x"
	case VelocityY:
		return "velocity-y"
	}
	return "unknown"
}

// setBoundary recomputes the ghost border of x from its interior. The
// component normal to a wall is reflected so nothing flows through it.
func (f *Fluid) setBoundary(t FieldType, x []float64) {
	n := f.n
	for i := 1; i <= n; i++ {
		left, right := x[f.ix(1, i)], x[f.ix(n, i)]
		if t == VelocityX {
			left, right = -left, -right
		}
		x[f.ix(0, i)] = left
		x[f.ix(n+1, i)] = right

		top, bottom := x[f.ix(i, 1)], x[f.ix(i, n)]
		if t == VelocityY {
			top, bottom = -top, -bottom
		}
		x[f.ix(i, 0)] = top
		x[f.ix(i, n+1)] = bottom
	}

	x[f.ix(0, 0)] = 0.5 * (x[f.ix(1, 0)] + x[f.ix(0, 1)])
	x[f.ix(0, n+1)] = 0.5 * (x[f.ix(1, n+1)] + x[f.ix(0, n)])
	x[f.ix(n+1, 0)] = 0.5 * (x[f.ix(n, 0)] + x[f.ix(n+1, 1)])
	x[f.ix(n+1, n+1)] = 0.5 * (x[f.ix(n, n+1)] + x[f.ix(n+1, n)])
}
