package fluid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ScalarField is a read-only view of one grid field, ghost cells included.
// It shares storage with the Fluid and is only valid until the next Update.
// ScalarField satisfies mat.Matrix with rows along X and columns along Y.
type ScalarField struct {
	NumX, NumY int
	MinValue   float64
	MaxValue   float64
	values     []float64
}

func (f *Fluid) scalarField(values []float64) ScalarField {
	return ScalarField{
		NumX:   f.n + 2,
		NumY:   f.n + 2,
		values: values,
	}
}

func (s ScalarField) Value(i, j int) (float64, error) {
	if i < 0 || i >= s.NumX {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", s.NumX-1)
	}
	if j < 0 || j >= s.NumY {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", s.NumY-1)
	}

	return s.values[i*s.NumY+j], nil
}

// Dims implements mat.Matrix.
func (s ScalarField) Dims() (r, c int) { return s.NumX, s.NumY }

// At implements mat.Matrix. It panics when (i, j) is out of range.
func (s ScalarField) At(i, j int) float64 {
	v, err := s.Value(i, j)
	if err != nil {
		panic(err)
	}
	return v
}

// T implements mat.Matrix.
func (s ScalarField) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// Dense returns a *mat.Dense backed by the same storage as the field.
func (s ScalarField) Dense() *mat.Dense {
	return mat.NewDense(s.NumX, s.NumY, s.values)
}

// Interior returns the field without its ghost border. The result shares
// storage with the grid.
func (s ScalarField) Interior() mat.Matrix {
	return s.Dense().Slice(1, s.NumX-1, 1, s.NumY-1)
}
