package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Column returns a copy of column j.
func Column(m mat.Matrix, j int) []float64 {
	return mat.Col(nil, j, m)
}

func SetColumn(m *mat.Dense, j int, v []float64) {
	r, _ := m.Dims()
	if len(v) != r {
		panic(fmt.Sprintf("SetColumn: column has %d rows, matrix has %d", len(v), r))
	}
	m.SetCol(j, v)
}

// AffineColumn returns scale*col + offset as a new slice.
func AffineColumn(col []float64, scale, offset float64) []float64 {
	out := make([]float64, len(col))
	floats.ScaleTo(out, scale, col)
	floats.AddConst(offset, out)
	return out
}

// WithIntercept prepends a column of ones to m. Used to build OLS design matrices.
func WithIntercept(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, 1)
	}
	out.Slice(0, r, 1, c+1).(*mat.Dense).Copy(m)
	return out
}
