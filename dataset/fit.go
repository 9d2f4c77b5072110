package dataset

import (
	"errors"
	"fmt"

	"github.com/manningwu07/regression/utils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var ErrShapeMismatch = errors.New("feature rows and target length differ")

// Summary is the sample mean and standard deviation of one column.
type Summary struct {
	Col  int
	Mean float64
	Std  float64
}

// Summarize reports per-column sample statistics, e.g. to check that
// column 0 sits near mean 5000 and std 2000.
func Summarize(X mat.Matrix) []Summary {
	_, c := X.Dims()
	out := make([]Summary, c)
	for j := 0; j < c; j++ {
		mean, std := stat.MeanStdDev(utils.Column(X, j), nil)
		out[j] = Summary{Col: j, Mean: mean, Std: std}
	}
	return out
}

// FitOLS solves ordinary least squares with an intercept.
// The result is [intercept, w0, w1, ...].
func FitOLS(X mat.Matrix, y []float64) ([]float64, error) {
	r, c := X.Dims()
	if r != len(y) {
		return nil, fmt.Errorf("fit ols: %d rows, %d targets: %w", r, len(y), ErrShapeMismatch)
	}
	if r <= c {
		return nil, fmt.Errorf("fit ols: need more than %d rows, got %d", c, r)
	}

	A := utils.WithIntercept(X)
	var beta mat.VecDense
	if err := beta.SolveVec(A, mat.NewVecDense(r, y)); err != nil {
		return nil, fmt.Errorf("fit ols: %w", err)
	}
	return mat.Col(nil, 0, &beta), nil
}
