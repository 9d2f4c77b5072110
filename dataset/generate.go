// Package dataset synthesizes the toy regression dataset used in the
// linear regression lecture: a feature matrix with a few rescaled and
// correlated columns, and a target that is a noisy linear combination of
// three of them.
package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/manningwu07/regression/params"
	"github.com/manningwu07/regression/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Draws holds every random number one dataset consumes.
// Z is the standard-normal feature snapshot, Noise the target noise.
type Draws struct {
	Z     *mat.Dense
	Noise []float64
}

// NewSource returns a seeded source for reproducible datasets.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Generate returns a fresh feature matrix and target vector.
// A nil src draws from the process-wide math/rand/v2 generator, so repeated
// calls differ; equal-seeded sources give identical datasets.
func Generate(src rand.Source) (*mat.Dense, []float64) {
	X, y := Build(Draw(src))
	if params.Config.Debug {
		r, c := X.Dims()
		logger.Debug().
			Int("rows", r).
			Int("cols", c).
			Bool("seeded", src != nil).
			Msg("generated regression dataset")
	}
	return X, y
}

// Draw consumes Rows*Cols standard normals row by row, then Rows noise draws.
func Draw(src rand.Source) Draws {
	cfg := params.Config
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	data := make([]float64, cfg.Rows*cfg.Cols)
	for i := range data {
		data[i] = norm.Rand()
	}
	noise := make([]float64, cfg.Rows)
	for i := range noise {
		noise[i] = norm.Rand()
	}
	return Draws{Z: mat.NewDense(cfg.Rows, cfg.Cols, data), Noise: noise}
}

// Build derives X and y from d without consuming randomness.
// Transforms read only d.Z and write into a separate copy, so their order
// never matters. The target reads the transformed columns.
// Neither result aliases d.
func Build(d Draws) (*mat.Dense, []float64) {
	cfg := params.Config
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	r, c := d.Z.Dims()
	if r != cfg.Rows || c != cfg.Cols || len(d.Noise) != cfg.Rows {
		panic(fmt.Sprintf("dataset: draws are %dx%d with %d noise values, config wants %dx%d",
			r, c, len(d.Noise), cfg.Rows, cfg.Cols))
	}

	X := mat.DenseCopyOf(d.Z)
	for _, t := range cfg.Transforms {
		col := utils.AffineColumn(utils.Column(d.Z, t.Col), t.Scale, t.Offset)
		if t.HasRef {
			floats.AddScaled(col, t.RefCoef, utils.Column(d.Z, t.Ref))
		}
		utils.SetColumn(X, t.Col, col)
	}

	y := make([]float64, cfg.Rows)
	for _, term := range cfg.Target {
		floats.AddScaled(y, term.Coef, utils.Column(X, term.Col))
	}
	floats.AddScaled(y, cfg.NoiseScale, d.Noise)
	return X, y
}
