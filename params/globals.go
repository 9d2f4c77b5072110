package params

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid dataset config")

// ColumnTransform overwrites one feature column:
//
//	X[:,Col] = Scale*Z[:,Col] + Offset (+ RefCoef*Z[:,Ref] if HasRef)
//
// Z is the untouched standard-normal draw, so Ref always reads a raw column.
type ColumnTransform struct {
	Col     int
	Scale   float64
	Offset  float64
	HasRef  bool
	Ref     int
	RefCoef float64
}

// TargetTerm is one Coef*X[:,Col] summand of the target.
type TargetTerm struct {
	Col  int
	Coef float64
}

type DatasetConfig struct {
	Rows int // samples (len of y)
	Cols int // features

	Transforms []ColumnTransform // applied to a copy of Z, never in place
	Target     []TargetTerm      // y = sum(Coef*X[:,Col]) + NoiseScale*noise
	NoiseScale float64

	Debug bool // enable zerolog debug events
}

// Config is read by the dataset package on every call.
var Config = DatasetConfig{
	Rows: 500,
	Cols: 30,

	Transforms: []ColumnTransform{
		// mean 5000, std 2000
		{Col: 0, Scale: 2000, Offset: 5000},
		// mean -20, std 100
		{Col: 1, Scale: 100, Offset: -20},
		// mean 120, std 50, correlated with column 3
		{Col: 7, Scale: 50, Offset: 120, HasRef: true, Ref: 3, RefCoef: -10},
	},
	Target: []TargetTerm{
		{Col: 0, Coef: 2},
		{Col: 1, Coef: -3},
		{Col: 7, Coef: 1},
	},
	NoiseScale: 20,

	Debug: false,
}

// Validate reports shapes and column indices the generator cannot honour.
func (c DatasetConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: shape %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	seen := make(map[int]bool, len(c.Transforms))
	for _, t := range c.Transforms {
		if t.Col < 0 || t.Col >= c.Cols {
			return fmt.Errorf("%w: transform column %d out of range [0,%d)", ErrInvalidConfig, t.Col, c.Cols)
		}
		if t.HasRef && (t.Ref < 0 || t.Ref >= c.Cols) {
			return fmt.Errorf("%w: transform %d references column %d out of range [0,%d)", ErrInvalidConfig, t.Col, t.Ref, c.Cols)
		}
		if seen[t.Col] {
			return fmt.Errorf("%w: column %d transformed twice", ErrInvalidConfig, t.Col)
		}
		seen[t.Col] = true
	}
	for _, t := range c.Target {
		if t.Col < 0 || t.Col >= c.Cols {
			return fmt.Errorf("%w: target column %d out of range [0,%d)", ErrInvalidConfig, t.Col, c.Cols)
		}
	}
	return nil
}
