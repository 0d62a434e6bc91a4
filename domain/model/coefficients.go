package model

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"lossmix/domain/core"
)

// CoefficientMatrix holds the multinomial-logit coefficients of a fitted
// latent-class model. Only the K-1 free rows are stored; the reference
// class (class index 0) is structurally fixed at all-zero coefficients
// rather than stored as a redundant row.
// INVARIANTS:
// - Classes() == stored rows + 1
// - Score(0, x) == 0 for every x
type CoefficientMatrix struct {
	free *mat.Dense
}

// NewCoefficientMatrix builds a coefficient matrix for the given class
// and covariate counts. data is row-major and covers only the K-1 free
// rows; classes must be at least 2.
func NewCoefficientMatrix(classes, covariates int, data []float64) (CoefficientMatrix, error) {
	if classes < 2 {
		return CoefficientMatrix{}, core.NewShapeMismatch("latent class count", 2, classes)
	}
	want := (classes - 1) * covariates
	if len(data) != want {
		return CoefficientMatrix{}, core.NewDimensionMismatch("coefficient data", want, len(data))
	}
	return CoefficientMatrix{free: mat.NewDense(classes-1, covariates, data)}, nil
}

// Classes returns K, the total number of latent classes including the
// implicit reference class.
func (c CoefficientMatrix) Classes() int {
	r, _ := c.free.Dims()
	return r + 1
}

// Covariates returns P, the covariate dimension
func (c CoefficientMatrix) Covariates() int {
	_, p := c.free.Dims()
	return p
}

// Score returns the linear score of the given class for one covariate
// row. Class 0 is the reference class and always scores zero.
func (c CoefficientMatrix) Score(class int, row []float64) float64 {
	if class == 0 {
		return 0
	}
	return floats.Dot(c.free.RawRowView(class-1), row)
}
