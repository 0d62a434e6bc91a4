package model

import (
	"lossmix/domain/core"
)

// Expert is the capability contract for a parametric response
// distribution attached to one latent class and one response dimension.
// The prediction core never branches on family identity; it only uses
// this surface. Concrete families live in adapters/dist.
type Expert interface {
	// Mean returns the distribution mean.
	Mean() float64

	// Variance returns the distribution variance.
	Variance() float64

	// Prob returns the probability density (continuous families) or
	// probability mass (discrete families) at x.
	Prob(x float64) float64

	// LogIntervalProb returns the log probability that the response
	// lies in [lo, hi]. lo == hi is an exact observation and returns
	// the log density/mass at that point. hi may be +inf for
	// right-censored observations. Consumed by external fitting
	// routines when computing censored likelihoods.
	LogIntervalProb(lo, hi float64) float64

	// Rescalable reports whether the family supports exposure
	// rescaling of its rate parameter.
	Rescalable() bool

	// Rescale returns a new expert whose rate parameter is multiplied
	// by the exposure factor. Non-rescalable families return the
	// receiver unchanged; the exposure is applied to the parameter,
	// never to a computed probability value.
	Rescale(exposure float64) Expert
}

// ExpertTable is the K x D grid of expert distributions of a fitted
// latent-class model: one expert per class per response dimension.
// INVARIANTS:
// - Rectangular: every class row has the same dimension count
// - Cells are opaque; internal parameters are never inspected here
type ExpertTable struct {
	cells [][]Expert
}

// NewExpertTable builds an expert table from class-major cells
func NewExpertTable(cells [][]Expert) (ExpertTable, error) {
	if len(cells) == 0 {
		return ExpertTable{}, core.NewShapeMismatch("expert table class count", 1, 0)
	}
	dims := len(cells[0])
	for _, row := range cells {
		if len(row) != dims {
			return ExpertTable{}, core.NewDimensionMismatch("expert table row", dims, len(row))
		}
	}
	return ExpertTable{cells: cells}, nil
}

// Classes returns the number of latent classes
func (t ExpertTable) Classes() int {
	return len(t.cells)
}

// Dimensions returns the number of response dimensions
func (t ExpertTable) Dimensions() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Cell returns the expert for the given class and response dimension
func (t ExpertTable) Cell(class, dim int) Expert {
	return t.cells[class][dim]
}

// FittedModel bundles the outputs of an external fitting routine:
// multinomial-logit coefficients plus the expert grid. This core only
// reads it; the fitting collaborator owns it.
type FittedModel struct {
	Coefficients CoefficientMatrix
	Experts      ExpertTable
}

// Validate checks that the coefficient-implied class count agrees with
// the expert table's class count.
func (m FittedModel) Validate() error {
	if m.Coefficients.Classes() != m.Experts.Classes() {
		return core.NewShapeMismatch("expert table class count",
			m.Coefficients.Classes(), m.Experts.Classes())
	}
	return nil
}
