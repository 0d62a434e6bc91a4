// Package mixture computes latent-class membership probabilities and
// aggregates per-class expert distributions into predictive tables.
// Both operations are pure functions of the covariates and the fitted
// model; the model is only read, never mutated.
package mixture

import (
	"math"

	"lossmix/domain/core"
	"lossmix/domain/model"
)

// ClassPriors computes one latent-class prior vector per observation
// from the multinomial-logit coefficients. The reference class scores
// zero structurally; the remaining scores are linear in the covariate
// row, and the softmax is computed with max-score subtraction so large
// coefficients cannot overflow.
// Every returned vector has entries in [0,1] summing to 1 within
// floating-point tolerance.
func ClassPriors(covariates model.CovariateMatrix, coefficients model.CoefficientMatrix) ([][]float64, error) {
	if covariates.Dim() != coefficients.Covariates() {
		return nil, core.NewDimensionMismatch("covariate row", coefficients.Covariates(), covariates.Dim())
	}

	k := coefficients.Classes()
	priors := make([][]float64, covariates.NumRows())
	for i := range priors {
		row := covariates.Row(i)

		scores := make([]float64, k)
		maxScore := 0.0 // Reference class score
		for class := 1; class < k; class++ {
			scores[class] = coefficients.Score(class, row)
			if scores[class] > maxScore {
				maxScore = scores[class]
			}
		}

		var total float64
		for class := range scores {
			scores[class] = math.Exp(scores[class] - maxScore)
			total += scores[class]
		}
		for class := range scores {
			scores[class] /= total
		}
		priors[i] = scores
	}
	return priors, nil
}
