package ports

import (
	"context"

	"lossmix/domain/model"
)

// FitOptions controls the external estimation routine
type FitOptions struct {
	Tolerance     float64 // Convergence tolerance on the log-likelihood
	MaxIterations int     // Hard cap on estimation iterations
}

// FitterPort is the interface to the external parameter-estimation
// collaborator. It consumes interval-encoded responses (so censoring
// and truncation bounds flow into its likelihood) and returns a fitted
// model that this core only reads.
type FitterPort interface {
	// Fit estimates latent-class regression coefficients and expert
	// parameters from interval-encoded data. intervals is
	// dimension-major: intervals[d][i] is observation i in response
	// dimension d, row-aligned with covariates.
	Fit(ctx context.Context, intervals [][]model.ResponseInterval, covariates model.CovariateMatrix,
		initial model.FittedModel, opts FitOptions) (model.FittedModel, error)
}
