package ports

import (
	"lossmix/domain/model"
)

// BenchmarkPort is the interface to a competing regression model
// (typically a generalized linear model fitted elsewhere). The core
// only asks it for per-observation predicted rates; building the
// comparable frequency table from those rates happens in
// adapters/stats/freq.
type BenchmarkPort interface {
	// PredictRate returns one predicted rate per observation. offset
	// is an optional per-observation exposure multiplier; nil means
	// unit exposure. Fails with a dimension mismatch when offset is
	// non-nil and not row-aligned with covariates.
	PredictRate(covariates model.CovariateMatrix, offset []float64) ([]float64, error)
}
