package mixture

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lossmix/domain/core"
	"lossmix/domain/model"
	"lossmix/internal"
	"lossmix/internal/config"
)

// Aggregator turns a fitted latent-class model into predictive
// tables: class-prior-weighted expert probabilities per outcome
// bucket, averaged over the observation batch.
type Aggregator struct {
	log            *internal.Logger
	workers        int
	tolerance      float64
	overflowSuffix string
}

// NewAggregator creates an aggregator with the given configuration
func NewAggregator(cfg config.Config, log *internal.Logger) *Aggregator {
	if log == nil {
		log = internal.NewDefaultLogger()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Aggregator{
		log:            log,
		workers:        workers,
		tolerance:      cfg.ProbTolerance,
		overflowSuffix: cfg.OverflowSuffix,
	}
}

// Buckets builds the configured count bucket set for a table request
func (a *Aggregator) Buckets(cap int) []model.Bucket {
	return model.CountBucketsSuffix(cap, a.overflowSuffix)
}

// TableRequest describes one bucketed prediction
type TableRequest struct {
	Covariates model.CovariateMatrix
	Model      model.FittedModel
	Dimension  int            // Response dimension of the expert table
	Buckets    []model.Bucket // Ascending; at most one overflow bucket, last
	Exposure   []float64      // Optional per-observation exposure, row-aligned
	Source     string         // Table label; defaults to "mixture"
}

// PredictTable computes the model-predicted frequency table for the
// requested buckets. Non-overflow buckets are evaluated pointwise
// through the experts; the overflow bucket's mass is derived as one
// minus the rest, never by direct evaluation, so the table sums to
// exactly one by construction. A derived overflow mass below zero is
// clamped and surfaced as a warning, not an error: it diagnoses model
// misspecification, not a broken computation.
func (a *Aggregator) PredictTable(ctx context.Context, req TableRequest) (model.FrequencyTable, []model.WarningCode, error) {
	priors, rescaled, err := a.prepare(req.Covariates, req.Model, req.Dimension, req.Exposure)
	if err != nil {
		return model.FrequencyTable{}, nil, err
	}

	var warnings []model.WarningCode
	if req.Exposure != nil {
		// A column may mix rate and severity families; any
		// non-rescalable cell means part of the mixture ignores the
		// supplied exposure.
		for class := 0; class < req.Model.Experts.Classes(); class++ {
			if !req.Model.Experts.Cell(class, req.Dimension).Rescalable() {
				warnings = append(warnings, model.WarningExposureIgnored)
				a.log.Warn("exposure supplied for a non-rescalable expert family in class %d; ignored for that class", class)
				break
			}
		}
	}

	n := req.Covariates.NumRows()
	if n == 0 {
		return model.FrequencyTable{}, nil, core.ErrEmptyBatch
	}

	overflow := -1
	for b, bucket := range req.Buckets {
		if bucket.Overflow {
			overflow = b
		}
	}

	// Per-observation mixture mass at every non-overflow bucket, then a
	// uniform average across the batch. Observations are independent, so
	// the fan-out is a pure data-parallel map merged by index.
	probs := make([][]float64, n)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			row := make([]float64, len(req.Buckets))
			for b, bucket := range req.Buckets {
				if b == overflow {
					continue
				}
				var mass float64
				for class := 0; class < len(priors[i]); class++ {
					mass += priors[i][class] * rescaled(class, i).Prob(bucket.Value)
				}
				row[b] = mass
			}
			probs[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.FrequencyTable{}, nil, err
	}

	averaged := make([]float64, len(req.Buckets))
	for _, row := range probs {
		for b, p := range row {
			averaged[b] += p
		}
	}
	for b := range averaged {
		averaged[b] /= float64(n)
	}

	if overflow >= 0 {
		var rest float64
		for b, p := range averaged {
			if b != overflow {
				rest += p
			}
		}
		mass := 1 - rest
		if mass < 0 {
			// Every clamp is recorded. Float dust within tolerance logs
			// quietly; anything larger diagnoses a misspecified expert
			// table.
			if mass < -a.tolerance {
				a.log.Warn("derived overflow bucket mass %g clamped to zero", mass)
			} else {
				a.log.Debug("derived overflow bucket mass %g clamped to zero", mass)
			}
			warnings = append(warnings, model.WarningNegativeOverflowMass)
			mass = 0
		}
		averaged[overflow] = mass
	}

	source := req.Source
	if source == "" {
		source = "mixture"
	}
	return model.FrequencyTable{Source: source, Buckets: req.Buckets, Probs: averaged}, warnings, nil
}

// PredictMean computes the per-observation mixture mean in the given
// response dimension, exposure-adjusted when exposure is supplied.
func (a *Aggregator) PredictMean(covariates model.CovariateMatrix, fitted model.FittedModel, dimension int, exposure []float64) ([]float64, error) {
	priors, rescaled, err := a.prepare(covariates, fitted, dimension, exposure)
	if err != nil {
		return nil, err
	}

	means := make([]float64, covariates.NumRows())
	for i := range means {
		var mean float64
		for class := 0; class < len(priors[i]); class++ {
			mean += priors[i][class] * rescaled(class, i).Mean()
		}
		means[i] = mean
	}
	return means, nil
}

// prepare validates shapes and returns the class priors along with a
// lookup that yields the (possibly exposure-rescaled) expert for a
// class and observation. Rescaling transforms the rate parameter
// before evaluation; probability values themselves are never scaled.
func (a *Aggregator) prepare(covariates model.CovariateMatrix, fitted model.FittedModel, dimension int, exposure []float64) ([][]float64, func(class, i int) model.Expert, error) {
	if err := fitted.Validate(); err != nil {
		return nil, nil, err
	}
	if dimension < 0 || dimension >= fitted.Experts.Dimensions() {
		return nil, nil, core.NewShapeMismatch("response dimension", fitted.Experts.Dimensions(), dimension)
	}
	if exposure != nil && len(exposure) != covariates.NumRows() {
		return nil, nil, core.NewShapeMismatch("exposure vector", covariates.NumRows(), len(exposure))
	}

	priors, err := ClassPriors(covariates, fitted.Coefficients)
	if err != nil {
		return nil, nil, err
	}

	lookup := func(class, i int) model.Expert {
		expert := fitted.Experts.Cell(class, dimension)
		if exposure != nil && expert.Rescalable() {
			return expert.Rescale(exposure[i])
		}
		return expert
	}
	return priors, lookup, nil
}
