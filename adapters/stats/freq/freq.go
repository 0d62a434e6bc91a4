// Package freq builds frequency tables over discrete outcome buckets:
// empirical tables from observed outcomes, and model tables from
// per-observation predicted rates (the bridge that makes a benchmark
// regression model comparable to the mixture's bucketed output).
package freq

import (
	"github.com/montanaflynn/stats"

	"lossmix/adapters/dist"
	"lossmix/domain/core"
	"lossmix/domain/model"
	"lossmix/ports"
)

// FromObservations builds an empirical frequency table by counting
// outcomes into the given buckets and normalizing to probabilities.
// Exact buckets match on value; the overflow bucket collects every
// outcome at or above its value.
func FromObservations(source string, outcomes []float64, buckets []model.Bucket) (model.FrequencyTable, error) {
	if len(outcomes) == 0 {
		return model.FrequencyTable{}, core.ErrEmptyBatch
	}

	counts := make([]float64, len(buckets))
	for _, v := range outcomes {
		for b, bucket := range buckets {
			if bucket.Overflow {
				if v >= bucket.Value {
					counts[b]++
				}
			} else if v == bucket.Value {
				counts[b]++
			}
		}
	}

	n := float64(len(outcomes))
	probs := make([]float64, len(buckets))
	for b, c := range counts {
		probs[b] = c / n
	}
	return model.FrequencyTable{Source: source, Buckets: buckets, Probs: probs}, nil
}

// FromRates builds a model frequency table from per-observation
// Poisson rates: bucket probabilities are evaluated per observation
// and averaged, with the overflow bucket derived by subtraction so
// the table sums to one.
func FromRates(source string, rates []float64, buckets []model.Bucket) (model.FrequencyTable, error) {
	if len(rates) == 0 {
		return model.FrequencyTable{}, core.ErrEmptyBatch
	}

	overflow := -1
	probs := make([]float64, len(buckets))
	for b, bucket := range buckets {
		if bucket.Overflow {
			overflow = b
			continue
		}
		var mass float64
		for _, rate := range rates {
			mass += dist.NewPoisson(rate).Prob(bucket.Value)
		}
		probs[b] = mass / float64(len(rates))
	}
	if overflow >= 0 {
		var rest float64
		for b, p := range probs {
			if b != overflow {
				rest += p
			}
		}
		probs[overflow] = 1 - rest
	}
	return model.FrequencyTable{Source: source, Buckets: buckets, Probs: probs}, nil
}

// FromBenchmark asks a benchmark regression model for its
// per-observation rates and tables them through FromRates.
func FromBenchmark(source string, benchmark ports.BenchmarkPort, covariates model.CovariateMatrix, offset []float64, buckets []model.Bucket) (model.FrequencyTable, error) {
	rates, err := benchmark.PredictRate(covariates, offset)
	if err != nil {
		return model.FrequencyTable{}, err
	}
	if len(rates) != covariates.NumRows() {
		return model.FrequencyTable{}, core.NewDimensionMismatch("benchmark rates", covariates.NumRows(), len(rates))
	}
	return FromRates(source, rates, buckets)
}

// Summary holds descriptive statistics of raw outcomes, attached to
// reports alongside the bucketed view.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes descriptive statistics for raw outcome values
func Summarize(outcomes []float64) Summary {
	mean, _ := stats.Mean(outcomes)
	stdDev, _ := stats.StandardDeviation(outcomes)
	min, _ := stats.Min(outcomes)
	max, _ := stats.Max(outcomes)
	median, _ := stats.Median(outcomes)
	return Summary{Mean: mean, StdDev: stdDev, Min: min, Max: max, Median: median}
}
