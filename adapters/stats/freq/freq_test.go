package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lossmix/domain/core"
	"lossmix/domain/model"
	"lossmix/ports"
)

func TestFromObservationsCountsAndNormalizes(t *testing.T) {
	outcomes := []float64{0, 0, 0, 1, 2, 4, 5}
	table, err := FromObservations("empirical", outcomes, model.CountBuckets(4))
	require.NoError(t, err)

	assert.Equal(t, "empirical", table.Source)
	assert.InDelta(t, 3.0/7, table.Probs[0], 1e-12)
	assert.InDelta(t, 1.0/7, table.Probs[1], 1e-12)
	assert.InDelta(t, 1.0/7, table.Probs[2], 1e-12)
	assert.InDelta(t, 0.0, table.Probs[3], 1e-12)
	// Overflow bucket collects 4 and 5
	assert.InDelta(t, 2.0/7, table.Probs[4], 1e-12)
	assert.InDelta(t, 1.0, table.Total(), 1e-12)
}

func TestFromObservationsRejectsEmptyInput(t *testing.T) {
	_, err := FromObservations("empirical", nil, model.CountBuckets(2))
	assert.ErrorIs(t, err, core.ErrEmptyBatch)
}

func TestFromRatesSumsToOne(t *testing.T) {
	table, err := FromRates("glm", []float64{0.5, 1.5, 3.0}, model.CountBuckets(5))
	require.NoError(t, err)

	assert.Equal(t, 1.0, table.Total())
	for i, p := range table.Probs {
		assert.GreaterOrEqual(t, p, 0.0, "bucket %d", i)
	}
}

type linearRateModel struct{}

func (linearRateModel) PredictRate(covariates model.CovariateMatrix, offset []float64) ([]float64, error) {
	rates := make([]float64, covariates.NumRows())
	for i := range rates {
		rates[i] = covariates.Row(i)[1]
		if offset != nil {
			rates[i] *= offset[i]
		}
	}
	return rates, nil
}

var _ ports.BenchmarkPort = linearRateModel{}

func TestFromBenchmarkBridgesRates(t *testing.T) {
	covariates, err := model.NewCovariateMatrix([]string{"intercept", "rate"}, [][]float64{
		{1, 1.0},
		{1, 2.0},
	})
	require.NoError(t, err)

	table, err := FromBenchmark("glm", linearRateModel{}, covariates, []float64{1, 0.5}, model.CountBuckets(4))
	require.NoError(t, err)

	// With offset, both observations evaluate a Poisson(1)
	want, err := FromRates("glm", []float64{1, 1}, model.CountBuckets(4))
	require.NoError(t, err)
	assert.Equal(t, want.Probs, table.Probs)
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 3, summary.Mean, 1e-12)
	assert.InDelta(t, 3, summary.Median, 1e-12)
	assert.InDelta(t, 1, summary.Min, 1e-12)
	assert.InDelta(t, 5, summary.Max, 1e-12)
}
