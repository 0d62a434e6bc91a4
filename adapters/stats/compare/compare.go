// Package compare joins empirical and model-predicted frequency
// tables on the outcome bucket and derives the percentage-error
// columns downstream reports consume.
package compare

import (
	"math"

	"lossmix/domain/core"
	"lossmix/domain/model"
)

// Compare inner-joins the empirical table with one or more model
// tables on the bucket label: only buckets present in every input
// survive. Output row order equals the empirical table's row order.
// Each model source gets a percentage-error column
// round((predicted-empirical)/empirical*100, 2); the rounding is part
// of the contract so reports reproduce byte-for-byte. A zero
// empirical bucket leaves the formula's IEEE result in place and is
// surfaced as a warning.
func Compare(empirical model.FrequencyTable, models ...model.FrequencyTable) (model.ComparisonTable, []model.WarningCode, error) {
	sources := make([]string, len(models))
	allSources := []string{empirical.Source}
	for i, m := range models {
		sources[i] = m.Source
		allSources = append(allSources, m.Source)
	}

	var warnings []model.WarningCode
	rows := make([]model.ComparisonRow, 0, len(empirical.Buckets))
	for i, bucket := range empirical.Buckets {
		predicted := make(map[string]float64, len(models))
		joined := true
		for _, m := range models {
			p, ok := m.Prob(bucket.Label)
			if !ok {
				joined = false
				break
			}
			predicted[m.Source] = p
		}
		if !joined {
			continue
		}

		observed := empirical.Probs[i]
		if observed == 0 {
			warnings = append(warnings, model.WarningZeroEmpiricalMass)
		}
		pctError := make(map[string]float64, len(models))
		for source, p := range predicted {
			pctError[source] = roundPct((p - observed) / observed * 100)
		}
		rows = append(rows, model.ComparisonRow{
			Bucket:    bucket,
			Empirical: observed,
			Predicted: predicted,
			PctError:  pctError,
		})
	}

	if len(rows) == 0 {
		return model.ComparisonTable{}, nil, core.NewEmptyJoinError(allSources)
	}
	return model.ComparisonTable{Sources: sources, Rows: rows}, warnings, nil
}

// roundPct rounds to two decimal places
func roundPct(v float64) float64 {
	return math.Round(v*100) / 100
}
