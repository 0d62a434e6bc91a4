package compare

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"lossmix/domain/core"
	"lossmix/domain/model"
)

// SourceSummary condenses one model source's fit against the
// empirical table.
type SourceSummary struct {
	MeanAbsPctError   float64 `json:"mean_abs_pct_error"`
	MedianAbsPctError float64 `json:"median_abs_pct_error"`
	MaxAbsPctError    float64 `json:"max_abs_pct_error"`
	RowsSummarized    int     `json:"rows_summarized"` // Rows with a finite pct error
}

// Report is the audit artifact around one comparison: the joined
// table plus identity, provenance, and per-source accuracy summaries.
type Report struct {
	ID          core.ReportID            `json:"id"`
	CreatedAt   core.Timestamp           `json:"created_at"`
	Fingerprint core.Hash                `json:"fingerprint"` // Deterministic over the joined rows
	Table       model.ComparisonTable    `json:"table"`
	Summaries   map[string]SourceSummary `json:"summaries"`
	Warnings    []model.WarningCode      `json:"warnings,omitempty"`
}

// BuildReport wraps a comparison table into a report artifact. The
// fingerprint depends only on the joined rows, so the same comparison
// always fingerprints identically; ID and timestamp are fresh per
// call.
func BuildReport(table model.ComparisonTable, warnings []model.WarningCode) Report {
	return Report{
		ID:          core.ReportID(core.NewID()),
		CreatedAt:   core.Now(),
		Fingerprint: fingerprint(table),
		Table:       table,
		Summaries:   summarize(table),
		Warnings:    warnings,
	}
}

// fingerprint hashes the joined rows in table order
func fingerprint(table model.ComparisonTable) core.Hash {
	var labels []string
	var values []float64
	for _, row := range table.Rows {
		labels = append(labels, row.Bucket.Label)
		values = append(values, row.Empirical)
		for _, source := range table.Sources {
			labels = append(labels, fmt.Sprintf("%s@%s", source, row.Bucket.Label))
			values = append(values, row.Predicted[source])
		}
	}
	return core.Fingerprint(labels, values)
}

// summarize computes per-source absolute percentage-error summaries,
// skipping rows where the error is undefined (zero empirical mass).
func summarize(table model.ComparisonTable) map[string]SourceSummary {
	summaries := make(map[string]SourceSummary, len(table.Sources))
	for _, source := range table.Sources {
		var absErrors []float64
		for _, row := range table.Rows {
			pct := row.PctError[source]
			if math.IsNaN(pct) || math.IsInf(pct, 0) {
				continue
			}
			absErrors = append(absErrors, math.Abs(pct))
		}
		if len(absErrors) == 0 {
			summaries[source] = SourceSummary{}
			continue
		}
		mean, _ := stats.Mean(absErrors)
		median, _ := stats.Median(absErrors)
		max, _ := stats.Max(absErrors)
		summaries[source] = SourceSummary{
			MeanAbsPctError:   mean,
			MedianAbsPctError: median,
			MaxAbsPctError:    max,
			RowsSummarized:    len(absErrors),
		}
	}
	return summaries
}
