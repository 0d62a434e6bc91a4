package model

import (
	"fmt"
	"math"

	"lossmix/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// CovariateMatrix holds one row of numeric features per observation.
// Column semantics travel with the data as a name-to-index mapping so
// downstream consumers never guess at positional meaning.
// INVARIANTS:
// - Every row has the same length as the Columns mapping
// - The intercept column, when present, is an explicit 1.0 feature
// - Rows are never mutated in place; filtering produces a new matrix
type CovariateMatrix struct {
	names   []string
	columns map[string]int
	rows    [][]float64
}

// NewCovariateMatrix builds a covariate matrix from ordered column names
// and row-major data. Every row must match the column count.
func NewCovariateMatrix(names []string, rows [][]float64) (CovariateMatrix, error) {
	columns := make(map[string]int, len(names))
	for i, name := range names {
		columns[name] = i
	}
	for _, row := range rows {
		if len(row) != len(names) {
			return CovariateMatrix{}, core.NewDimensionMismatch("covariate row", len(names), len(row))
		}
	}
	return CovariateMatrix{names: names, columns: columns, rows: rows}, nil
}

// NumRows returns the number of observations
func (m CovariateMatrix) NumRows() int {
	return len(m.rows)
}

// Dim returns the number of covariate columns
func (m CovariateMatrix) Dim() int {
	return len(m.names)
}

// Names returns the ordered column names
func (m CovariateMatrix) Names() []string {
	return m.names
}

// Row returns the feature vector for observation i
func (m CovariateMatrix) Row(i int) []float64 {
	return m.rows[i]
}

// Column returns the values of a named column across all observations
func (m CovariateMatrix) Column(name string) ([]float64, bool) {
	idx, ok := m.columns[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(m.rows))
	for i, row := range m.rows {
		out[i] = row[idx]
	}
	return out, true
}

// Select returns a new matrix containing only the rows at the given
// indices, in the given order. The underlying row slices are shared;
// rows are immutable by convention.
func (m CovariateMatrix) Select(keep []int) CovariateMatrix {
	rows := make([][]float64, len(keep))
	for i, idx := range keep {
		rows[i] = m.rows[idx]
	}
	return CovariateMatrix{names: m.names, columns: m.columns, rows: rows}
}

// ResponseInterval is the four-bound censoring/truncation encoding of a
// single response value in a single dimension.
// INVARIANTS:
// - TruncLower <= CensorLower <= CensorUpper <= TruncUpper
// - CensorLower == CensorUpper exactly when the value was observed exactly
// - Observations outside the truncation window are never encoded; truncation
//   removes rows, censoring only widens bounds
type ResponseInterval struct {
	TruncLower  float64 `json:"trunc_lower"`
	CensorLower float64 `json:"censor_lower"`
	CensorUpper float64 `json:"censor_upper"`
	TruncUpper  float64 `json:"trunc_upper"`
}

// NewResponseInterval builds an interval from explicit bounds,
// rejecting misordered ones. The encoder produces ordered intervals by
// construction; this is the checked path for intervals built outside
// it (e.g. by a fitting collaborator's caller).
func NewResponseInterval(truncLower, censorLower, censorUpper, truncUpper float64) (ResponseInterval, error) {
	r := ResponseInterval{
		TruncLower:  truncLower,
		CensorLower: censorLower,
		CensorUpper: censorUpper,
		TruncUpper:  truncUpper,
	}
	if !r.Valid() {
		return ResponseInterval{}, fmt.Errorf("%w: bounds (%g, %g, %g, %g) out of order",
			core.ErrInvalidInterval, truncLower, censorLower, censorUpper, truncUpper)
	}
	return r, nil
}

// ExactInterval encodes a fully observed value with the default
// truncation window (0, +inf].
func ExactInterval(v float64) ResponseInterval {
	return ResponseInterval{
		TruncLower:  0,
		CensorLower: v,
		CensorUpper: v,
		TruncUpper:  math.Inf(1),
	}
}

// Exact reports whether the value was observed exactly
func (r ResponseInterval) Exact() bool {
	return r.CensorLower == r.CensorUpper
}

// Censored reports whether the value is only known to lie in an interval
func (r ResponseInterval) Censored() bool {
	return r.CensorLower < r.CensorUpper
}

// Valid reports whether the four bounds are correctly ordered
func (r ResponseInterval) Valid() bool {
	return r.TruncLower <= r.CensorLower &&
		r.CensorLower <= r.CensorUpper &&
		r.CensorUpper <= r.TruncUpper
}

// WarningCode represents structured warning types surfaced alongside
// results. Warnings are diagnostic of model misspecification, not of a
// broken computation, so they never abort a call.
type WarningCode string

const (
	WarningNegativeOverflowMass WarningCode = "NEGATIVE_OVERFLOW_MASS" // Derived overflow bucket went below zero and was clamped
	WarningZeroEmpiricalMass    WarningCode = "ZERO_EMPIRICAL_MASS"    // Percentage error undefined for a zero empirical bucket
	WarningExposureIgnored      WarningCode = "EXPOSURE_IGNORED"       // Exposure supplied for a non-rescalable expert family
)
