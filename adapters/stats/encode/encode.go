// Package encode converts raw response values into the four-bound
// interval representation consumed by censored-likelihood fitting.
// Truncation removes rows from the sample; censoring only widens the
// bounds of rows that stay. Covariates and every response dimension
// are filtered by one shared retained-index set so row alignment can
// never drift between collections.
package encode

import (
	"fmt"
	"math"

	"lossmix/domain/core"
	"lossmix/domain/model"
	"lossmix/internal"
)

// TruncationRule produces the truncation window (lo, hi] for
// observation i. A response is observable only when it is strictly
// above lo and at most hi.
type TruncationRule func(i int) (lo, hi float64)

// CensoringRule produces the censoring bounds for a raw value that
// survived truncation. An exactly observed value has lo == hi.
type CensoringRule func(v float64) (lo, hi float64)

// ConstantTruncation applies the same window (lo, hi] to every
// observation.
func ConstantTruncation(lo, hi float64) TruncationRule {
	return func(int) (float64, float64) {
		return lo, hi
	}
}

// CovariateTruncation derives each observation's window from an
// auxiliary covariate (e.g. elapsed time since policy start).
func CovariateTruncation(aux []float64, window func(a float64) (lo, hi float64)) TruncationRule {
	return func(i int) (float64, float64) {
		return window(aux[i])
	}
}

// Exact records every surviving value as exactly observed
func Exact() CensoringRule {
	return func(v float64) (float64, float64) {
		return v, v
	}
}

// RightCap censors values strictly above cap as [cap, +inf). A value
// exactly equal to the cap is treated as exactly observed; censoring
// triggers only strictly beyond the threshold.
func RightCap(cap float64) CensoringRule {
	return func(v float64) (float64, float64) {
		if v > cap {
			return cap, math.Inf(1)
		}
		return v, v
	}
}

// Dimension pairs one response dimension's raw values with its
// truncation and censoring regime. Dimensions are independent and may
// differ in regime. A nil censoring rule means exact observation. A
// nil truncation rule means untruncated: the default window (0, +inf]
// is recorded on the intervals but no rows are removed, so zero-valued
// counts survive with degenerate bounds at the window edge.
type Dimension struct {
	Values     []float64
	Truncation TruncationRule
	Censoring  CensoringRule
}

// Batch is the encoder output: retained covariates plus
// dimension-major intervals, all row-aligned.
type Batch struct {
	Covariates model.CovariateMatrix
	Intervals  [][]model.ResponseInterval // Intervals[d][i]: observation i, dimension d
	Indices    []int                      // Retained row indices into the encoder input
	Dropped    int                        // Rows removed by truncation
}

// NumRows returns the retained observation count
func (b Batch) NumRows() int {
	return b.Covariates.NumRows()
}

// Encoder builds interval-encoded batches
type Encoder struct {
	log *internal.Logger
}

// NewEncoder creates an encoder
func NewEncoder(log *internal.Logger) *Encoder {
	if log == nil {
		log = internal.NewDefaultLogger()
	}
	return &Encoder{log: log}
}

// Encode filters the batch by each dimension's truncation window and
// encodes the surviving rows' censoring bounds. A row is dropped when
// its value falls outside the window (lo, hi] in any dimension, and
// the same retained-index set is applied to the covariates and to
// every dimension. Every emitted interval satisfies
// TruncLower <= CensorLower <= CensorUpper <= TruncUpper.
func (e *Encoder) Encode(covariates model.CovariateMatrix, dims ...Dimension) (Batch, error) {
	n := covariates.NumRows()
	for _, d := range dims {
		if len(d.Values) != n {
			return Batch{}, core.NewDimensionMismatch("response dimension", n, len(d.Values))
		}
	}

	windows := make([]TruncationRule, len(dims))
	censors := make([]CensoringRule, len(dims))
	for j, d := range dims {
		windows[j] = d.Truncation
		if windows[j] == nil {
			// Untruncated: record the default window, filter nothing
			windows[j] = func(int) (float64, float64) { return 0, math.Inf(1) }
		}
		censors[j] = d.Censoring
		if censors[j] == nil {
			censors[j] = Exact()
		}
	}

	// Single index-selection pass; the resulting permutation is applied
	// uniformly to the covariates and every response dimension.
	retained := make([]int, 0, n)
	for i := 0; i < n; i++ {
		keep := true
		for j, d := range dims {
			if d.Truncation == nil {
				continue
			}
			lo, hi := windows[j](i)
			if v := d.Values[i]; v <= lo || v > hi {
				keep = false
				break
			}
		}
		if keep {
			retained = append(retained, i)
		}
	}

	intervals := make([][]model.ResponseInterval, len(dims))
	for j, d := range dims {
		encoded := make([]model.ResponseInterval, len(retained))
		for k, i := range retained {
			tl, tu := windows[j](i)
			yl, yu := censors[j](d.Values[i])
			// Truncation already bounds the true value, so censoring
			// bounds are tightened into the window.
			encoded[k] = model.ResponseInterval{
				TruncLower:  tl,
				CensorLower: math.Max(yl, tl),
				CensorUpper: math.Min(yu, tu),
				TruncUpper:  tu,
			}
		}
		intervals[j] = encoded
	}

	dropped := n - len(retained)
	if dropped > 0 {
		e.log.Debug("interval encoding dropped %d of %d rows outside truncation windows", dropped, n)
	}

	return Batch{
		Covariates: covariates.Select(retained),
		Intervals:  intervals,
		Indices:    retained,
		Dropped:    dropped,
	}, nil
}

// Concat appends batches produced by separate truncation regimes.
// Retained rows keep their per-batch order; callers composing regimes
// over disjoint row ranges therefore preserve original order. Indices
// keep their per-source meaning: each entry still refers to the input
// batch that produced it. All batches must agree on covariate columns
// and dimension count.
func Concat(batches ...Batch) (Batch, error) {
	if len(batches) == 0 {
		return Batch{}, core.ErrEmptyBatch
	}
	first := batches[0]
	names := first.Covariates.Names()
	dims := len(first.Intervals)

	rows := make([][]float64, 0, first.NumRows())
	intervals := make([][]model.ResponseInterval, dims)
	indices := make([]int, 0, first.NumRows())
	dropped := 0
	for _, b := range batches {
		if len(b.Intervals) != dims {
			return Batch{}, core.NewDimensionMismatch("batch dimensions", dims, len(b.Intervals))
		}
		if b.Covariates.Dim() != len(names) {
			return Batch{}, core.NewDimensionMismatch("batch covariates", len(names), b.Covariates.Dim())
		}
		for j, name := range b.Covariates.Names() {
			if name != names[j] {
				return Batch{}, fmt.Errorf("%w: batch covariate column %d is %q, want %q",
					core.ErrDimensionMismatch, j, name, names[j])
			}
		}
		for i := 0; i < b.NumRows(); i++ {
			rows = append(rows, b.Covariates.Row(i))
		}
		for j := 0; j < dims; j++ {
			intervals[j] = append(intervals[j], b.Intervals[j]...)
		}
		indices = append(indices, b.Indices...)
		dropped += b.Dropped
	}

	covariates, err := model.NewCovariateMatrix(names, rows)
	if err != nil {
		return Batch{}, err
	}
	return Batch{Covariates: covariates, Intervals: intervals, Indices: indices, Dropped: dropped}, nil
}
