package model

import (
	"fmt"
)

// Bucket identifies one discrete outcome (or outcome range) in a
// frequency table. The label is the join key across sources; the
// overflow bucket ("n+") collects all outcomes at or above its value.
type Bucket struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Overflow bool    `json:"overflow"`
}

// CountBuckets builds the standard bucket set for count outcomes:
// exact buckets 0..cap-1 plus an overflow bucket "cap+". cap must be
// at least 1.
func CountBuckets(cap int) []Bucket {
	return CountBucketsSuffix(cap, "+")
}

// CountBucketsSuffix is CountBuckets with a configurable overflow
// label suffix.
func CountBucketsSuffix(cap int, suffix string) []Bucket {
	buckets := make([]Bucket, 0, cap+1)
	for v := 0; v < cap; v++ {
		buckets = append(buckets, Bucket{Label: fmt.Sprintf("%d", v), Value: float64(v)})
	}
	buckets = append(buckets, Bucket{Label: fmt.Sprintf("%d%s", cap, suffix), Value: float64(cap), Overflow: true})
	return buckets
}

// FrequencyTable maps outcome buckets to probabilities (or normalized
// counts) for one source: empirical data, the mixture model, or a
// benchmark model. Buckets are ordered ascending by value with the
// overflow bucket last.
type FrequencyTable struct {
	Source  string    `json:"source"`
	Buckets []Bucket  `json:"buckets"`
	Probs   []float64 `json:"probs"`
}

// Prob returns the probability for a bucket label
func (t FrequencyTable) Prob(label string) (float64, bool) {
	for i, b := range t.Buckets {
		if b.Label == label {
			return t.Probs[i], true
		}
	}
	return 0, false
}

// Total returns the summed probability mass of the table
func (t FrequencyTable) Total() float64 {
	var sum float64
	for _, p := range t.Probs {
		sum += p
	}
	return sum
}

// ComparisonRow is one joined outcome bucket across all sources, with
// a percentage-error column per non-empirical source.
type ComparisonRow struct {
	Bucket    Bucket             `json:"bucket"`
	Empirical float64            `json:"empirical"`
	Predicted map[string]float64 `json:"predicted"`
	PctError  map[string]float64 `json:"pct_error"`
}

// ComparisonTable is the result of joining an empirical frequency
// table with one or more model tables on the outcome bucket.
// INVARIANTS:
// - Row order equals the empirical table's row order
// - PctError[source] == round((Predicted[source]-Empirical)/Empirical*100, 2)
type ComparisonTable struct {
	Sources []string        `json:"sources"` // Non-empirical sources, join order
	Rows    []ComparisonRow `json:"rows"`
}
