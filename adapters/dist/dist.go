// Package dist implements concrete parametric families behind the
// model.Expert capability contract. Each family wraps a
// gonum.org/v1/gonum/stat/distuv distribution (or composes two of
// them) and adds the interval-probability and exposure-rescaling
// surface the prediction core and external fitters consume. Nothing
// outside this package branches on family identity.
package dist

import (
	"math"

	"lossmix/domain/model"
)

// Compile-time capability checks
var (
	_ model.Expert = Poisson{}
	_ model.Expert = ZeroInflatedPoisson{}
	_ model.Expert = NegBinomial{}
	_ model.Expert = LogNormal{}
	_ model.Expert = InverseGaussian{}
	_ model.Expert = Gamma{}
)

// logIntervalContinuous computes log P(lo <= X <= hi) for a continuous
// family from its CDF, treating lo == hi as an exact observation.
func logIntervalContinuous(cdf func(float64) float64, logProb func(float64) float64, lo, hi float64) float64 {
	if lo == hi {
		return logProb(lo)
	}
	upper := 1.0
	if !math.IsInf(hi, 1) {
		upper = cdf(hi)
	}
	return math.Log(upper - cdf(lo))
}

// logIntervalDiscrete computes log P(lo <= X <= hi) for an
// integer-valued family from its CDF. The lower bound is inclusive, so
// the mass below it is CDF(lo-1).
func logIntervalDiscrete(cdf func(float64) float64, logProb func(float64) float64, lo, hi float64) float64 {
	if lo == hi {
		return logProb(lo)
	}
	below := 0.0
	if lo >= 1 {
		below = cdf(lo - 1)
	}
	upper := 1.0
	if !math.IsInf(hi, 1) {
		upper = cdf(hi)
	}
	return math.Log(upper - below)
}
