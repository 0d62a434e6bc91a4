package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"lossmix/domain/model"
)

// ZeroInflatedPoisson mixes a point mass at zero (weight Pi) with a
// Poisson(Lambda) component, the standard family for count data with
// excess zeros.
type ZeroInflatedPoisson struct {
	Pi     float64 // Zero-inflation weight, 0 <= Pi < 1
	Lambda float64 // Poisson rate of the count component
}

// NewZeroInflatedPoisson creates a zero-inflated Poisson expert
func NewZeroInflatedPoisson(pi, lambda float64) ZeroInflatedPoisson {
	return ZeroInflatedPoisson{Pi: pi, Lambda: lambda}
}

func (d ZeroInflatedPoisson) dist() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda}
}

// Mean returns the distribution mean
func (d ZeroInflatedPoisson) Mean() float64 {
	return (1 - d.Pi) * d.Lambda
}

// Variance returns the distribution variance
func (d ZeroInflatedPoisson) Variance() float64 {
	return (1 - d.Pi) * d.Lambda * (1 + d.Pi*d.Lambda)
}

// Prob returns the probability mass at k
func (d ZeroInflatedPoisson) Prob(k float64) float64 {
	if k == 0 {
		return d.Pi + (1-d.Pi)*d.dist().Prob(0)
	}
	return (1 - d.Pi) * d.dist().Prob(k)
}

// cdf is P(X <= k): the inflated zero mass plus the deflated Poisson mass
func (d ZeroInflatedPoisson) cdf(k float64) float64 {
	if k < 0 {
		return 0
	}
	return d.Pi + (1-d.Pi)*d.dist().CDF(k)
}

// LogIntervalProb returns log P(lo <= X <= hi)
func (d ZeroInflatedPoisson) LogIntervalProb(lo, hi float64) float64 {
	return logIntervalDiscrete(d.cdf, func(k float64) float64 {
		return math.Log(d.Prob(k))
	}, lo, hi)
}

// Rescalable reports that the count component is a rate family
func (d ZeroInflatedPoisson) Rescalable() bool {
	return true
}

// Rescale scales the Poisson rate by the exposure factor; the
// zero-inflation weight is exposure-invariant.
func (d ZeroInflatedPoisson) Rescale(exposure float64) model.Expert {
	return ZeroInflatedPoisson{Pi: d.Pi, Lambda: d.Lambda * exposure}
}
