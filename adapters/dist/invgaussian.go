package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"lossmix/domain/model"
)

// InverseGaussian is the inverse Gaussian (Wald) severity family with
// mean Mu and shape Lambda. distuv has no Wald distribution, so the
// density and CDF use the closed forms; the CDF's normal terms go
// through distuv.UnitNormal.
type InverseGaussian struct {
	Mu     float64
	Lambda float64
}

// NewInverseGaussian creates an inverse Gaussian expert
func NewInverseGaussian(mu, lambda float64) InverseGaussian {
	return InverseGaussian{Mu: mu, Lambda: lambda}
}

// Mean returns the distribution mean
func (d InverseGaussian) Mean() float64 {
	return d.Mu
}

// Variance returns the distribution variance
func (d InverseGaussian) Variance() float64 {
	return d.Mu * d.Mu * d.Mu / d.Lambda
}

func (d InverseGaussian) logProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	dev := x - d.Mu
	return 0.5*math.Log(d.Lambda/(2*math.Pi*x*x*x)) - d.Lambda*dev*dev/(2*d.Mu*d.Mu*x)
}

// Prob returns the probability density at x
func (d InverseGaussian) Prob(x float64) float64 {
	return math.Exp(d.logProb(x))
}

// cdf is P(X <= x): Phi(sqrt(L/x)(x/Mu-1)) + exp(2L/Mu)*Phi(-sqrt(L/x)(x/Mu+1))
func (d InverseGaussian) cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	a := math.Sqrt(d.Lambda / x)
	return distuv.UnitNormal.CDF(a*(x/d.Mu-1)) +
		math.Exp(2*d.Lambda/d.Mu)*distuv.UnitNormal.CDF(-a*(x/d.Mu+1))
}

// LogIntervalProb returns log P(lo <= X <= hi)
func (d InverseGaussian) LogIntervalProb(lo, hi float64) float64 {
	return logIntervalContinuous(d.cdf, d.logProb, lo, hi)
}

// Rescalable reports that severity families carry no exposure rate
func (d InverseGaussian) Rescalable() bool {
	return false
}

// Rescale is a no-op for severity families
func (d InverseGaussian) Rescale(exposure float64) model.Expert {
	return d
}
