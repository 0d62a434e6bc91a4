package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"lossmix/domain/model"
)

// NegBinomial is the negative binomial count family in its
// Gamma-Poisson (overdispersed count) form: R is the dispersion
// (size) parameter and Mu the mean. Variance is Mu + Mu^2/R, so the
// family reduces to Poisson as R grows.
type NegBinomial struct {
	R  float64 // Dispersion parameter, R > 0
	Mu float64 // Mean, Mu > 0
}

// NewNegBinomial creates a negative binomial expert from dispersion
// and mean.
func NewNegBinomial(r, mu float64) NegBinomial {
	return NegBinomial{R: r, Mu: mu}
}

// p is the success probability of the classical parameterization
func (d NegBinomial) p() float64 {
	return d.R / (d.R + d.Mu)
}

// Mean returns the distribution mean
func (d NegBinomial) Mean() float64 {
	return d.Mu
}

// Variance returns the distribution variance
func (d NegBinomial) Variance() float64 {
	return d.Mu + d.Mu*d.Mu/d.R
}

// logProb is computed through log-gamma to stay stable for large
// counts and non-integer dispersion.
func (d NegBinomial) logProb(k float64) float64 {
	if k < 0 || k != math.Floor(k) {
		return math.Inf(-1)
	}
	p := d.p()
	lg1, _ := math.Lgamma(k + d.R)
	lg2, _ := math.Lgamma(k + 1)
	lg3, _ := math.Lgamma(d.R)
	return lg1 - lg2 - lg3 + d.R*math.Log(p) + k*math.Log(1-p)
}

// Prob returns the probability mass at k
func (d NegBinomial) Prob(k float64) float64 {
	return math.Exp(d.logProb(k))
}

// cdf is P(X <= k) via the regularized incomplete beta function
func (d NegBinomial) cdf(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return mathext.RegIncBeta(d.R, k+1, d.p())
}

// LogIntervalProb returns log P(lo <= X <= hi)
func (d NegBinomial) LogIntervalProb(lo, hi float64) float64 {
	return logIntervalDiscrete(d.cdf, d.logProb, lo, hi)
}

// Rescalable reports that the mean scales with exposure
func (d NegBinomial) Rescalable() bool {
	return true
}

// Rescale scales the mean by the exposure factor while keeping the
// dispersion parameter fixed.
func (d NegBinomial) Rescale(exposure float64) model.Expert {
	return NegBinomial{R: d.R, Mu: d.Mu * exposure}
}
