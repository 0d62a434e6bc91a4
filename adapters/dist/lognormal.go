package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"lossmix/domain/model"
)

// LogNormal is the log-normal severity family: log X is normal with
// location Mu and scale Sigma.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

// NewLogNormal creates a log-normal expert
func NewLogNormal(mu, sigma float64) LogNormal {
	return LogNormal{Mu: mu, Sigma: sigma}
}

func (d LogNormal) dist() distuv.LogNormal {
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}
}

// Mean returns the distribution mean
func (d LogNormal) Mean() float64 {
	return d.dist().Mean()
}

// Variance returns the distribution variance
func (d LogNormal) Variance() float64 {
	return d.dist().Variance()
}

// Prob returns the probability density at x
func (d LogNormal) Prob(x float64) float64 {
	return d.dist().Prob(x)
}

// LogIntervalProb returns log P(lo <= X <= hi)
func (d LogNormal) LogIntervalProb(lo, hi float64) float64 {
	ln := d.dist()
	return logIntervalContinuous(ln.CDF, ln.LogProb, lo, hi)
}

// Rescalable reports that severity families carry no exposure rate
func (d LogNormal) Rescalable() bool {
	return false
}

// Rescale is a no-op for severity families
func (d LogNormal) Rescale(exposure float64) model.Expert {
	return d
}
