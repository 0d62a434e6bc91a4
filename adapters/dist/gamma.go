package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"lossmix/domain/model"
)

// Gamma is the gamma severity family with shape Alpha and rate Beta.
type Gamma struct {
	Alpha float64
	Beta  float64
}

// NewGamma creates a gamma expert
func NewGamma(alpha, beta float64) Gamma {
	return Gamma{Alpha: alpha, Beta: beta}
}

func (d Gamma) dist() distuv.Gamma {
	return distuv.Gamma{Alpha: d.Alpha, Beta: d.Beta}
}

// Mean returns the distribution mean
func (d Gamma) Mean() float64 {
	return d.Alpha / d.Beta
}

// Variance returns the distribution variance
func (d Gamma) Variance() float64 {
	return d.Alpha / (d.Beta * d.Beta)
}

// Prob returns the probability density at x
func (d Gamma) Prob(x float64) float64 {
	return d.dist().Prob(x)
}

// LogIntervalProb returns log P(lo <= X <= hi)
func (d Gamma) LogIntervalProb(lo, hi float64) float64 {
	g := d.dist()
	return logIntervalContinuous(g.CDF, g.LogProb, lo, hi)
}

// Rescalable reports that severity families carry no exposure rate
func (d Gamma) Rescalable() bool {
	return false
}

// Rescale is a no-op for severity families
func (d Gamma) Rescale(exposure float64) model.Expert {
	return d
}
