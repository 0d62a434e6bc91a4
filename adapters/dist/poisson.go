package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"lossmix/domain/model"
)

// Poisson is the Poisson count family. Lambda is the event rate per
// unit exposure.
type Poisson struct {
	Lambda float64
}

// NewPoisson creates a Poisson expert with the given rate
func NewPoisson(lambda float64) Poisson {
	return Poisson{Lambda: lambda}
}

func (d Poisson) dist() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda}
}

// Mean returns the distribution mean
func (d Poisson) Mean() float64 {
	return d.Lambda
}

// Variance returns the distribution variance
func (d Poisson) Variance() float64 {
	return d.Lambda
}

// Prob returns the probability mass at k
func (d Poisson) Prob(k float64) float64 {
	return d.dist().Prob(k)
}

// LogIntervalProb returns log P(lo <= X <= hi)
func (d Poisson) LogIntervalProb(lo, hi float64) float64 {
	p := d.dist()
	return logIntervalDiscrete(p.CDF, p.LogProb, lo, hi)
}

// Rescalable reports that Poisson is a rate family
func (d Poisson) Rescalable() bool {
	return true
}

// Rescale returns a Poisson with rate scaled by the exposure factor
func (d Poisson) Rescale(exposure float64) model.Expert {
	return Poisson{Lambda: d.Lambda * exposure}
}
