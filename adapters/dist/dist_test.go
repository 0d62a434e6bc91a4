package dist

import (
	"math"
	"testing"
)

func TestPoissonProbMatchesClosedForm(t *testing.T) {
	p := NewPoisson(2)

	want := math.Exp(-2)
	if got := p.Prob(0); math.Abs(got-want) > 1e-12 {
		t.Errorf("Prob(0) = %g, want %g", got, want)
	}
	want = 2 * math.Exp(-2)
	if got := p.Prob(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Prob(1) = %g, want %g", got, want)
	}
	if p.Mean() != 2 || p.Variance() != 2 {
		t.Errorf("Mean/Variance = %g/%g, want 2/2", p.Mean(), p.Variance())
	}
}

func TestPoissonRescaleMultipliesRate(t *testing.T) {
	p := NewPoisson(1.5)
	if !p.Rescalable() {
		t.Fatal("Poisson should be rescalable")
	}
	scaled := p.Rescale(2)
	if got := scaled.Mean(); got != 3 {
		t.Errorf("rescaled mean = %g, want 3", got)
	}
	// The original expert is unchanged
	if p.Mean() != 1.5 {
		t.Errorf("original mean mutated to %g", p.Mean())
	}
}

func TestLogIntervalProbExactPointEqualsLogProb(t *testing.T) {
	p := NewPoisson(3)
	want := math.Log(p.Prob(2))
	if got := p.LogIntervalProb(2, 2); math.Abs(got-want) > 1e-12 {
		t.Errorf("LogIntervalProb(2,2) = %g, want %g", got, want)
	}
}

func TestLogIntervalProbFullSupportIsZero(t *testing.T) {
	experts := []struct {
		name   string
		expert interface {
			LogIntervalProb(lo, hi float64) float64
		}
		lo float64
	}{
		{"poisson", NewPoisson(2), 0},
		{"zip", NewZeroInflatedPoisson(0.3, 2), 0},
		{"negbinom", NewNegBinomial(5, 2), 0},
	}
	for _, tc := range experts {
		if got := tc.expert.LogIntervalProb(tc.lo, math.Inf(1)); math.Abs(got) > 1e-9 {
			t.Errorf("%s: log P(full support) = %g, want 0", tc.name, got)
		}
	}
}

func TestZeroInflatedPoissonMoments(t *testing.T) {
	z := NewZeroInflatedPoisson(0.3, 2)

	wantZero := 0.3 + 0.7*math.Exp(-2)
	if got := z.Prob(0); math.Abs(got-wantZero) > 1e-12 {
		t.Errorf("Prob(0) = %g, want %g", got, wantZero)
	}
	if got := z.Mean(); math.Abs(got-1.4) > 1e-12 {
		t.Errorf("Mean = %g, want 1.4", got)
	}
	wantVar := 0.7 * 2 * (1 + 0.3*2)
	if got := z.Variance(); math.Abs(got-wantVar) > 1e-12 {
		t.Errorf("Variance = %g, want %g", got, wantVar)
	}
}

func TestZeroInflatedPoissonRescaleKeepsInflation(t *testing.T) {
	z := NewZeroInflatedPoisson(0.3, 2)
	scaled, ok := z.Rescale(0.5).(ZeroInflatedPoisson)
	if !ok {
		t.Fatal("Rescale should return a ZeroInflatedPoisson")
	}
	if scaled.Pi != 0.3 {
		t.Errorf("inflation weight changed to %g", scaled.Pi)
	}
	if scaled.Lambda != 1 {
		t.Errorf("rate = %g, want 1", scaled.Lambda)
	}
}

func TestNegBinomialMomentsAndMass(t *testing.T) {
	nb := NewNegBinomial(5, 2)

	if got := nb.Mean(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Mean = %g, want 2", got)
	}
	wantVar := 2 + 4.0/5
	if got := nb.Variance(); math.Abs(got-wantVar) > 1e-12 {
		t.Errorf("Variance = %g, want %g", got, wantVar)
	}

	var total float64
	for k := 0; k <= 200; k++ {
		total += nb.Prob(float64(k))
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("pmf total over 0..200 = %g, want 1", total)
	}

	if got := nb.Prob(-1); got != 0 {
		t.Errorf("Prob(-1) = %g, want 0", got)
	}
	if got := nb.Prob(1.5); got != 0 {
		t.Errorf("Prob(1.5) = %g, want 0", got)
	}
}

func TestNegBinomialRescaleKeepsDispersion(t *testing.T) {
	nb := NewNegBinomial(5, 2)
	scaled, ok := nb.Rescale(3).(NegBinomial)
	if !ok {
		t.Fatal("Rescale should return a NegBinomial")
	}
	if scaled.Mu != 6 || scaled.R != 5 {
		t.Errorf("rescaled to R=%g Mu=%g, want R=5 Mu=6", scaled.R, scaled.Mu)
	}
}

func TestSeverityFamiliesAreNotRescalable(t *testing.T) {
	ln := NewLogNormal(0, 1)
	ig := NewInverseGaussian(2, 4)
	g := NewGamma(2, 0.5)

	if ln.Rescalable() || ig.Rescalable() || g.Rescalable() {
		t.Fatal("severity families must not be rescalable")
	}
	if ln.Rescale(2) != ln {
		t.Error("LogNormal.Rescale should be a no-op")
	}
	if ig.Rescale(2) != ig {
		t.Error("InverseGaussian.Rescale should be a no-op")
	}
	if g.Rescale(2) != g {
		t.Error("Gamma.Rescale should be a no-op")
	}
}

func TestSeverityMoments(t *testing.T) {
	ln := NewLogNormal(0, 0.5)
	wantMean := math.Exp(0.125)
	if got := ln.Mean(); math.Abs(got-wantMean) > 1e-12 {
		t.Errorf("LogNormal mean = %g, want %g", got, wantMean)
	}

	ig := NewInverseGaussian(2, 4)
	if got := ig.Mean(); got != 2 {
		t.Errorf("InverseGaussian mean = %g, want 2", got)
	}
	// Var = Mu^3 / Lambda
	if got := ig.Variance(); math.Abs(got-2) > 1e-12 {
		t.Errorf("InverseGaussian variance = %g, want 2", got)
	}

	g := NewGamma(2, 0.5)
	if got := g.Mean(); math.Abs(got-4) > 1e-12 {
		t.Errorf("Gamma mean = %g, want 4", got)
	}
	if got := g.Variance(); math.Abs(got-8) > 1e-12 {
		t.Errorf("Gamma variance = %g, want 8", got)
	}
}

func TestInverseGaussianClosedForms(t *testing.T) {
	// At x = Mu with Mu == Lambda == 1 the density is 1/sqrt(2*pi)
	standard := NewInverseGaussian(1, 1)
	want := 1 / math.Sqrt(2*math.Pi)
	if got := standard.Prob(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Prob(1) = %g, want %g", got, want)
	}
	if got := standard.Prob(-1); got != 0 {
		t.Errorf("Prob(-1) = %g, want 0", got)
	}

	ig := NewInverseGaussian(2, 4)

	// Interval mass must agree with numerical integration of the density
	wantMass := numericIntegral(ig.Prob, 0.5, 6, 20000)
	gotMass := math.Exp(ig.LogIntervalProb(0.5, 6))
	if math.Abs(gotMass-wantMass) > 1e-6 {
		t.Errorf("interval mass = %g, integral = %g", gotMass, wantMass)
	}

	// Nearly all mass lies in (0, 40) for these parameters
	total := numericIntegral(ig.Prob, 1e-9, 40, 40000)
	if math.Abs(total-1) > 1e-6 {
		t.Errorf("density integrates to %g, want 1", total)
	}

	// Right-censored interval is the survival mass
	censored := math.Exp(ig.LogIntervalProb(3, math.Inf(1)))
	remainder := 1 - math.Exp(ig.LogIntervalProb(0, 3))
	if math.Abs(censored-remainder) > 1e-9 {
		t.Errorf("censored mass %g does not complement %g", censored, remainder)
	}
}

func TestContinuousIntervalProbMatchesCDFDifference(t *testing.T) {
	g := NewGamma(2, 0.5)

	// P(1 <= X <= 5) via interval mass against numerical integration of
	// the density.
	want := numericIntegral(g.Prob, 1, 5, 20000)
	got := math.Exp(g.LogIntervalProb(1, 5))
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("interval mass = %g, integral = %g", got, want)
	}

	// Right-censored interval is the survival mass
	censored := math.Exp(g.LogIntervalProb(3, math.Inf(1)))
	remainder := 1 - math.Exp(g.LogIntervalProb(0, 3))
	if math.Abs(censored-remainder) > 1e-9 {
		t.Errorf("censored mass %g does not complement %g", censored, remainder)
	}
}

func numericIntegral(f func(float64) float64, lo, hi float64, steps int) float64 {
	h := (hi - lo) / float64(steps)
	total := (f(lo) + f(hi)) / 2
	for i := 1; i < steps; i++ {
		total += f(lo + float64(i)*h)
	}
	return total * h
}
