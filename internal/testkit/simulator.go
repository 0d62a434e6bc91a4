// Package testkit generates synthetic loss data with known latent
// structure for tests: covariates, true class memberships, and
// outcomes drawn from per-class distributions. Because the true
// coefficients and expert parameters are known, tests can check
// predictions against analytic values instead of golden files.
package testkit

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"lossmix/domain/model"
)

// Simulator is a deterministic synthetic-data source
type Simulator struct {
	rng *rand.Rand
	src rand.Source
}

// NewSimulator creates a simulator seeded for reproducible draws
func NewSimulator(seed uint64) *Simulator {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Simulator{rng: rand.New(src), src: src}
}

// Population is one simulated batch with its latent ground truth
type Population struct {
	Covariates model.CovariateMatrix
	Outcomes   []float64
	Exposure   []float64
	Classes    []int // True latent class per observation
}

// Covariates generates a design matrix with an explicit intercept
// column of 1.0 and standard-normal regressors for the remaining
// columns.
func (s *Simulator) Covariates(n, dim int) model.CovariateMatrix {
	names := make([]string, dim)
	names[0] = "intercept"
	for j := 1; j < dim; j++ {
		names[j] = fmt.Sprintf("x%d", j)
	}

	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, dim)
		row[0] = 1
		for j := 1; j < dim; j++ {
			row[j] = s.rng.NormFloat64()
		}
		rows[i] = row
	}
	covariates, _ := model.NewCovariateMatrix(names, rows)
	return covariates
}

// GenerateCounts simulates count outcomes from a latent-class Poisson
// mixture: class membership follows the softmax of the true
// coefficients, and each outcome is drawn from that class's rate
// scaled by exposure. withExposure draws exposure uniformly in
// [0.5, 1.5]; otherwise every observation has unit exposure.
func (s *Simulator) GenerateCounts(n int, coefficients model.CoefficientMatrix, lambdas []float64, withExposure bool) (Population, error) {
	if len(lambdas) != coefficients.Classes() {
		return Population{}, fmt.Errorf("need %d class rates, got %d", coefficients.Classes(), len(lambdas))
	}
	covariates := s.Covariates(n, coefficients.Covariates())

	exposure := make([]float64, n)
	outcomes := make([]float64, n)
	classes := make([]int, n)
	for i := 0; i < n; i++ {
		exposure[i] = 1
		if withExposure {
			exposure[i] = 0.5 + s.rng.Float64()
		}
		classes[i] = s.drawClass(softmaxPriors(coefficients, covariates.Row(i)))
		outcomes[i] = distuv.Poisson{Lambda: lambdas[classes[i]] * exposure[i], Src: s.src}.Rand()
	}

	return Population{
		Covariates: covariates,
		Outcomes:   outcomes,
		Exposure:   exposure,
		Classes:    classes,
	}, nil
}

// GenerateSeverities draws log-normal loss amounts, the continuous
// counterpart used by interval-encoding tests.
func (s *Simulator) GenerateSeverities(n int, mu, sigma float64) []float64 {
	ln := distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = ln.Rand()
	}
	return out
}

// softmaxPriors computes true membership probabilities from the true
// coefficients. Kept local so the data source has no dependency on
// the prediction engine it is used to test.
func softmaxPriors(coefficients model.CoefficientMatrix, row []float64) []float64 {
	k := coefficients.Classes()
	prior := make([]float64, k)
	var total float64
	for class := 0; class < k; class++ {
		prior[class] = math.Exp(coefficients.Score(class, row))
		total += prior[class]
	}
	for class := range prior {
		prior[class] /= total
	}
	return prior
}

// drawClass samples a class index from a prior vector
func (s *Simulator) drawClass(prior []float64) int {
	u := s.rng.Float64()
	var cum float64
	for class, p := range prior {
		cum += p
		if u < cum {
			return class
		}
	}
	return len(prior) - 1
}
