// Package dist provides unified access to the reference distributions the
// hypothesis tests draw their p-values and critical values from.
package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Provider exposes the normal, Student's-t, chi-square, beta and binomial
// distribution functions used across the test catalog. It replaces the
// fragmented CDF approximations each test would otherwise carry.
type Provider struct{}

// New creates a new distribution provider
func New() *Provider {
	return &Provider{}
}

// NormalCDF computes the cumulative distribution function of the standard normal
func (p *Provider) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the quantile (inverse CDF) of the standard normal
func (p *Provider) NormalQuantile(q float64) float64 {
	return distuv.UnitNormal.Quantile(q)
}

// TCDF computes the CDF of Student's t-distribution with df degrees of freedom.
// Fractional degrees of freedom (Welch-Satterthwaite) are supported.
func (p *Provider) TCDF(x, df float64) float64 {
	if df <= 0 {
		return math.NaN()
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.CDF(x)
}

// TQuantile computes the quantile of Student's t-distribution with df degrees
// of freedom.
func (p *Provider) TQuantile(q, df float64) float64 {
	if df <= 0 {
		return math.NaN()
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(q)
}

// ChiSquareCDF computes the CDF of the chi-square distribution with df
// degrees of freedom.
func (p *Provider) ChiSquareCDF(x, df float64) float64 {
	if df <= 0 {
		return math.NaN()
	}
	chiDist := distuv.ChiSquared{K: df}
	return chiDist.CDF(x)
}

// ChiSquareSurvival computes the upper-tail probability of the chi-square
// distribution with df degrees of freedom.
func (p *Provider) ChiSquareSurvival(x, df float64) float64 {
	if df <= 0 {
		return math.NaN()
	}
	chiDist := distuv.ChiSquared{K: df}
	return chiDist.Survival(x)
}

// BetaQuantile computes the quantile of the beta distribution, i.e. the
// inverse of the regularized incomplete beta function. Used by the
// Clopper-Pearson exact binomial interval.
func (p *Provider) BetaQuantile(q, alpha, beta float64) float64 {
	if alpha <= 0 || beta <= 0 {
		return math.NaN()
	}
	betaDist := distuv.Beta{Alpha: alpha, Beta: beta}
	return betaDist.Quantile(q)
}

// BinomialPMF computes the probability of exactly k successes in n trials
// with per-trial success probability prob.
func (p *Provider) BinomialPMF(k, n int, prob float64) float64 {
	if k < 0 || k > n {
		return 0
	}
	// Degenerate success probabilities; distuv would hit 0*log(0) here.
	if prob == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if prob == 1 {
		if k == n {
			return 1
		}
		return 0
	}
	binDist := distuv.Binomial{N: float64(n), P: prob}
	return binDist.Prob(float64(k))
}
