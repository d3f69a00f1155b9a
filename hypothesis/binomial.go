// Package hypothesis implements the classical one- and two-sample
// hypothesis tests: the exact binomial test, the chi-square goodness-of-fit
// test and Student's/Welch's t-test. Each test validates its inputs at
// construction, computes every derived quantity eagerly in dependency order
// and is immutable afterwards.
package hypothesis

import (
	"math"

	"hypotest/dist"
	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// BinomialOptions parameterizes a BinomialTest.
type BinomialOptions struct {
	// P is the null hypothesis success probability.
	P float64
	// Alternative selects the alternative hypothesis tag.
	Alternative stats.Alternative
	// Alpha is the significance level for the interval estimators.
	Alpha float64
	// Continuity selects the continuity-corrected Wilson score variant.
	Continuity bool
}

// DefaultBinomialOptions returns the canonical defaults: p=0.5, two-sided,
// alpha=0.05, continuity correction on.
func DefaultBinomialOptions() BinomialOptions {
	return BinomialOptions{
		P:           0.5,
		Alternative: stats.TwoSided,
		Alpha:       0.05,
		Continuity:  true,
	}
}

// BinomialTest is a fitted one-sample exact binomial test with its four
// interval estimators.
type BinomialTest struct {
	X           int
	N           int
	P           float64
	Q           float64
	Alpha       float64
	Alternative stats.Alternative
	Continuity  bool

	// PValue is the exact binomial tail probability.
	PValue float64
	// Z is the normal quantile at 1-alpha/2 shared by the interval estimators.
	Z float64

	ClopperPearson   stats.Interval
	WilsonScore      stats.Interval
	AgrestiCoull     stats.Interval
	ArcsineTransform stats.Interval
	// ArcsineVariance is the variance of the transformed probability
	// reported alongside the arcsine interval.
	ArcsineVariance float64

	provider *dist.Provider
}

// NewBinomialTest performs an exact one-sample binomial test of x successes
// in n trials against the null probability in opts.
func NewBinomialTest(x, n int, opts BinomialOptions) (*BinomialTest, error) {
	if x < 0 {
		return nil, core.NewInvalidParameterError("successes", "cannot be negative")
	}
	if x > n {
		return nil, core.NewInvalidParameterError("successes", "cannot be greater than number of trials")
	}
	if opts.P > 1.0 || opts.P < 0.0 {
		return nil, core.NewInvalidParameterError("probability of success", "must be between 0 and 1")
	}
	alternative := opts.Alternative.OrDefault()
	if !alternative.Valid() {
		return nil, core.NewInvalidParameterError("alternative", "must be one of 'two-sided', 'greater', or 'less'")
	}
	alpha := opts.Alpha
	if alpha <= 0 {
		alpha = 0.05
	}

	bt := &BinomialTest{
		X:           x,
		N:           n,
		P:           opts.P,
		Q:           1.0 - opts.P,
		Alpha:       alpha,
		Alternative: alternative,
		Continuity:  opts.Continuity,
		provider:    dist.New(),
	}

	bt.PValue = bt.pValue()
	bt.Z = bt.provider.NormalQuantile(1 - bt.Alpha/2)
	bt.ClopperPearson = bt.clopperPearsonInterval()
	bt.WilsonScore = bt.wilsonScoreInterval()
	bt.AgrestiCoull = bt.agrestiCoullInterval()
	bt.ArcsineTransform = bt.arcsineTransformInterval()

	return bt, nil
}

// pValue sums the binomial pmf over the observed tail k=0..x. For the
// two-sided alternative the opposite tail contributes every outcome whose
// pmf does not exceed the pmf at x; the discrete distribution is not
// symmetric, so this is not a doubling rule.
func (bt *BinomialTest) pValue() float64 {
	var pval float64
	for k := 0; k <= bt.X; k++ {
		pval += bt.provider.BinomialPMF(k, bt.N, bt.P)
	}

	if bt.Alternative == stats.TwoSided {
		// Relative slack keeps equal-probability outcomes in the opposite
		// tail from being excluded by a one-ulp rounding difference.
		observed := bt.provider.BinomialPMF(bt.X, bt.N, bt.P) * (1 + 1e-7)
		for k := bt.X + 1; k <= bt.N; k++ {
			if pmf := bt.provider.BinomialPMF(k, bt.N, bt.P); pmf <= observed {
				pval += pmf
			}
		}
	}

	return pval
}

// clopperPearsonInterval computes the exact interval from the inverse
// regularized incomplete beta function at (x, n-x+1) and (x+1, n-x).
func (bt *BinomialTest) clopperPearsonInterval() stats.Interval {
	phat := float64(bt.X) / float64(bt.N)

	lower := 0.0
	if bt.X > 0 {
		lower = bt.provider.BetaQuantile(bt.Alpha/2, float64(bt.X), float64(bt.N-bt.X+1))
	}
	upper := 1.0
	if bt.X < bt.N {
		upper = bt.provider.BetaQuantile(1-bt.Alpha/2, float64(bt.X+1), float64(bt.N-bt.X))
	}

	return stats.Interval{Estimate: phat, Lower: lower, Upper: upper}
}

// wilsonScoreInterval computes the Wilson score interval around the null
// probability, with the continuity-corrected algebraic variant when the
// continuity flag is set. Bounds are clipped to [0, 1].
func (bt *BinomialTest) wilsonScoreInterval() stats.Interval {
	n, p, q, z := float64(bt.N), bt.P, bt.Q, bt.Z

	estimate := (p + z*z/(2*n)) / (1 + z*z/n)

	var lower, upper float64
	if bt.Continuity {
		root := math.Sqrt(z*z - 1/n + 4*n*p*q + (4*p - 2) + 1)
		lower = (2*n*p + z*z - z*root) / (2 * (n + z*z))
		upper = (2*n*p + z*z + z*root) / (2 * (n + z*z))
		lower = math.Max(0.0, lower)
		upper = math.Min(1.0, upper)
	} else {
		bound := (z / (1 + z*z/n)) * math.Sqrt(p*q/n+z*z/(4*n*n))
		lower, upper = estimate-bound, estimate+bound
	}

	return stats.Interval{Estimate: estimate, Lower: lower, Upper: upper}
}

// agrestiCoullInterval computes the adjusted-count normal approximation
// using nbar = n + z^2.
func (bt *BinomialTest) agrestiCoullInterval() stats.Interval {
	z := bt.Z
	nbar := float64(bt.N) + z*z

	estimate := (float64(bt.X) + z*z/2) / nbar
	bound := z * math.Sqrt((estimate/nbar)*(1-estimate))

	return stats.Interval{Estimate: estimate, Lower: estimate - bound, Upper: estimate + bound}
}

// arcsineTransformInterval computes the variance-stabilizing arcsine
// interval around the sample proportion.
func (bt *BinomialTest) arcsineTransformInterval() stats.Interval {
	n := float64(bt.N)
	phat := bt.ClopperPearson.Estimate

	bt.ArcsineVariance = phat * (1 - phat) / n

	center := math.Asin(math.Sqrt(phat))
	shift := bt.Z / (2 * math.Sqrt(n))

	lower := math.Pow(math.Sin(center-shift), 2)
	upper := math.Pow(math.Sin(center+shift), 2)

	return stats.Interval{Estimate: phat, Lower: lower, Upper: upper}
}

// Summary returns the aggregate result mapping, with the four interval
// estimators nested under "intervals" keyed by method name.
func (bt *BinomialTest) Summary() stats.Summary {
	return stats.Summary{
		"Number of Successes": bt.X,
		"Number of Trials":    bt.N,
		"p-value":             bt.PValue,
		"alpha":               bt.Alpha,
		"alternative":         string(bt.Alternative),
		"intervals": map[string]stats.Interval{
			"Clopper-Pearson":   bt.ClopperPearson,
			"Wilson Score":      bt.WilsonScore,
			"Agresti-Coull":     bt.AgrestiCoull,
			"Arcsine Transform": bt.ArcsineTransform,
		},
		"test description": "Binomial exact test",
	}
}
