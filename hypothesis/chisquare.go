package hypothesis

import (
	"math"

	montstats "github.com/montanaflynn/stats"

	"hypotest/dist"
	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// ChiSquareOptions parameterizes a ChiSquareTest.
type ChiSquareOptions struct {
	// Expected holds the expected cell counts. When nil, every cell
	// defaults to the mean of the observed vector (uniform-fit null).
	Expected []float64
	// Continuity applies the Yates 0.5 correction to each cell.
	Continuity bool
	// DegreesOfFreedom is caller-supplied and defaults to 1. It is
	// deliberately not derived from the category count; callers wanting
	// the classical k-1 convention must pass it explicitly.
	DegreesOfFreedom int
}

// DefaultChiSquareOptions returns the canonical defaults: uniform expected
// counts, continuity correction on, one degree of freedom.
func DefaultChiSquareOptions() ChiSquareOptions {
	return ChiSquareOptions{Continuity: true, DegreesOfFreedom: 1}
}

// ChiSquareTest is a fitted one-sample chi-square goodness-of-fit test.
type ChiSquareTest struct {
	Observed         []float64
	Expected         []float64
	Continuity       bool
	DegreesOfFreedom int
	N                int

	ChiSquare float64
	PValue    float64

	provider *dist.Provider
}

// NewChiSquareTest performs a one-sample chi-square goodness-of-fit test of
// the observed counts against the expected counts.
func NewChiSquareTest(observed []float64, opts ChiSquareOptions) (*ChiSquareTest, error) {
	if len(observed) == 0 {
		return nil, core.ErrEmptyVector
	}

	expected := opts.Expected
	if expected == nil {
		mean, err := montstats.Mean(observed)
		if err != nil {
			return nil, err
		}
		expected = make([]float64, len(observed))
		for i := range expected {
			expected[i] = mean
		}
	} else if len(observed) != len(expected) {
		return nil, core.NewShapeMismatchError("observed vs expected counts", len(observed), len(expected))
	}

	df := opts.DegreesOfFreedom
	if df == 0 {
		df = 1
	}
	if df < 0 {
		return nil, core.NewInvalidParameterError("degrees of freedom", "cannot be negative")
	}

	ct := &ChiSquareTest{
		Observed:         observed,
		Expected:         expected,
		Continuity:       opts.Continuity,
		DegreesOfFreedom: df,
		N:                len(observed),
		provider:         dist.New(),
	}

	ct.ChiSquare = ct.statistic()
	// Lower-tail CDF convention, deliberately not the survival function.
	ct.PValue = ct.provider.ChiSquareCDF(ct.ChiSquare, float64(ct.DegreesOfFreedom))

	return ct, nil
}

// statistic computes sum((|observed - expected| - 0.5*continuity)^2 / expected).
func (ct *ChiSquareTest) statistic() float64 {
	correction := 0.0
	if ct.Continuity {
		correction = 0.5
	}

	var x2 float64
	for i := range ct.Observed {
		dev := math.Abs(ct.Observed[i]-ct.Expected[i]) - correction
		x2 += dev * dev / ct.Expected[i]
	}

	return x2
}

// Summary returns the fitted test's named-field mapping.
func (ct *ChiSquareTest) Summary() stats.Summary {
	return stats.Summary{
		"chi-square":            ct.ChiSquare,
		"p-value":               ct.PValue,
		"degrees of freedom":    ct.DegreesOfFreedom,
		"continuity correction": ct.Continuity,
		"test description":      "Chi-square goodness-of-fit test",
	}
}
