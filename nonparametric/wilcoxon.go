package nonparametric

import (
	"math"

	"hypotest/dist"
	"hypotest/domain/core"
	"hypotest/domain/stats"
	"hypotest/rank"
)

// WilcoxonOptions parameterizes a WilcoxonTest.
type WilcoxonOptions struct {
	// Y2 is the second sample for the paired design.
	Y2 []float64
	// Paired selects the paired-difference design; requires Y2 of equal
	// length to y1.
	Paired bool
	// Mu is the null median subtracted from a single sample (default 0).
	Mu float64
	// Alternative selects the alternative hypothesis tag.
	Alternative stats.Alternative
}

// WilcoxonTest is a fitted one-sample or paired signed-rank test using the
// normal approximation.
type WilcoxonTest struct {
	N           int
	Paired      bool
	Mu          float64
	Alternative stats.Alternative

	// V is the sum of the ranks of the absolute differences whose signed
	// difference is positive.
	V          float64
	Z          float64
	PValue     float64
	EffectSize float64

	provider *dist.Provider
}

// NewWilcoxonTest fits a signed-rank test over y1 (against the null median
// mu) or, when paired, over the per-index differences y1-y2.
func NewWilcoxonTest(y1 []float64, opts WilcoxonOptions) (*WilcoxonTest, error) {
	if len(y1) == 0 {
		return nil, core.ErrEmptyVector
	}

	alternative := opts.Alternative.OrDefault()
	if !alternative.Valid() {
		return nil, core.NewInvalidParameterError("alternative", "must be one of 'two-sided', 'greater', or 'less'")
	}

	wt := &WilcoxonTest{
		Paired:      opts.Paired,
		Mu:          opts.Mu,
		Alternative: alternative,
		provider:    dist.New(),
	}

	var signed []float64
	if opts.Paired {
		if opts.Y2 == nil {
			return nil, core.NewInvalidParameterError("y2", "second sample is missing for paired test")
		}
		if len(y1) != len(opts.Y2) {
			return nil, core.NewShapeMismatchError("paired samples", len(y1), len(opts.Y2))
		}
		signed = make([]float64, len(y1))
		for i := range y1 {
			signed[i] = y1[i] - opts.Y2[i]
		}
	} else {
		signed = make([]float64, len(y1))
		for i := range y1 {
			signed[i] = y1[i] - opts.Mu
		}
	}
	wt.N = len(signed)

	if err := wt.compute(signed); err != nil {
		return nil, err
	}

	return wt, nil
}

// compute ranks the absolute differences, sums the ranks of the positive
// differences into V, and applies the normal approximation.
func (wt *WilcoxonTest) compute(signed []float64) error {
	unsigned := make([]float64, len(signed))
	for i, v := range signed {
		unsigned[i] = math.Abs(v)
	}

	ranks, err := rank.Average(unsigned)
	if err != nil {
		return err
	}

	for i, r := range ranks {
		if signed[i] > 0 {
			wt.V += r
		}
	}

	n := float64(wt.N)
	sigmaW := math.Sqrt(n * (n + 1) * (2*n + 1) / 6)
	wt.Z = wt.V / sigmaW

	p := 1 - wt.provider.NormalCDF(math.Abs(wt.Z))
	switch wt.Alternative {
	case stats.TwoSided:
		p *= 2
	case stats.Greater:
		p = 1 - p
	}
	if p == 0 {
		p = stats.Epsilon
	}
	wt.PValue = p

	wt.EffectSize = math.Abs(wt.Z) / math.Sqrt(n)

	return nil
}

// Summary returns the fitted test's named-field mapping.
func (wt *WilcoxonTest) Summary() stats.Summary {
	return stats.Summary{
		"V":                wt.V,
		"z-value":          wt.Z,
		"p-value":          wt.PValue,
		"effect size":      wt.EffectSize,
		"test description": "Wilcoxon signed rank test",
	}
}
