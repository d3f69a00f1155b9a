package nonparametric

import (
	"math"

	"hypotest/dist"
	"hypotest/domain/core"
	"hypotest/domain/stats"
	"hypotest/rank"
)

// MannWhitneyOptions parameterizes a MannWhitney test.
type MannWhitneyOptions struct {
	// Y2 is the second independent sample. Mutually exclusive with Group.
	Y2 []float64
	// Group is an optional two-label vector over y1 as an alternative to Y2.
	Group []string
	// Continuity applies the 0.5 correction to the mean rank.
	Continuity bool
}

// DefaultMannWhitneyOptions returns the canonical defaults: continuity
// correction on.
func DefaultMannWhitneyOptions() MannWhitneyOptions {
	return MannWhitneyOptions{Continuity: true}
}

// MannWhitney is a fitted two-sample rank-sum U-test using the normal
// approximation.
type MannWhitney struct {
	N1         int
	N2         int
	N          int
	Continuity bool

	// U is the test statistic, the smaller of U1 and U2.
	U  float64
	U1 float64
	U2 float64
	// MeanRank is n1*n2/2 plus the continuity correction.
	MeanRank float64
	// Sigma is the tie-adjusted standard deviation of U.
	Sigma      float64
	Z          float64
	PValue     float64
	EffectSize float64

	provider *dist.Provider
}

// NewMannWhitney fits a Mann-Whitney U-test of y1 against the second sample
// in opts, obtained either directly from Y2 or by splitting y1 with a
// two-label group vector.
func NewMannWhitney(y1 []float64, opts MannWhitneyOptions) (*MannWhitney, error) {
	if len(y1) == 0 {
		return nil, core.ErrEmptyVector
	}

	var sample1, sample2 []float64
	switch {
	case opts.Group != nil:
		if opts.Y2 != nil {
			return nil, core.ErrAmbiguousInput
		}
		groups, err := rank.SplitGroups(y1, opts.Group, 2)
		if err != nil {
			return nil, err
		}
		if len(groups) != 2 {
			return nil, core.NewCardinalityError(len(groups), 2)
		}
		sample1, sample2 = groups[0].Values, groups[1].Values
	case opts.Y2 != nil:
		sample1, sample2 = y1, opts.Y2
	default:
		return nil, core.NewInvalidParameterError("y2", "second sample is required")
	}

	mw := &MannWhitney{
		N1:         len(sample1),
		N2:         len(sample2),
		N:          len(sample1) + len(sample2),
		Continuity: opts.Continuity,
		provider:   dist.New(),
	}

	combined := make([]float64, 0, mw.N)
	combined = append(combined, sample1...)
	combined = append(combined, sample2...)

	ranks, err := rank.Average(combined)
	if err != nil {
		return nil, err
	}

	if err := mw.compute(ranks); err != nil {
		return nil, err
	}

	return mw, nil
}

// compute derives U, the mean rank, the tie-adjusted sigma, z, the
// two-sided normal p-value and the effect size, in that order.
func (mw *MannWhitney) compute(ranks []float64) error {
	n1 := float64(mw.N1)
	n2 := float64(mw.N2)
	n := float64(mw.N)

	var rankSum1 float64
	for _, r := range ranks[:mw.N1] {
		rankSum1 += r
	}

	mw.U1 = n1*n2 + n1*(n1+1)/2 - rankSum1
	mw.U2 = n1*n2 - mw.U1
	mw.U = math.Min(mw.U1, mw.U2)

	mw.MeanRank = n1 * n2 / 2
	if mw.Continuity {
		mw.MeanRank += 0.5
	}

	// sigma = sqrt(n1*n2*(n+1)/12 * (1 - sum(t^3-t)/(n^3-n)))
	correction, err := rank.TieCorrection(ranks)
	if err != nil {
		return err
	}
	mw.Sigma = math.Sqrt(n1 * n2 * (n + 1) / 12 * correction)

	mw.Z = math.Abs(mw.U-mw.MeanRank) / mw.Sigma
	mw.PValue = 2 * (1 - mw.provider.NormalCDF(mw.Z))
	mw.EffectSize = math.Abs(mw.Z) / math.Sqrt(n)

	return nil
}

// Summary returns the fitted test's named-field mapping.
func (mw *MannWhitney) Summary() stats.Summary {
	return stats.Summary{
		"U":                mw.U,
		"mu meanrank":      mw.MeanRank,
		"sigma":            mw.Sigma,
		"z-value":          mw.Z,
		"p-value":          mw.PValue,
		"effect size":      mw.EffectSize,
		"continuity":       mw.Continuity,
		"test description": "Mann-Whitney U test",
	}
}
