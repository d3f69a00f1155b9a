// Package nonparametric implements the rank-based hypothesis tests:
// Kruskal-Wallis, Mann-Whitney U and the Wilcoxon signed-rank test. All
// three share the rank, tie-correction and group-splitting utilities and
// are immutable once constructed.
package nonparametric

import (
	"fmt"
	"math"

	montstats "github.com/montanaflynn/stats"

	"hypotest/dist"
	"hypotest/domain/core"
	"hypotest/domain/stats"
	"hypotest/rank"
)

// KruskalWallisOptions parameterizes a KruskalWallis test.
type KruskalWallisOptions struct {
	// Group is an optional label vector over a single combined sample.
	// Mutually exclusive with passing multiple sample vectors.
	Group []string
	// Alpha is the significance level for the critical t-value and the
	// least significant difference (default 0.05).
	Alpha float64
}

// GroupRanks summarizes one treatment group's ranked observations.
type GroupRanks struct {
	Label    string
	Obs      int
	RankSum  float64
	RankVar  float64 // sample variance of the group's ranks
}

// KruskalWallis is a fitted rank-based one-way H-test over two or more
// treatment groups.
type KruskalWallis struct {
	Alpha            float64
	N                int
	K                int
	DegreesOfFreedom int
	Groups           []GroupRanks

	// H is the tie-corrected Kruskal-Wallis statistic.
	H      float64
	PValue float64
	// TValue is the critical t-value at alpha/2 with N-K degrees of
	// freedom, used for the least significant difference.
	TValue float64
	// LeastSignificantDifference is the minimum rank-mean difference
	// between two groups considered significant at alpha.
	LeastSignificantDifference float64

	provider *dist.Provider
}

// NewKruskalWallis fits the H-test either over multiple group-sample
// vectors, or over one combined vector partitioned by opts.Group. Supplying
// both a group vector and more than one sample vector is ambiguous and
// fails.
func NewKruskalWallis(opts KruskalWallisOptions, samples ...[]float64) (*KruskalWallis, error) {
	if len(samples) == 0 {
		return nil, core.ErrEmptyVector
	}
	if opts.Group != nil && len(samples) > 1 {
		return nil, core.ErrAmbiguousInput
	}

	alpha := opts.Alpha
	if alpha <= 0 {
		alpha = 0.05
	}

	var groups []rank.Group
	if opts.Group != nil {
		var err error
		groups, err = rank.SplitGroups(samples[0], opts.Group, 0)
		if err != nil {
			return nil, err
		}
	} else {
		groups = make([]rank.Group, len(samples))
		for i, sample := range samples {
			if len(sample) == 0 {
				return nil, core.ErrEmptyVector
			}
			groups[i] = rank.Group{Label: fmt.Sprintf("sample %d", i+1), Values: sample}
		}
	}
	if len(groups) < 2 {
		return nil, core.NewInvalidParameterError("groups", "at least two treatment groups are required")
	}

	kw := &KruskalWallis{
		Alpha:    alpha,
		K:        len(groups),
		provider: dist.New(),
	}

	// Combined design matrix: group membership parallel to the value column.
	var combined []float64
	var membership []int
	for gi, g := range groups {
		combined = append(combined, g.Values...)
		for range g.Values {
			membership = append(membership, gi)
		}
	}
	kw.N = len(combined)
	kw.DegreesOfFreedom = kw.K - 1

	ranks, err := rank.Average(combined)
	if err != nil {
		return nil, err
	}

	groupRanks := make([][]float64, kw.K)
	for i, r := range ranks {
		gi := membership[i]
		groupRanks[gi] = append(groupRanks[gi], r)
	}

	kw.Groups = make([]GroupRanks, kw.K)
	for gi, g := range groups {
		var sum float64
		for _, r := range groupRanks[gi] {
			sum += r
		}
		variance, err := montstats.SampleVariance(groupRanks[gi])
		if err != nil {
			return nil, err
		}
		kw.Groups[gi] = GroupRanks{
			Label:   g.Label,
			Obs:     len(g.Values),
			RankSum: sum,
			RankVar: variance,
		}
	}

	if err := kw.compute(ranks); err != nil {
		return nil, err
	}

	return kw, nil
}

// compute derives H, its chi-square p-value, the critical t-value and the
// least significant difference, in that order.
func (kw *KruskalWallis) compute(ranks []float64) error {
	n := float64(kw.N)

	var rankSumTerm float64
	for _, g := range kw.Groups {
		rankSumTerm += g.RankSum * g.RankSum / float64(g.Obs)
	}

	h := 12/(n*(n+1))*rankSumTerm - 3*(n+1)

	correction, err := rank.TieCorrection(ranks)
	if err != nil {
		return err
	}
	kw.H = h / correction

	// Upper-tail chi-square approximation with k-1 degrees of freedom.
	kw.PValue = kw.provider.ChiSquareSurvival(kw.H, float64(kw.DegreesOfFreedom))

	kw.TValue = kw.provider.TQuantile(1-kw.Alpha/2, n-float64(kw.K))
	kw.LeastSignificantDifference = kw.TValue * math.Sqrt(kw.mse()*2/(n/float64(kw.K)))

	return nil
}

// mse is the pooled within-group variance of the ranks: the sum of
// (n_i - 1) * group rank variance, divided by N - k.
func (kw *KruskalWallis) mse() float64 {
	var sse float64
	for _, g := range kw.Groups {
		sse += float64(g.Obs-1) * g.RankVar
	}
	return sse / float64(kw.N-kw.K)
}

// Summary returns the fitted test's named-field mapping.
func (kw *KruskalWallis) Summary() stats.Summary {
	return stats.Summary{
		"H-statistic":                  kw.H,
		"p-value":                      kw.PValue,
		"degrees of freedom":           kw.DegreesOfFreedom,
		"t-value":                      kw.TValue,
		"least significant difference": kw.LeastSignificantDifference,
		"alpha":                        kw.Alpha,
		"test description":             "Kruskal-Wallis rank sum test",
	}
}
