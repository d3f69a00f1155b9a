// Package rank provides the shared rank, tie-correction and group-splitting
// utilities the nonparametric tests are built on.
package rank

import (
	"sort"

	"hypotest/domain/core"
)

// Average returns the 1-based average ranks of data, handling ties by
// assigning every tied value the arithmetic mean of the ranks the group
// would occupy if ordered distinctly. The rank sum over n elements is
// always n(n+1)/2.
func Average(data []float64) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, core.ErrEmptyVector
	}

	// Create index-value pairs for sorting
	type pair struct {
		value float64
		index int
	}

	pairs := make([]pair, n)
	for i, val := range data {
		pairs[i] = pair{value: val, index: i}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	ranks := make([]float64, n)

	// Assign ranks, averaging over each tie group
	i := 0
	for i < n {
		j := i + 1
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}

		groupSize := j - i
		avgRank := float64(i+1) + float64(groupSize-1)/2.0

		for k := i; k < j; k++ {
			ranks[pairs[k].index] = avgRank
		}

		i = j
	}

	return ranks, nil
}

// TieCorrection computes the variance-deflation factor
//
//	1 - sum(t^3 - t) / (N^3 - N)
//
// over the tie groups of a ranked vector, where t is the size of each group
// of equal ranks. It is exactly 1.0 when no ranks repeat. N must be at
// least 2 for the factor to be defined.
func TieCorrection(ranks []float64) (float64, error) {
	n := len(ranks)
	if n <= 1 {
		return 0, core.NewInvalidParameterError("ranks", "must contain at least two elements for tie correction")
	}

	counts := make(map[float64]int, n)
	for _, r := range ranks {
		counts[r]++
	}

	var tieSum float64
	for _, t := range counts {
		if t > 1 {
			tf := float64(t)
			tieSum += tf*tf*tf - tf
		}
	}

	nf := float64(n)
	return 1 - tieSum/(nf*nf*nf-nf), nil
}

// Group is one label's observations after a split.
type Group struct {
	Label  string
	Values []float64
}

// SplitGroups partitions observations by the parallel label vector into one
// Group per distinct label, ordered by sorted label for reproducibility.
// maxGroups bounds the distinct label count; pass 0 for unbounded
// (Kruskal-Wallis). Fails when the vectors differ in length or the label
// count exceeds maxGroups.
func SplitGroups(observations []float64, labels []string, maxGroups int) ([]Group, error) {
	if len(observations) == 0 {
		return nil, core.ErrEmptyVector
	}
	if len(observations) != len(labels) {
		return nil, core.NewShapeMismatchError("observations vs group labels", len(observations), len(labels))
	}

	byLabel := make(map[string][]float64)
	for i, label := range labels {
		byLabel[label] = append(byLabel[label], observations[i])
	}

	if maxGroups > 0 && len(byLabel) > maxGroups {
		return nil, core.NewCardinalityError(len(byLabel), maxGroups)
	}

	ordered := make([]string, 0, len(byLabel))
	for label := range byLabel {
		ordered = append(ordered, label)
	}
	sort.Strings(ordered)

	groups := make([]Group, len(ordered))
	for i, label := range ordered {
		groups[i] = Group{Label: label, Values: byLabel[label]}
	}

	return groups, nil
}
