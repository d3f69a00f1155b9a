package stats

import (
	"math"

	montstats "github.com/montanaflynn/stats"

	"hypotest/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Alternative tags the alternative hypothesis of a directional test.
type Alternative string

const (
	TwoSided Alternative = "two-sided"
	Greater  Alternative = "greater"
	Less     Alternative = "less"
)

// Valid reports whether the tag is one of the enumerated alternatives.
func (a Alternative) Valid() bool {
	switch a {
	case TwoSided, Greater, Less:
		return true
	}
	return false
}

// OrDefault substitutes the two-sided default for the zero value.
func (a Alternative) OrDefault() Alternative {
	if a == "" {
		return TwoSided
	}
	return a
}

// SampleStatistics is the per-sample derived record shared by every test.
// Variance is the population variance (divide by n).
// INVARIANT: Obs equals the source vector length exactly.
type SampleStatistics struct {
	Obs      int     `json:"obs"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// DescribeSample computes SampleStatistics for one observation vector.
func DescribeSample(sample []float64) (SampleStatistics, error) {
	if len(sample) == 0 {
		return SampleStatistics{}, core.ErrEmptyVector
	}

	mean, err := montstats.Mean(sample)
	if err != nil {
		return SampleStatistics{}, err
	}
	variance, err := montstats.PopulationVariance(sample)
	if err != nil {
		return SampleStatistics{}, err
	}

	return SampleStatistics{
		Obs:      len(sample),
		Mean:     mean,
		Variance: variance,
	}, nil
}

// Interval is a point estimate with lower and upper bounds. One-sided tests
// replace a bound with +/-Inf.
type Interval struct {
	Estimate float64 `json:"estimate"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// Unbounded reports whether either bound is infinite.
func (iv Interval) Unbounded() bool {
	return math.IsInf(iv.Lower, 0) || math.IsInf(iv.Upper, 0)
}

// Summary is the stable named-field mapping every fitted test exposes.
type Summary map[string]interface{}

// Epsilon is substituted for p-values that would otherwise degenerate to an
// exact boundary (0 or 2 after tail correction), keeping downstream
// consumers away from zero or negative probabilities.
var Epsilon = math.Nextafter(1, 2) - 1
