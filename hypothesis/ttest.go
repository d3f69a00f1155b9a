package hypothesis

import (
	"math"

	"hypotest/dist"
	"hypotest/domain/core"
	"hypotest/domain/stats"
	"hypotest/rank"
)

// TestDesign tags the variant a TTest resolved to at construction. The
// variant is decided once, in priority order (paired, then one-sample, then
// two-sample independent), rather than re-branching per derived quantity.
type TestDesign int

const (
	// OneSample tests a single sample mean against mu.
	OneSample TestDesign = iota
	// TwoSampleIndependent compares two independent sample means.
	TwoSampleIndependent
	// TwoSamplePaired tests the per-index differences of two equal-length
	// samples as a one-sample design.
	TwoSamplePaired
)

// String returns the design name.
func (d TestDesign) String() string {
	switch d {
	case OneSample:
		return "one-sample"
	case TwoSampleIndependent:
		return "two-sample independent"
	case TwoSamplePaired:
		return "two-sample paired"
	}
	return "unknown"
}

// TTestOptions parameterizes a TTest.
type TTestOptions struct {
	// Y2 is the optional second sample for two-sample or paired designs.
	Y2 []float64
	// Group is an optional label vector over y1 as an alternative to Y2;
	// it must yield exactly two groups. Mutually exclusive with Y2.
	Group []string
	// Mu is the null mean for one-sample designs (default 0).
	Mu float64
	// VarEqual pools the two sample variances (Student's test) instead of
	// the default Welch unequal-variance test.
	VarEqual bool
	// Paired selects the paired-difference design; requires Y2 of equal
	// length to y1.
	Paired bool
	// Alternative selects the alternative hypothesis tag.
	Alternative stats.Alternative
	// Alpha is the confidence interval significance level (default 0.05).
	Alpha float64
}

// TTest is a fitted one-sample, two-sample or paired t-test.
type TTest struct {
	Design      TestDesign
	VarEqual    bool
	Paired      bool
	Mu          float64
	Alpha       float64
	Alternative stats.Alternative
	Description string

	// Sample1 describes y1, the paired differences, or the first group.
	Sample1 stats.SampleStatistics
	// Sample2 describes the second sample for two-sample designs.
	Sample2    stats.SampleStatistics
	hasSample2 bool
	// sample1Name is how the first sample is keyed in the summary
	// ("Sample 1", or "Sample Difference" for the paired design).
	sample1Name string

	// DegreesOfFreedom is n-1 for one-sample and paired designs,
	// n1+n2-2 pooled, or the Welch-Satterthwaite approximation.
	DegreesOfFreedom   float64
	Statistic          float64
	PValue             float64
	ConfidenceInterval stats.Interval

	provider *dist.Provider
}

// NewTTest fits a t-test over y1 and the optional second sample or group
// vector in opts. The design is resolved once at construction: paired wins,
// then one-sample when neither Y2 nor Group is present, otherwise
// two-sample independent (Welch by default, Student's pooled when VarEqual).
func NewTTest(y1 []float64, opts TTestOptions) (*TTest, error) {
	if len(y1) == 0 {
		return nil, core.ErrEmptyVector
	}

	alternative := opts.Alternative.OrDefault()
	if !alternative.Valid() {
		return nil, core.NewInvalidParameterError("alternative", "must be one of 'two-sided', 'greater', or 'less'")
	}
	alpha := opts.Alpha
	if alpha <= 0 {
		alpha = 0.05
	}

	tt := &TTest{
		VarEqual:    opts.VarEqual,
		Paired:      opts.Paired,
		Mu:          opts.Mu,
		Alpha:       alpha,
		Alternative: alternative,
		provider:    dist.New(),
	}

	method := "Welch's t-test"
	if opts.VarEqual {
		method = "Student's t-test"
	}

	sampleName := "Sample 1"
	var sample1, sample2 []float64

	switch {
	case opts.Paired:
		if opts.Y2 == nil {
			return nil, core.NewInvalidParameterError("y2", "second sample is missing for paired test")
		}
		if len(y1) != len(opts.Y2) {
			return nil, core.NewShapeMismatchError("paired samples", len(y1), len(opts.Y2))
		}
		tt.Design = TwoSamplePaired
		tt.Description = "Paired t-test"
		sampleName = "Sample Difference"
		sample1 = make([]float64, len(y1))
		for i := range y1 {
			sample1[i] = y1[i] - opts.Y2[i]
		}

	case opts.Y2 == nil && opts.Group == nil:
		tt.Design = OneSample
		tt.Description = "One-Sample t-test"
		sample1 = y1

	default:
		if opts.Y2 != nil && opts.Group != nil {
			return nil, core.ErrAmbiguousInput
		}
		tt.Design = TwoSampleIndependent
		tt.Description = "Two-Sample " + method
		if opts.Group == nil {
			sample1, sample2 = y1, opts.Y2
		} else {
			groups, err := rank.SplitGroups(y1, opts.Group, 2)
			if err != nil {
				return nil, err
			}
			if len(groups) != 2 {
				return nil, core.NewCardinalityError(len(groups), 2)
			}
			sample1, sample2 = groups[0].Values, groups[1].Values
		}
	}

	var err error
	tt.Sample1, err = stats.DescribeSample(sample1)
	if err != nil {
		return nil, err
	}
	tt.sample1Name = sampleName
	if sample2 != nil {
		tt.Sample2, err = stats.DescribeSample(sample2)
		if err != nil {
			return nil, err
		}
		tt.hasSample2 = true
	}

	tt.DegreesOfFreedom = tt.degreesOfFreedom()
	tt.Statistic = tt.statistic()
	tt.PValue = tt.pValue()
	tt.ConfidenceInterval = tt.confidenceInterval()

	return tt, nil
}

// degreesOfFreedom is n-1 for single-sample designs; for two samples it is
// n1+n2-2 pooled or the Welch-Satterthwaite approximation
// (s1/n1+s2/n2)^2 / [(s1/n1)^2/(n1-1) + (s2/n2)^2/(n2-1)].
func (tt *TTest) degreesOfFreedom() float64 {
	n1 := float64(tt.Sample1.Obs)
	s1 := tt.Sample1.Variance

	if !tt.hasSample2 {
		return n1 - 1
	}

	n2 := float64(tt.Sample2.Obs)
	s2 := tt.Sample2.Variance

	if tt.VarEqual {
		return n1 + n2 - 2
	}

	num := math.Pow(s1/n1+s2/n2, 2)
	den := math.Pow(s1/n1, 2)/(n1-1) + math.Pow(s2/n2, 2)/(n2-1)
	return num / den
}

// statistic computes the t-statistic for the resolved design.
func (tt *TTest) statistic() float64 {
	n1 := float64(tt.Sample1.Obs)
	s1 := tt.Sample1.Variance
	mean1 := tt.Sample1.Mean

	if tt.hasSample2 {
		n2 := float64(tt.Sample2.Obs)
		s2 := tt.Sample2.Variance
		mean2 := tt.Sample2.Mean

		if tt.VarEqual {
			sp := math.Sqrt(((n1-1)*s1 + (n2-1)*s2) / (n1 + n2 - 2))
			return (mean1 - mean2) / (sp * math.Sqrt(1/n1+1/n2))
		}
		return (mean1 - mean2) / math.Sqrt(s1/n1+s2/n2)
	}

	// One-sample and paired: the paired difference vector already absorbed
	// y2, so mu defaults to zero.
	num := mean1 - tt.Mu
	se := math.Sqrt(s1 / n1)
	if se == 0 {
		// Zero-variance sample. An exactly-null mean difference is a
		// degenerate but well-defined no-effect case.
		if num == 0 {
			return 0
		}
		return math.Inf(1) * sign(num)
	}
	return num / se
}

// pValue evaluates the t-distribution CDF at the statistic. The two-sided
// alternative doubles the lower tail and "greater" complements it, which can
// push the value past 1 for certain sign/tail combinations; such values are
// wrapped back via 2-p, and the exact boundary 2.0 degenerates to machine
// epsilon rather than zero.
func (tt *TTest) pValue() float64 {
	p := tt.provider.TCDF(tt.Statistic, tt.DegreesOfFreedom)

	switch tt.Alternative {
	case stats.TwoSided:
		p *= 2
	case stats.Greater:
		p = 1 - p
	}

	if p > 1.0 && p < 2.0 {
		p = 2 - p
	}
	if p == 2.0 {
		p = stats.Epsilon
	}

	return p
}

// confidenceInterval computes the Welch-style interval
// (mean1-mean2) +/- t_{alpha/2,df} * sqrt(s1/n1 + s2/n2) for two-sample
// designs, and the t-based interval mean +/- t_{alpha/2,n-1} * sqrt(s/n)
// for single-sample designs. One-sided alternatives replace the
// corresponding bound with +/-Inf.
func (tt *TTest) confidenceInterval() stats.Interval {
	n1 := float64(tt.Sample1.Obs)
	s1 := tt.Sample1.Variance

	var estimate, se float64
	if tt.hasSample2 {
		n2 := float64(tt.Sample2.Obs)
		s2 := tt.Sample2.Variance
		estimate = tt.Sample1.Mean - tt.Sample2.Mean
		se = math.Sqrt(s1/n1 + s2/n2)
	} else {
		estimate = tt.Sample1.Mean
		se = math.Sqrt(s1 / n1)
	}

	// TQuantile(alpha/2) is negative, so adding it yields the lower bound.
	quantile := tt.provider.TQuantile(tt.Alpha/2, tt.DegreesOfFreedom)
	lower := estimate + quantile*se
	upper := estimate - quantile*se

	switch tt.Alternative {
	case stats.Greater:
		upper = math.Inf(1)
	case stats.Less:
		lower = math.Inf(-1)
	}

	return stats.Interval{Estimate: estimate, Lower: lower, Upper: upper}
}

// Summary returns the fitted test's named-field mapping. The first sample
// mean is keyed "Sample 1 Mean", or "Sample Difference Mean" for the paired
// design.
func (tt *TTest) Summary() stats.Summary {
	summary := stats.Summary{
		"t-statistic":         tt.Statistic,
		"p-value":             tt.PValue,
		"confidence interval": tt.ConfidenceInterval,
		"degrees of freedom":  tt.DegreesOfFreedom,
		"alternative":         string(tt.Alternative),
		"test description":    tt.Description,
	}

	summary[tt.sample1Name+" Mean"] = tt.Sample1.Mean
	if tt.hasSample2 {
		summary["Sample 2 Mean"] = tt.Sample2.Mean
	}
	if tt.Design == OneSample {
		summary["mu"] = tt.Mu
	}

	return summary
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
