// Command demo fits the classical example datasets (professor salaries,
// plant growth) with the full test catalog and prints a markdown report.
package main

import (
	"context"
	"fmt"
	"os"

	"hypotest/battery"
	"hypotest/hypothesis"
	"hypotest/internal"
	"hypotest/internal/config"
	"hypotest/nonparametric"
	"hypotest/reporting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := internal.NewDefaultLogger()

	// Professor salary subset (Fox & Weisberg 2011) and plant growth
	// subset (Dobson 1983), the canonical worked examples.
	salaryA := []float64{139750, 173200, 79750, 11500, 141500}
	salaryB := []float64{103450, 124750, 137000, 89565, 102580}
	growth := []float64{4.17, 5.58, 5.18, 4.81, 4.17, 4.41, 5.31, 5.12, 5.54}
	growthGroups := []string{
		"ctrl", "ctrl", "ctrl",
		"trt1", "trt1", "trt1",
		"trt2", "trt2", "trt2",
	}

	cases := []battery.Case{
		{
			Name: "Welch t-test: salaries by discipline",
			Fit: func() (battery.Test, error) {
				return hypothesis.NewTTest(salaryA, hypothesis.TTestOptions{Y2: salaryB, Alpha: cfg.Alpha})
			},
		},
		{
			Name: "Mann-Whitney U: salaries by discipline",
			Fit: func() (battery.Test, error) {
				return nonparametric.NewMannWhitney(salaryA, nonparametric.MannWhitneyOptions{Y2: salaryB, Continuity: true})
			},
		},
		{
			Name: "Kruskal-Wallis: plant growth by treatment",
			Fit: func() (battery.Test, error) {
				return nonparametric.NewKruskalWallis(
					nonparametric.KruskalWallisOptions{Group: growthGroups, Alpha: cfg.Alpha}, growth)
			},
		},
		{
			Name: "Wilcoxon signed-rank: salary A vs B paired",
			Fit: func() (battery.Test, error) {
				return nonparametric.NewWilcoxonTest(salaryA, nonparametric.WilcoxonOptions{Y2: salaryB, Paired: true})
			},
		},
		{
			Name: "Binomial exact: 48 of 100 trials",
			Fit: func() (battery.Test, error) {
				opts := hypothesis.DefaultBinomialOptions()
				opts.Alpha = cfg.Alpha
				return hypothesis.NewBinomialTest(48, 100, opts)
			},
		},
		{
			Name: "Chi-square goodness-of-fit: die rolls",
			Fit: func() (battery.Test, error) {
				observed := []float64{29, 19, 18, 25, 17, 12}
				opts := hypothesis.DefaultChiSquareOptions()
				opts.DegreesOfFreedom = len(observed) - 1
				return hypothesis.NewChiSquareTest(observed, opts)
			},
		},
	}

	runner := battery.NewRunner(logger)
	run, err := runner.Run(context.Background(), cases)
	if err != nil {
		logger.Error("battery failed: %v", err)
		os.Exit(1)
	}

	report := reporting.New(cfg.ReportTitle, run.Results)
	os.Stdout.Write(report.Markdown())
}
