package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypotest/battery"
	"hypotest/domain/stats"
)

func sampleResults() []battery.Result {
	return []battery.Result{
		{
			Name: "Welch's t-test",
			Summary: stats.Summary{
				"t-statistic":         -0.08695024086399619,
				"p-value":             0.9342936060799869,
				"confidence interval": stats.Interval{Estimate: -2329, Lower: -72531.67, Upper: 67873.67},
			},
		},
		{
			Name: "Binomial test",
			Summary: stats.Summary{
				"p-value": 0.109375,
				"intervals": map[string]stats.Interval{
					"Clopper-Pearson": {Estimate: 0.2, Lower: 0.02521, Upper: 0.5561},
					"Wilson Score":    {Estimate: 0.5, Lower: 0.23659, Upper: 0.76341},
				},
			},
		},
	}
}

func TestReport_Markdown(t *testing.T) {
	report := New("Salary Analysis", sampleResults())
	require.NotEmpty(t, string(report.ID))

	md := string(report.Markdown())

	assert.True(t, strings.HasPrefix(md, "# Salary Analysis\n"))
	assert.Contains(t, md, "## Welch's t-test")
	assert.Contains(t, md, "## Binomial test")
	assert.Contains(t, md, "| Field | Value |")
	assert.Contains(t, md, "| p-value | 0.934294 |")
	assert.Contains(t, md, "(-72531.7, 67873.7)")
	// Nested interval map renders each method on one line, sorted.
	assert.Contains(t, md, "Clopper-Pearson (0.02521, 0.5561); Wilson Score (0.23659, 0.76341)")
}

func TestReport_SortedFields(t *testing.T) {
	report := New("Order", []battery.Result{
		{Name: "t", Summary: stats.Summary{"z-last": 1.0, "a-first": 2.0, "m-middle": 3.0}},
	})

	md := string(report.Markdown())
	first := strings.Index(md, "a-first")
	middle := strings.Index(md, "m-middle")
	last := strings.Index(md, "z-last")
	require.True(t, first > 0 && middle > 0 && last > 0)
	assert.Less(t, first, middle)
	assert.Less(t, middle, last)
}

func TestReport_HTML(t *testing.T) {
	report := New("Salary Analysis", sampleResults())

	html := string(report.HTML())
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Salary Analysis")
	assert.Contains(t, html, "<table>")
}
