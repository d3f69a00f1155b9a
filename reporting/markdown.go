// Package reporting renders battery results to markdown and HTML.
package reporting

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/gomarkdown/markdown"

	"hypotest/battery"
	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// Report renders one battery run.
type Report struct {
	ID      core.ReportID
	Title   string
	results []battery.Result
}

// New creates a report over the given battery results.
func New(title string, results []battery.Result) *Report {
	return &Report{
		ID:      core.ReportID(core.NewID()),
		Title:   title,
		results: results,
	}
}

// Markdown renders the report as a markdown document: one section per test
// with its summary fields as a two-column table, keys sorted for stable
// output.
func (r *Report) Markdown() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", r.Title)
	fmt.Fprintf(&buf, "Report `%s` over %d tests.\n\n", r.ID, len(r.results))

	for _, result := range r.results {
		fmt.Fprintf(&buf, "## %s\n\n", result.Name)
		buf.WriteString("| Field | Value |\n|---|---|\n")
		for _, key := range sortedKeys(result.Summary) {
			fmt.Fprintf(&buf, "| %s | %s |\n", key, formatValue(result.Summary[key]))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// HTML converts the markdown rendering to HTML.
func (r *Report) HTML() []byte {
	return markdown.ToHTML(r.Markdown(), nil, nil)
}

func sortedKeys(summary stats.Summary) []string {
	keys := make([]string, 0, len(summary))
	for key := range summary {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("%.6g", v)
	case stats.Interval:
		return fmt.Sprintf("(%.6g, %.6g)", v.Lower, v.Upper)
	case map[string]stats.Interval:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		for i, key := range keys {
			if i > 0 {
				buf.WriteString("; ")
			}
			iv := v[key]
			fmt.Fprintf(&buf, "%s (%.6g, %.6g)", key, iv.Lower, iv.Upper)
		}
		return buf.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
