// Package report renders pipeline analyses into human-readable reports
// and persists them under timestamped filenames.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.Renderer = (*MarkdownRenderer)(nil)

// DefaultTopMatches limits how many matches a report shows in detail.
const DefaultTopMatches = 3

// MarkdownRenderer formats an analysis as a markdown document with
// parameter tables for the request and each of the top matches.
type MarkdownRenderer struct {
	// TopMatches caps the number of detailed match sections; zero means
	// DefaultTopMatches.
	TopMatches int
}

// Render produces the markdown report for one analysis.
func (m *MarkdownRenderer) Render(a domain.OrderAnalysis) string {
	if a.Status == domain.StatusError {
		return fmt.Sprintf("## Error\n\nError processing order: %s\n", a.Err)
	}

	var b strings.Builder
	b.WriteString("# Order Analysis Report\n")

	b.WriteString("\n## Order Specifications\n")
	writeTable(&b, a.Request)

	b.WriteString("\n## Matching Results\n")
	if len(a.Results) == 0 || (len(a.Results) == 1 && a.Results[0].IsNoMatch()) {
		b.WriteString("\n*No matches found in inventory.*\n")
	} else {
		m.writeMatches(&b, a.Results)
	}

	fmt.Fprintf(&b, "\n---\n*Report generated at: %s*\n", a.ProcessedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}

func (m *MarkdownRenderer) writeMatches(b *strings.Builder, results []domain.MatchResult) {
	limit := m.TopMatches
	if limit <= 0 {
		limit = DefaultTopMatches
	}
	for i, result := range results {
		if i >= limit {
			break
		}
		fmt.Fprintf(b, "\n### Match #%d\n", i+1)
		fmt.Fprintf(b, "\n**Match Score:** %d%%\n", result.Score)
		writeTable(b, result.Candidate)
		if len(result.Comments) > 0 {
			b.WriteString("\nComments:\n")
			for _, comment := range result.Comments {
				fmt.Fprintf(b, "- %s\n", comment)
			}
		}
	}
}

// writeTable renders a record as a two-column markdown table with keys in
// deterministic order.
func writeTable(b *strings.Builder, record domain.Record) {
	b.WriteString("| Parameter | Value |\n")
	b.WriteString("|-----------|-------|\n")

	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(b, "| %s | %s |\n", titleize(key), formatCell(record[key]))
	}
}

// titleize turns a snake_case field name into a display label.
func titleize(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func formatCell(v any) string {
	switch value := v.(type) {
	case []string:
		return strings.Join(value, ", ")
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(value)
	}
}
