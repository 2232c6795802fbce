package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyai/matchengine/internal/domain"
)

func sampleAnalysis() domain.OrderAnalysis {
	return domain.OrderAnalysis{
		ID: "test-id",
		Request: domain.Record{
			"material":               "Hydrochloric Acid",
			"purity":                 "36%",
			"quantity":               "100 kg/month",
			"technical_requirements": []string{"iso-9001"},
		},
		Results: []domain.MatchResult{
			{
				Candidate: domain.Record{
					"supplier_name": "ChemCo",
					"material":      "Hydrochloric Acid",
					"purity":        "37%",
					"quantity":      "150 kg/month",
				},
				Score: 100,
				Comments: []string{
					"Material 'Hydrochloric Acid' matches.",
					"Purity meets/exceeds requirement: candidate 37% >= requested 36%.",
				},
			},
			{
				Candidate: domain.Record{"supplier_name": "AcidWorks", "material": "Hydrochloric Acid"},
				Score:     55,
			},
		},
		Status:      domain.StatusSuccess,
		ProcessedAt: time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownRenderer_Render(t *testing.T) {
	out := (&MarkdownRenderer{}).Render(sampleAnalysis())

	assert.Contains(t, out, "# Order Analysis Report")
	assert.Contains(t, out, "## Order Specifications")
	assert.Contains(t, out, "| Material | Hydrochloric Acid |")
	assert.Contains(t, out, "| Technical Requirements | iso-9001 |")
	assert.Contains(t, out, "### Match #1")
	assert.Contains(t, out, "**Match Score:** 100%")
	assert.Contains(t, out, "| Supplier Name | ChemCo |")
	assert.Contains(t, out, "- Material 'Hydrochloric Acid' matches.")
	assert.Contains(t, out, "### Match #2")
	assert.Contains(t, out, "*Report generated at: 2026-08-29 12:30:00*")
}

func TestMarkdownRenderer_Render_Error(t *testing.T) {
	out := (&MarkdownRenderer{}).Render(domain.OrderAnalysis{
		Status: domain.StatusError,
		Err:    "extraction failed: model unavailable",
	})

	assert.Contains(t, out, "## Error")
	assert.Contains(t, out, "Error processing order: extraction failed: model unavailable")
}

func TestMarkdownRenderer_Render_NoMatches(t *testing.T) {
	a := sampleAnalysis()
	a.Results = []domain.MatchResult{domain.NewNoMatchResult(a.Request)}

	out := (&MarkdownRenderer{}).Render(a)
	assert.Contains(t, out, "*No matches found in inventory.*")
	assert.NotContains(t, out, "### Match #1")
}

func TestMarkdownRenderer_Render_TopMatchesLimit(t *testing.T) {
	a := sampleAnalysis()

	out := (&MarkdownRenderer{TopMatches: 1}).Render(a)
	assert.Contains(t, out, "### Match #1")
	assert.NotContains(t, out, "### Match #2")
}

func TestTextRenderer_Render(t *testing.T) {
	out := (&TextRenderer{}).Render(sampleAnalysis())

	assert.Contains(t, out, "=== Order Analysis Report ===")
	assert.Contains(t, out, "- Material: Hydrochloric Acid")
	assert.Contains(t, out, "- Technical Requirements: iso-9001")
	assert.Contains(t, out, "Match #1 (Score: 100)")
	assert.Contains(t, out, "  * Material 'Hydrochloric Acid' matches.")
	assert.Contains(t, out, "Match #2 (Score: 55)")
	assert.Contains(t, out, "Processed at: 2026-08-29 12:30:00")
}

func TestTextRenderer_Render_MissingFieldsShowNA(t *testing.T) {
	a := domain.OrderAnalysis{
		Request:     domain.Record{"material": "Acetone"},
		Results:     []domain.MatchResult{domain.NewNoMatchResult(domain.Record{"material": "Acetone"})},
		Status:      domain.StatusSuccess,
		ProcessedAt: time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC),
	}

	out := (&TextRenderer{}).Render(a)
	assert.Contains(t, out, "- Purity: N/A")
	assert.Contains(t, out, "- Quantity: N/A")
	assert.Contains(t, out, "No matches found in inventory.")
}

func TestTextRenderer_Render_Error(t *testing.T) {
	out := (&TextRenderer{}).Render(domain.OrderAnalysis{
		Status: domain.StatusError,
		Err:    "boom",
	})
	assert.Equal(t, "Error processing order: boom", out)
}

func TestTitleize(t *testing.T) {
	assert.Equal(t, "Supplier Name", titleize("supplier_name"))
	assert.Equal(t, "Material", titleize("material"))
	assert.Equal(t, "Technical Requirements", titleize("technical_requirements"))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "a, b", formatCell([]string{"a", "b"}))
	assert.Equal(t, "a, 1", formatCell([]any{"a", 1}))
	assert.Equal(t, "42", formatCell(42))
	assert.Equal(t, "plain", formatCell("plain"))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, []string{"first report", "second report"}, "md")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, dir))
	assert.Contains(t, path, "order_analysis_")
	assert.True(t, strings.HasSuffix(path, ".md"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "first report")
	assert.Contains(t, string(content), separator)
	assert.Contains(t, string(content), "second report")
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"

	path, err := Save(dir, []string{"report"}, "txt")
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
