package report

import (
	"fmt"
	"strings"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.Renderer = (*TextRenderer)(nil)

// TextRenderer formats an analysis as a plain-text report suitable for
// console output and log archives.
type TextRenderer struct {
	// TopMatches caps the number of detailed match sections; zero means
	// DefaultTopMatches.
	TopMatches int
}

// Render produces the plain-text report for one analysis.
func (t *TextRenderer) Render(a domain.OrderAnalysis) string {
	if a.Status == domain.StatusError {
		return fmt.Sprintf("Error processing order: %s", a.Err)
	}

	var lines []string
	lines = append(lines, "=== Order Analysis Report ===")

	lines = append(lines, "", "Order Specifications:")
	lines = append(lines,
		fmt.Sprintf("- Material: %s", fieldOr(a.Request, domain.FieldMaterial)),
		fmt.Sprintf("- Purity: %s", fieldOr(a.Request, domain.FieldPurity)),
		fmt.Sprintf("- Quantity: %s", fieldOr(a.Request, domain.FieldQuantity)),
		fmt.Sprintf("- Technical Requirements: %s", fieldOr(a.Request, domain.FieldTechnicalRequirements)),
	)

	lines = append(lines, "", "Matching Results:")
	if len(a.Results) == 0 || (len(a.Results) == 1 && a.Results[0].IsNoMatch()) {
		lines = append(lines, "No matches found in inventory.")
	} else {
		limit := t.TopMatches
		if limit <= 0 {
			limit = DefaultTopMatches
		}
		for i, result := range a.Results {
			if i >= limit {
				break
			}
			lines = append(lines, "", fmt.Sprintf("Match #%d (Score: %d)", i+1, result.Score))
			lines = append(lines,
				fmt.Sprintf("- Material: %s", fieldOr(result.Candidate, domain.FieldMaterial)),
				fmt.Sprintf("- Purity: %s", fieldOr(result.Candidate, domain.FieldPurity)),
				fmt.Sprintf("- Quantity: %s", fieldOr(result.Candidate, domain.FieldQuantity)),
				fmt.Sprintf("- Technical Requirements: %s", fieldOr(result.Candidate, domain.FieldTechnicalRequirements)),
			)
			if len(result.Comments) > 0 {
				lines = append(lines, "Comments:")
				for _, comment := range result.Comments {
					lines = append(lines, fmt.Sprintf("  * %s", comment))
				}
			}
		}
	}

	lines = append(lines, "", fmt.Sprintf("Processed at: %s", a.ProcessedAt.Format("2006-01-02 15:04:05")))
	return strings.Join(lines, "\n")
}

func fieldOr(record domain.Record, key string) string {
	v, ok := record[key]
	if !ok || v == nil {
		return "N/A"
	}
	return formatCell(v)
}
