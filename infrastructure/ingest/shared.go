// Package ingest loads candidate inventories from JSON, CSV and XLSX
// sources into loose candidate records for the match engine.
package ingest

import (
	"strings"

	"github.com/supplyai/matchengine/internal/domain"
)

// requirementSeparator splits the technical_requirements column in
// tabular sources, where a cell holds multiple labels.
const requirementSeparator = ";"

// normalizeHeader maps a column header to a record field name: trimmed,
// lowercased, spaces collapsed to underscores. "Technical Requirements"
// and "technical_requirements" address the same field.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(strings.Join(strings.Fields(h), " "), " ", "_")
}

// rowToRecord converts one tabular row into a candidate record using the
// normalized header names. Empty cells are omitted so record defaults
// apply; unknown columns pass through as extra fields.
func rowToRecord(headers, row []string) domain.Record {
	record := domain.Record{}
	for i, header := range headers {
		if header == "" || i >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}
		if header == domain.FieldTechnicalRequirements {
			record[header] = splitRequirements(cell)
			continue
		}
		record[header] = cell
	}
	return record
}

func splitRequirements(cell string) []string {
	parts := strings.Split(cell, requirementSeparator)
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = normalizeHeader(h)
	}
	return headers
}
