package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/supplyai/matchengine/internal/domain"
)

// ReadCSV reads a UTF-8 CSV inventory whose first row is the header.
// Rows with fewer cells than headers are padded implicitly; entirely empty
// rows are dropped.
func ReadCSV(r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := normalizeHeaders(rows[0])
	var records []domain.Record
	for _, row := range rows[1:] {
		record := rowToRecord(headers, row)
		if len(record) == 0 {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
