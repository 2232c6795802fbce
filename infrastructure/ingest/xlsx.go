package ingest

import (
	"fmt"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"github.com/supplyai/matchengine/internal/domain"
)

// ReadXLSX reads the first sheet of an XLSX inventory whose first row is
// the header.
func ReadXLSX(r io.Reader) ([]domain.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open inventory xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
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
