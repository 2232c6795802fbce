package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/supplyai/matchengine/internal/domain"
)

// ReadJSON decodes a JSON array of candidate records.
func ReadJSON(r io.Reader) ([]domain.Record, error) {
	var records []domain.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode inventory json: %w", err)
	}
	return records, nil
}

// ReadRequestJSON decodes a single JSON request record.
func ReadRequestJSON(r io.Reader) (domain.Record, error) {
	var record domain.Record
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return nil, fmt.Errorf("decode request json: %w", err)
	}
	return record, nil
}

// LoadFile loads an inventory from path, dispatching on the file
// extension: .json, .csv, .xlsx.
func LoadFile(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported inventory format %q (expected .json, .csv or .xlsx)", filepath.Ext(path))
	}
}
