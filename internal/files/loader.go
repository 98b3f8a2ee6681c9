package files

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"gradecli/internal/gradebook"
)

// LoadFile reads a spreadsheet export into a raw table, dispatching on the
// file extension. Supported formats are .csv, .xlsx and .xls.
func LoadFile(path string) (*gradebook.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx", ".xls":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported gradebook format %q", filepath.Ext(path))
	}
}

// LoadCSV reads a CSV export. The first record is the header row; rows may
// be ragged when trailing cells are empty.
func LoadCSV(path string) (*gradebook.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s has no header row", path)
	}

	table := &gradebook.RawTable{
		Columns: stripBOM(records[0]),
		Rows:    records[1:],
	}
	slog.Debug("Loaded CSV gradebook",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))
	return table, nil
}

// LoadXLSX reads the first sheet of an Excel export. The first row is the
// header row.
func LoadXLSX(path string) (*gradebook.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheets[0])
	}

	table := &gradebook.RawTable{
		Columns: rows[0],
		Rows:    rows[1:],
	}
	slog.Debug("Loaded Excel gradebook",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))
	return table, nil
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
// Exports written for Excel often carry one.
func stripBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}
