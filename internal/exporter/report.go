package exporter

import (
	"fmt"
	"log/slog"

	"gradecli/internal/config"
	"gradecli/internal/gradebook"
)

// ReportExporter writes graded report tables to CSV.
type ReportExporter struct {
	csv *CSVWriter
}

// NewReportExporter creates a new report exporter
func NewReportExporter(paths config.Paths) *ReportExporter {
	return &ReportExporter{csv: NewCSVWriter(paths)}
}

// ExportReport streams a graded report table to a CSV file, one row per
// student in table order. Absent cells become empty fields.
func (e *ReportExporter) ExportReport(table *gradebook.Table, outputPath string) error {
	writer, err := e.csv.CreateStreamWriter(outputPath, table.Columns())
	if err != nil {
		return fmt.Errorf("failed to create report writer: %w", err)
	}

	for _, id := range table.IDs() {
		cells, _ := table.Row(id)
		record := make([]string, len(cells))
		for i, cell := range cells {
			record[i] = cell.String()
		}
		if err := writer.WriteRecord(record); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write report row for %s: %w", id, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize report: %w", err)
	}

	slog.Info("Report exported",
		slog.String("output", outputPath),
		slog.Int("students", table.NumRows()),
		slog.Int("columns", table.NumColumns()))
	return nil
}
