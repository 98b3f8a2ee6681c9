// Package exporter provides CSV export functionality for graded reports.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers, streaming,
// and UTF-8 BOM for Excel compatibility.
//
// ReportExporter: Streams a graded report table to a CSV file, one row per
// student in roster order.
//
// ImportExporter: Shapes a graded report into the fixed LMS import layout and
// writes it, converting letter grades back to numeric bracket midpoints.
//
// Example usage:
//
//	// Export a graded report
//	reportExporter := exporter.NewReportExporter(paths)
//	err := reportExporter.ExportReport(report, "grades.csv")
//
//	// Build the LMS import file from the (possibly hand-edited) report
//	importExporter := exporter.NewImportExporter(paths)
//	err = importExporter.ExportImportFile(raw, opts, "import.csv")
package exporter
