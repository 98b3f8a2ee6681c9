package exporter

import (
	"fmt"
	"log/slog"

	"gradecli/internal/config"
	"gradecli/internal/errors"
	"gradecli/internal/gradebook"
	"gradecli/internal/grading"
)

// ReimportOptions controls how a graded (possibly hand-edited) report is
// turned into an LMS import file.
type ReimportOptions struct {
	// Info names the student info columns of the report.
	Info config.InfoColumns
	// LetterColumn is the report column holding the letter grade.
	LetterColumn string
	// Standardize converts the letter back to a bracket-midpoint numeric
	// grade. When false the column value is copied through unchanged.
	Standardize bool
	// Scale is the letter scale used for the inverse conversion.
	Scale grading.LetterScale
	// IncludeOthers names extra report columns copied into the import file
	// as "<name> Points Grade" columns.
	IncludeOthers []string
}

// BuildReimport shapes a report table into the fixed LMS import layout:
// a "#"-prefixed username per student, the name and email columns, any extra
// points-grade columns, and the adjusted final grade out of 100.
func BuildReimport(raw *gradebook.RawTable, opts ReimportOptions) ([]string, [][]string, error) {
	info := opts.Info
	letterCol := opts.LetterColumn
	if letterCol == "" {
		letterCol = config.LetterGradeColumn
	}
	scale := opts.Scale
	if len(scale.Thresholds) == 0 {
		scale.Thresholds = config.DefaultThresholds()
	}
	if len(scale.Letters) == 0 {
		scale.Letters = config.DefaultLetters()
	}

	headers := []string{config.ReimportUsernameColumn, info.Last, info.First, info.Email}
	for _, col := range opts.IncludeOthers {
		headers = append(headers, col+config.ReimportPointsGradeSuffix)
	}
	headers = append(headers,
		config.ReimportNumeratorColumn,
		config.ReimportDenominatorColumn,
		config.ReimportEOLColumn)

	// Every consumed column must exist in the report.
	sourceCols := []string{info.ID, info.Last, info.First, info.Email, letterCol}
	sourceCols = append(sourceCols, opts.IncludeOthers...)
	indexes := make(map[string]int, len(sourceCols))
	for _, col := range sourceCols {
		idx := raw.ColumnIndex(col)
		if idx < 0 {
			return nil, nil, errors.SchemaError(fmt.Sprintf("report is missing column %q", col))
		}
		indexes[col] = idx
	}

	records := make([][]string, 0, len(raw.Rows))
	for ri := range raw.Rows {
		record := make([]string, 0, len(headers))
		record = append(record,
			config.ReimportUsernamePrefix+raw.Value(ri, indexes[info.ID]),
			raw.Value(ri, indexes[info.Last]),
			raw.Value(ri, indexes[info.First]),
			raw.Value(ri, indexes[info.Email]))
		for _, col := range opts.IncludeOthers {
			record = append(record, raw.Value(ri, indexes[col]))
		}

		grade := raw.Value(ri, indexes[letterCol])
		if opts.Standardize {
			numeric, err := scale.ToNumeric(grade)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", ri, err)
			}
			grade = formatInt(int64(numeric))
		}
		record = append(record, grade, config.ReimportDenominator, config.ReimportEOLMarker)
		records = append(records, record)
	}
	return headers, records, nil
}

// ImportExporter writes LMS import files built from graded reports.
type ImportExporter struct {
	csv *CSVWriter
}

// NewImportExporter creates a new import exporter
func NewImportExporter(paths config.Paths) *ImportExporter {
	return &ImportExporter{csv: NewCSVWriter(paths)}
}

// ExportImportFile builds and writes the LMS import CSV.
func (e *ImportExporter) ExportImportFile(raw *gradebook.RawTable, opts ReimportOptions, outputPath string) error {
	headers, records, err := BuildReimport(raw, opts)
	if err != nil {
		return err
	}
	if err := e.csv.WriteSimpleCSV(outputPath, headers, records); err != nil {
		return fmt.Errorf("failed to write import file: %w", err)
	}
	slog.Info("Import file exported",
		slog.String("output", outputPath),
		slog.Int("students", len(records)))
	return nil
}
