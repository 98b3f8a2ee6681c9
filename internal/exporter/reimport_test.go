package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradecli/internal/config"
	"gradecli/internal/gradebook"
)

func reportTable() *gradebook.RawTable {
	return &gradebook.RawTable{
		Columns: []string{"Last Name", "First Name", "ID", "Email", "Final grade", "Letter grade", "Comments"},
		Rows: [][]string{
			{"Lovelace", "Ada", "al123", "al123@school.edu", "95.2", "A", "strong"},
			{"Turing", "Alan", "at456", "at456@school.edu", "48", "F", ""},
		},
	}
}

func defaultOpts() ReimportOptions {
	return ReimportOptions{
		Info:        config.DefaultInfoColumns(),
		Standardize: true,
	}
}

func TestBuildReimportShape(t *testing.T) {
	headers, records, err := BuildReimport(reportTable(), defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Username", "Last Name", "First Name", "Email",
		"Adjusted Final Grade Numerator", "Adjusted Final Grade Denominator",
		"End-Of-Line Indicator",
	}, headers)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"#al123", "Lovelace", "Ada", "al123@school.edu", "96", "100", "#"}, records[0])
	assert.Equal(t, []string{"#at456", "Turing", "Alan", "at456@school.edu", "25", "100", "#"}, records[1])
}

func TestBuildReimportWithoutStandardize(t *testing.T) {
	opts := defaultOpts()
	opts.Standardize = false
	opts.LetterColumn = "Final grade"

	_, records, err := BuildReimport(reportTable(), opts)
	require.NoError(t, err)

	// The column value is copied through untouched.
	assert.Equal(t, "95.2", records[0][4])
}

func TestBuildReimportPointsGradeColumns(t *testing.T) {
	opts := defaultOpts()
	opts.IncludeOthers = []string{"Comments"}

	headers, records, err := BuildReimport(reportTable(), opts)
	require.NoError(t, err)

	assert.Contains(t, headers, "Comments Points Grade")
	assert.Equal(t, "strong", records[0][4])
}

func TestBuildReimportMissingColumn(t *testing.T) {
	raw := &gradebook.RawTable{
		Columns: []string{"ID"},
		Rows:    [][]string{{"al123"}},
	}

	_, _, err := BuildReimport(raw, defaultOpts())
	assert.Error(t, err)
}

func TestBuildReimportUnknownLetter(t *testing.T) {
	raw := reportTable()
	raw.Rows[0][5] = "A++"

	_, _, err := BuildReimport(raw, defaultOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A++")
}
