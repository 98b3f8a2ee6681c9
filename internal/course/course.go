// Package course assembles normalized gradebooks into a single roster-keyed
// course and computes the graded report from it.
package course

import (
	"fmt"
	"strings"

	"gradecli/internal/config"
	"gradecli/internal/errors"
	"gradecli/internal/gradebook"
	"gradecli/internal/grading"
)

// Course holds the merged view of all gradebooks for one course. The first
// gradebook is the reference: its students define the roster, and every
// other gradebook is reindexed to that roster's ID order.
type Course struct {
	Info        config.InfoColumns
	Assignments []grading.Assignment

	// Roster holds only the standardized info columns, in roster order.
	Roster *gradebook.Table
	// Merged is the roster plus every non-info column of every gradebook.
	Merged *gradebook.Table
	// Grades holds one column per test, with version columns already
	// resolved to a single score per student.
	Grades *gradebook.Table
}

// New merges the gradebooks and resolves every test's version columns into
// the course Grades table. Students missing from a supplementary gradebook
// are reported as diagnostics and appear with absent scores.
func New(books []*gradebook.Table, assignments []grading.Assignment, info config.InfoColumns, diags *errors.Diagnostics) (*Course, error) {
	if len(books) == 0 {
		return nil, errors.ConfigError("at least one gradebook is required")
	}
	if len(assignments) == 0 {
		return nil, errors.ConfigError("at least one assignment is required")
	}

	roster, err := books[0].Select(info.Names()...)
	if err != nil {
		return nil, errors.SchemaError(fmt.Sprintf("reference gradebook is missing info columns: %v", err))
	}

	for i, book := range books[1:] {
		var missing []string
		for _, id := range roster.IDs() {
			if !book.HasID(id) {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			diags.Addf(errors.DiagMissingStudents,
				"students missing from gradebook %d: %s", i+1, strings.Join(missing, ", "))
		}
	}

	// Column-wise concatenation: info columns come from the roster alone,
	// every gradebook is reindexed to the roster's students, and a column
	// name seen twice keeps its first occurrence.
	merged := roster.Clone()
	for _, book := range books {
		merged.AppendColumns(book.Reindex(roster.IDs()))
	}

	c := &Course{
		Info:        info,
		Assignments: assignments,
		Roster:      roster,
		Merged:      merged,
	}
	c.Grades = c.resolveGrades(diags)
	return c, nil
}

// resolveGrades collapses each test's version columns into one score column.
// A version column that no gradebook carries contributes an absent score.
func (c *Course) resolveGrades(diags *errors.Diagnostics) *gradebook.Table {
	grades := gradebook.New(c.testNames()...)
	for _, id := range c.Roster.IDs() {
		row := make([]gradebook.Cell, 0, grades.NumColumns())
		for _, a := range c.Assignments {
			for _, t := range a.Tests {
				versions := make([]grading.Score, len(t.Versions))
				for i, col := range t.Versions {
					versions[i] = scoreAt(c.Merged, id, col)
				}
				score := grading.ResolveScore(t.Name, id, versions, diags)
				if score.Absent {
					row = append(row, gradebook.Absent)
				} else {
					row = append(row, gradebook.FloatCell(score.Value))
				}
			}
		}
		// IDs were deduplicated during normalization, AppendRow cannot fail.
		_ = grades.AppendRow(id, row)
	}
	return grades
}

// Tests returns every test across every assignment, in declaration order.
func (c *Course) Tests() []grading.Test {
	var tests []grading.Test
	for _, a := range c.Assignments {
		tests = append(tests, a.Tests...)
	}
	return tests
}

func (c *Course) testNames() []string {
	var names []string
	for _, a := range c.Assignments {
		names = append(names, a.TestNames()...)
	}
	return names
}

// scoreAt reads a cell as a score. Missing columns and non-numeric values
// count as absent.
func scoreAt(t *gradebook.Table, id, column string) grading.Score {
	cell, ok := t.Cell(id, column)
	if !ok || cell.Absent {
		return grading.AbsentScore
	}
	v, ok := cell.Float()
	if !ok {
		return grading.AbsentScore
	}
	return grading.Present(v)
}
