package course

import (
	"gradecli/internal/config"
	"gradecli/internal/errors"
	"gradecli/internal/gradebook"
	"gradecli/internal/grading"
)

// ReportOptions selects what the graded report contains and how the final
// grade is derived from the per-assignment averages.
type ReportOptions struct {
	// Schemes are the course-level grading schemes; their maximum, applied
	// to the unscaled assignment averages, is the final grade. Empty means
	// a plain mean.
	Schemes []grading.Scheme
	// Scale maps final grades to letters.
	Scale grading.LetterScale
	// Sections picks the report sections. Empty means the default set:
	// averages, missed, final, letter.
	Sections []string
	// IncludeOthers names passthrough columns copied from the merged
	// gradebook, e.g. "Comments".
	IncludeOthers []string
}

// BuildReportOptions converts the declarative report configuration.
func BuildReportOptions(cfg config.ReportConfig) (ReportOptions, error) {
	schemes, err := grading.BuildSchemes(cfg.GradingSchemes)
	if err != nil {
		return ReportOptions{}, err
	}
	return ReportOptions{
		Schemes:       schemes,
		Scale:         grading.LetterScale{Thresholds: cfg.Thresholds, Letters: cfg.Letters},
		Sections:      cfg.Sections,
		IncludeOthers: cfg.IncludeOthers,
	}, nil
}

// sectionSet reports requested sections, falling back to the defaults.
type sectionSet map[string]bool

func newSectionSet(sections []string) sectionSet {
	if len(sections) == 0 {
		sections = config.DefaultSections()
	}
	s := make(sectionSet, len(sections))
	for _, name := range sections {
		s[name] = true
	}
	return s
}

// ComputeGrades produces the graded report: the roster info columns followed
// by the requested sections in fixed order (tests, averages, final grade,
// letter grade, missed counts, passthrough columns), one row per roster
// student in roster order.
func (c *Course) ComputeGrades(opts ReportOptions, diags *errors.Diagnostics) (*gradebook.Table, error) {
	scale := opts.Scale
	if len(scale.Thresholds) == 0 {
		scale.Thresholds = config.DefaultThresholds()
	}
	if len(scale.Letters) == 0 {
		scale.Letters = config.DefaultLetters()
	}
	scale.Validate(diags)

	include := newSectionSet(opts.Sections)
	needAverages := include[config.SectionAverages] || include[config.SectionFinal] || include[config.SectionLetter]
	needFinal := include[config.SectionFinal] || include[config.SectionLetter]

	// Section names are not column names; drop them from the passthrough
	// list instead of failing the lookup.
	var others []string
	for _, name := range opts.IncludeOthers {
		switch name {
		case config.SectionTests, config.SectionAverages, config.SectionFinal,
			config.SectionLetter, config.SectionMissed:
			continue
		}
		others = append(others, name)
	}

	columns := c.Info.Names()
	if include[config.SectionTests] {
		columns = append(columns, c.testNames()...)
	}
	if include[config.SectionAverages] {
		for _, a := range c.Assignments {
			columns = append(columns, a.Name)
		}
	}
	if include[config.SectionFinal] {
		columns = append(columns, config.FinalGradeColumn)
	}
	if include[config.SectionLetter] {
		columns = append(columns, config.LetterGradeColumn)
	}
	if include[config.SectionMissed] {
		for _, a := range c.Assignments {
			columns = append(columns, a.Name+config.MissedSuffix)
		}
	}
	columns = append(columns, others...)

	report := gradebook.New(columns...)
	for _, id := range c.Roster.IDs() {
		row, err := c.studentRow(id, include, needAverages, needFinal, opts.Schemes, scale, others)
		if err != nil {
			return nil, err
		}
		_ = report.AppendRow(id, row)
	}
	return report, nil
}

func (c *Course) studentRow(id string, include sectionSet, needAverages, needFinal bool,
	schemes []grading.Scheme, scale grading.LetterScale, others []string) ([]gradebook.Cell, error) {

	rosterCells, _ := c.Roster.Row(id)
	row := append([]gradebook.Cell(nil), rosterCells...)

	if include[config.SectionTests] {
		for _, name := range c.testNames() {
			cell, _ := c.Grades.Cell(id, name)
			row = append(row, cell)
		}
	}

	// Averages substitute 0 for absent scores and normalize each test by
	// its max points; the unscaled (0 to 1) averages feed the final grade.
	var (
		averageCells  []gradebook.Cell
		unscaledNames []string
		unscaled      []float64
	)
	if needAverages {
		for _, a := range c.Assignments {
			values := make([]float64, len(a.Tests))
			for i, t := range a.Tests {
				score := scoreAt(c.Grades, id, t.Name)
				if !score.Absent {
					values[i] = score.Value / t.MaxPoints
				}
			}
			avg, err := grading.MaxOf(a.Schemes, grading.Input{Names: a.TestNames(), Values: values})
			if err != nil {
				return nil, err
			}
			averageCells = append(averageCells, gradebook.FloatCell(avg*a.Scaling))
			unscaledNames = append(unscaledNames, a.Name)
			unscaled = append(unscaled, avg)
		}
	}
	if include[config.SectionAverages] {
		row = append(row, averageCells...)
	}

	var final float64
	if needFinal {
		f, err := grading.MaxOf(schemes, grading.Input{Names: unscaledNames, Values: unscaled})
		if err != nil {
			return nil, err
		}
		final = f * 100
	}
	if include[config.SectionFinal] {
		row = append(row, gradebook.FloatCell(final))
	}
	if include[config.SectionLetter] {
		row = append(row, gradebook.CellOf(scale.ToLetter(final)))
	}

	if include[config.SectionMissed] {
		for _, a := range c.Assignments {
			missed := 0
			for _, t := range a.Tests {
				if cell, ok := c.Grades.Cell(id, t.Name); !ok || cell.Absent {
					missed++
				}
			}
			row = append(row, gradebook.FloatCell(float64(missed)))
		}
	}

	for _, name := range others {
		cell, ok := c.Merged.Cell(id, name)
		if !ok {
			return nil, errors.LookupError("column %q is not in any gradebook", name)
		}
		row = append(row, cell)
	}
	return row, nil
}
