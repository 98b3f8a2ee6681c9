package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradecli/internal/config"
	"gradecli/internal/errors"
	"gradecli/internal/gradebook"
	"gradecli/internal/grading"
	"gradecli/internal/shared/testutil"
)

func newDiags(t *testing.T) *errors.Diagnostics {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	return errors.NewDiagnostics(logger)
}

// buildGradebook creates a normalized gradebook table with standard info
// columns plus the given score columns.
func buildGradebook(t *testing.T, ids []string, scores map[string][]gradebook.Cell) *gradebook.Table {
	t.Helper()

	columns := config.DefaultInfoColumns().Names()
	var scoreCols []string
	for col := range scores {
		scoreCols = append(scoreCols, col)
	}
	// Map iteration order must not leak into the table layout.
	for i := 0; i < len(scoreCols); i++ {
		for j := i + 1; j < len(scoreCols); j++ {
			if scoreCols[j] < scoreCols[i] {
				scoreCols[i], scoreCols[j] = scoreCols[j], scoreCols[i]
			}
		}
	}
	columns = append(columns, scoreCols...)

	table := gradebook.New(columns...)
	for ri, id := range ids {
		row := []gradebook.Cell{
			gradebook.CellOf("Last " + id),
			gradebook.CellOf("First " + id),
			gradebook.CellOf(id),
			gradebook.CellOf(id + "@school.edu"),
		}
		for _, col := range scoreCols {
			row = append(row, scores[col][ri])
		}
		require.NoError(t, table.AppendRow(id, row))
	}
	return table
}

func mustAssignment(t *testing.T, spec grading.AssignmentSpec) grading.Assignment {
	t.Helper()
	a, err := grading.NewAssignment(spec)
	require.NoError(t, err)
	return a
}

func TestNewCourseRosterFromFirstGradebook(t *testing.T) {
	first := buildGradebook(t, []string{"s1", "s2", "s3"}, map[string][]gradebook.Cell{
		"HW 1": {gradebook.FloatCell(10), gradebook.FloatCell(12), gradebook.Absent},
	})
	second := buildGradebook(t, []string{"s1", "s2"}, map[string][]gradebook.Cell{
		"Quiz 1": {gradebook.FloatCell(8), gradebook.FloatCell(9)},
	})

	hw := mustAssignment(t, grading.AssignmentSpec{
		Name: "HW 1", MaxPoints: []float64{20}, MaxPointsScalar: true,
	})
	quiz := mustAssignment(t, grading.AssignmentSpec{
		Name: "Quiz 1", MaxPoints: []float64{10}, MaxPointsScalar: true,
	})

	diags := newDiags(t)
	c, err := New([]*gradebook.Table{first, second}, []grading.Assignment{hw, quiz}, config.DefaultInfoColumns(), diags)
	require.NoError(t, err)

	// The roster is fixed by the first gradebook.
	assert.Equal(t, []string{"s1", "s2", "s3"}, c.Roster.IDs())
	assert.Equal(t, []string{"s1", "s2", "s3"}, c.Grades.IDs())

	// s3 is missing from the second gradebook: diagnostic plus absent cells.
	require.Equal(t, 1, diags.Count())
	entry := diags.Entries()[0]
	assert.Equal(t, errors.DiagMissingStudents, entry.Code)
	assert.Contains(t, entry.Message, "s3")
	assert.Contains(t, entry.Message, "gradebook 1")

	cell, ok := c.Grades.Cell("s3", "Quiz 1")
	require.True(t, ok)
	assert.True(t, cell.Absent)

	// Extra students in later gradebooks would be dropped; present ones merge.
	cell, _ = c.Grades.Cell("s2", "Quiz 1")
	assert.Equal(t, "9", cell.Value)
}

func TestNewCourseResolvesVersions(t *testing.T) {
	book := buildGradebook(t, []string{"s1", "s2", "s3"}, map[string][]gradebook.Cell{
		"Quiz 1 - v1": {gradebook.FloatCell(7), gradebook.Absent, gradebook.FloatCell(5)},
		"Quiz 1 - v2": {gradebook.Absent, gradebook.FloatCell(9), gradebook.FloatCell(6)},
	})

	quiz := mustAssignment(t, grading.AssignmentSpec{
		Name: "Quiz", MaxPoints: []float64{10}, MaxPointsScalar: true,
		NbTests: 1, NbVersions: []int{2},
	})

	diags := newDiags(t)
	c, err := New([]*gradebook.Table{book}, []grading.Assignment{quiz}, config.DefaultInfoColumns(), diags)
	require.NoError(t, err)

	cell, _ := c.Grades.Cell("s1", "Quiz 1")
	assert.Equal(t, "7", cell.Value)
	cell, _ = c.Grades.Cell("s2", "Quiz 1")
	assert.Equal(t, "9", cell.Value)

	// s3 has both versions: the first wins and a diagnostic is recorded.
	cell, _ = c.Grades.Cell("s3", "Quiz 1")
	assert.Equal(t, "5", cell.Value)
	assert.True(t, diags.HasCode(errors.DiagMultiVersionScore))
}

func TestNewCourseMissingVersionColumn(t *testing.T) {
	book := buildGradebook(t, []string{"s1"}, map[string][]gradebook.Cell{
		"HW 1": {gradebook.FloatCell(15)},
	})

	hw := mustAssignment(t, grading.AssignmentSpec{
		Name: "HW", MaxPoints: []float64{20}, MaxPointsScalar: true, NbTests: 2,
	})

	c, err := New([]*gradebook.Table{book}, []grading.Assignment{hw}, config.DefaultInfoColumns(), newDiags(t))
	require.NoError(t, err)

	// HW 2 exists in no gradebook: the score is absent, not an error.
	cell, ok := c.Grades.Cell("s1", "HW 2")
	require.True(t, ok)
	assert.True(t, cell.Absent)
}

func TestNewCourseRequiresInputs(t *testing.T) {
	book := buildGradebook(t, []string{"s1"}, nil)
	hw := mustAssignment(t, grading.AssignmentSpec{
		Name: "HW", MaxPoints: []float64{20}, MaxPointsScalar: true,
	})

	_, err := New(nil, []grading.Assignment{hw}, config.DefaultInfoColumns(), newDiags(t))
	assert.Error(t, err)

	_, err = New([]*gradebook.Table{book}, nil, config.DefaultInfoColumns(), newDiags(t))
	assert.Error(t, err)
}
