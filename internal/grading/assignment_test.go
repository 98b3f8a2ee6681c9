package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradecli/internal/config"
)

func TestNewTestVersions(t *testing.T) {
	tests := []struct {
		name       string
		testName   string
		nbVersions int
		separator  string
		expected   []string
	}{
		{
			name:       "bare test",
			testName:   "Quiz 5",
			nbVersions: 0,
			expected:   []string{"Quiz 5"},
		},
		{
			name:       "single version is still suffixed",
			testName:   "Quiz 5",
			nbVersions: 1,
			expected:   []string{"Quiz 5 - v1"},
		},
		{
			name:       "three versions",
			testName:   "Quiz 3",
			nbVersions: 3,
			expected:   []string{"Quiz 3 - v1", "Quiz 3 - v2", "Quiz 3 - v3"},
		},
		{
			name:       "custom separator",
			testName:   "Midterm",
			nbVersions: 2,
			separator:  " #",
			expected:   []string{"Midterm #1", "Midterm #2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := NewTest(tt.testName, 20, tt.nbVersions, tt.separator)
			assert.Equal(t, tt.expected, test.Versions)
		})
	}
}

func TestNewAssignmentSingleTest(t *testing.T) {
	a, err := NewAssignment(AssignmentSpec{
		Name:            "Final Exam",
		MaxPoints:       []float64{40},
		MaxPointsScalar: true,
	})
	require.NoError(t, err)

	require.Len(t, a.Tests, 1)
	assert.Equal(t, "Final Exam", a.Tests[0].Name)
	assert.Equal(t, 40.0, a.Tests[0].MaxPoints)
	// A scalar max_points doubles as the default scaling.
	assert.Equal(t, 40.0, a.Scaling)
}

func TestNewAssignmentBroadcast(t *testing.T) {
	a, err := NewAssignment(AssignmentSpec{
		Name:            "Quiz",
		MaxPoints:       []float64{10},
		MaxPointsScalar: true,
		NbTests:         3,
		NbVersions:      []int{2},
	})
	require.NoError(t, err)

	require.Len(t, a.Tests, 3)
	assert.Equal(t, []string{"Quiz 1", "Quiz 2", "Quiz 3"}, a.TestNames())
	for _, test := range a.Tests {
		assert.Equal(t, 10.0, test.MaxPoints)
		assert.Len(t, test.Versions, 2)
	}
	assert.Equal(t, []string{"Quiz 2 - v1", "Quiz 2 - v2"}, a.Tests[1].Versions)
}

func TestNewAssignmentPerTestValues(t *testing.T) {
	a, err := NewAssignment(AssignmentSpec{
		Name:       "HW",
		MaxPoints:  []float64{20, 30, 50},
		NbTests:    3,
		NbVersions: []int{0, 2, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 30.0, a.Tests[1].MaxPoints)
	assert.Equal(t, []string{"HW 1"}, a.Tests[0].Versions)
	assert.Equal(t, []string{"HW 2 - v1", "HW 2 - v2"}, a.Tests[1].Versions)
	// Without a scalar max_points the default scaling is 100.
	assert.Equal(t, 100.0, a.Scaling)
}

func TestNewAssignmentLengthMismatch(t *testing.T) {
	_, err := NewAssignment(AssignmentSpec{
		Name:      "HW",
		MaxPoints: []float64{20, 30},
		NbTests:   3,
	})
	assert.Error(t, err)
}

func TestNewAssignmentSchemeArity(t *testing.T) {
	_, err := NewAssignment(AssignmentSpec{
		Name:            "Quiz",
		MaxPoints:       []float64{10},
		MaxPointsScalar: true,
		NbTests:         2,
		Schemes:         []Scheme{Drop(2)},
	})
	assert.Error(t, err)
}

func TestNewAssignmentExplicitScaling(t *testing.T) {
	scaling := 25.0
	a, err := NewAssignment(AssignmentSpec{
		Name:            "Lab",
		MaxPoints:       []float64{10},
		MaxPointsScalar: true,
		Scaling:         &scaling,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, a.Scaling)
}

func TestBuildAssignments(t *testing.T) {
	cfgs := []config.AssignmentConfig{
		{
			Name:      "Quiz",
			MaxPoints: config.FloatOrList{Values: []float64{10}, Scalar: true},
			NbTests:   4,
			GradingSchemes: []config.SchemeConfig{
				{Kind: "drop", Drop: 1},
			},
		},
		{
			Name:      "Final Exam",
			MaxPoints: config.FloatOrList{Values: []float64{40}, Scalar: true},
		},
	}

	assignments, err := BuildAssignments(cfgs)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, []string{"Quiz 1", "Quiz 2", "Quiz 3", "Quiz 4"}, assignments[0].TestNames())
	assert.Equal(t, SchemeDrop, assignments[0].Schemes[0].Kind())
	assert.Equal(t, []string{"Final Exam"}, assignments[1].TestNames())
}
