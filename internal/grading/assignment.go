package grading

import (
	"fmt"

	"gradecli/internal/config"
	"gradecli/internal/errors"
)

// Test is one specific test, such as "Quiz 1" or "HW 2". A bare test has a
// single version named after the test itself; a versioned test expands to
// "<name><separator><i>" for i = 1..N, e.g. "Quiz 3 - v1", "Quiz 3 - v2".
// Note the asymmetry: nbVersions of zero yields ["Quiz 5"], nbVersions of
// one yields ["Quiz 5 - v1"].
type Test struct {
	Name      string
	MaxPoints float64
	Versions  []string
}

// NewTest creates a test definition. nbVersions of zero means a bare test.
func NewTest(name string, maxPoints float64, nbVersions int, versionSeparator string) Test {
	if versionSeparator == "" {
		versionSeparator = config.DefaultVersionSeparator
	}
	t := Test{Name: name, MaxPoints: maxPoints}
	if nbVersions <= 0 {
		t.Versions = []string{name}
		return t
	}
	for i := 1; i <= nbVersions; i++ {
		t.Versions = append(t.Versions, fmt.Sprintf("%s%s%d", name, versionSeparator, i))
	}
	return t
}

// AssignmentSpec describes an assignment family before validation.
// MaxPoints and NbVersions hold either one entry that broadcasts across
// all tests, or exactly one entry per test. A nil NbVersions means every
// test is bare.
type AssignmentSpec struct {
	Name             string
	MaxPoints        []float64
	MaxPointsScalar  bool
	NbTests          int
	TestSeparator    string
	NbVersions       []int
	VersionSeparator string
	Scaling          *float64
	Schemes          []Scheme
}

// Assignment is a validated assignment family: its tests, the grading
// schemes whose maximum produces the assignment average, and the scaling
// the average is re-expressed against for display.
type Assignment struct {
	Name    string
	Tests   []Test
	Schemes []Scheme
	Scaling float64
}

// TestNames returns the test names in declaration order.
func (a Assignment) TestNames() []string {
	names := make([]string, len(a.Tests))
	for i, t := range a.Tests {
		names[i] = t.Name
	}
	return names
}

// NewAssignment validates a spec and expands it into an Assignment.
// Mismatched per-test array lengths and scheme parameters that cannot fit
// the test count are hard errors.
func NewAssignment(spec AssignmentSpec) (Assignment, error) {
	if spec.Name == "" {
		return Assignment{}, errors.ConfigError("assignment needs a name")
	}

	nbTests := spec.NbTests
	if nbTests <= 0 {
		nbTests = 1
	}

	maxPoints, err := broadcastFloats(spec.MaxPoints, spec.MaxPointsScalar, nbTests)
	if err != nil {
		return Assignment{}, errors.ConfigError("assignment %s: max_points %v", spec.Name, err)
	}

	versions, err := broadcastInts(spec.NbVersions, nbTests)
	if err != nil {
		return Assignment{}, errors.ConfigError("assignment %s: nb_versions %v", spec.Name, err)
	}

	schemes := spec.Schemes
	if len(schemes) == 0 {
		schemes = []Scheme{Mean()}
	}
	for _, s := range schemes {
		if err := s.validateForCount(nbTests, testNamesFor(spec, nbTests)); err != nil {
			return Assignment{}, fmt.Errorf("assignment %s: %w", spec.Name, err)
		}
	}

	scaling := 100.0
	switch {
	case spec.Scaling != nil:
		scaling = *spec.Scaling
	case spec.MaxPointsScalar:
		scaling = maxPoints[0]
	}

	a := Assignment{Name: spec.Name, Schemes: schemes, Scaling: scaling}
	names := testNamesFor(spec, nbTests)
	for i := 0; i < nbTests; i++ {
		a.Tests = append(a.Tests, NewTest(names[i], maxPoints[i], versions[i], spec.VersionSeparator))
	}
	return a, nil
}

// testNamesFor derives the test names: the bare assignment name for a
// single-test family, "<name><sep><i>" otherwise.
func testNamesFor(spec AssignmentSpec, nbTests int) []string {
	if spec.NbTests <= 0 {
		return []string{spec.Name}
	}
	sep := spec.TestSeparator
	if sep == "" {
		sep = config.DefaultTestSeparator
	}
	names := make([]string, nbTests)
	for i := range names {
		names[i] = fmt.Sprintf("%s%s%d", spec.Name, sep, i+1)
	}
	return names
}

// broadcastFloats expands a scalar across all tests; an explicit list must
// match the test count exactly.
func broadcastFloats(values []float64, scalar bool, n int) ([]float64, error) {
	switch {
	case len(values) == 0:
		return nil, fmt.Errorf("is required")
	case scalar && len(values) == 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case len(values) == n:
		return values, nil
	default:
		return nil, fmt.Errorf("has %d entries for %d tests", len(values), n)
	}
}

// broadcastInts expands a scalar version count across all tests; nil means
// every test is bare.
func broadcastInts(values []int, n int) ([]int, error) {
	switch {
	case len(values) == 0:
		return make([]int, n), nil
	case len(values) == 1:
		out := make([]int, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case len(values) == n:
		return values, nil
	default:
		return nil, fmt.Errorf("has %d entries for %d tests", len(values), n)
	}
}

// BuildAssignment converts a declarative assignment configuration.
func BuildAssignment(cfg config.AssignmentConfig) (Assignment, error) {
	schemes, err := BuildSchemes(cfg.GradingSchemes)
	if err != nil {
		return Assignment{}, errors.ConfigError("assignment %s: %v", cfg.Name, err)
	}
	spec := AssignmentSpec{
		Name:             cfg.Name,
		MaxPoints:        cfg.MaxPoints.Values,
		MaxPointsScalar:  cfg.MaxPoints.Scalar,
		NbTests:          cfg.NbTests,
		TestSeparator:    cfg.TestSeparator,
		VersionSeparator: cfg.VersionSeparator,
		Scaling:          cfg.Scaling,
		Schemes:          schemes,
	}
	if cfg.NbVersions != nil {
		spec.NbVersions = cfg.NbVersions.Values
	}
	return NewAssignment(spec)
}

// BuildAssignments converts a list of assignment configurations,
// preserving declaration order.
func BuildAssignments(cfgs []config.AssignmentConfig) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(cfgs))
	for _, c := range cfgs {
		a, err := BuildAssignment(c)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
