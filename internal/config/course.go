package config

import "fmt"

// FloatOrList accepts either a YAML scalar or a YAML sequence of numbers.
// A scalar is kept as a single-element list and broadcast by the consumer.
type FloatOrList struct {
	Values []float64
	Scalar bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FloatOrList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var scalar float64
	if err := unmarshal(&scalar); err == nil {
		f.Values = []float64{scalar}
		f.Scalar = true
		return nil
	}
	var list []float64
	if err := unmarshal(&list); err != nil {
		return fmt.Errorf("expected a number or a list of numbers: %w", err)
	}
	f.Values = list
	f.Scalar = false
	return nil
}

// IntOrList accepts either a YAML scalar or a YAML sequence of integers.
type IntOrList struct {
	Values []int
	Scalar bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *IntOrList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var scalar int
	if err := unmarshal(&scalar); err == nil {
		f.Values = []int{scalar}
		f.Scalar = true
		return nil
	}
	var list []int
	if err := unmarshal(&list); err != nil {
		return fmt.Errorf("expected an integer or a list of integers: %w", err)
	}
	f.Values = list
	f.Scalar = false
	return nil
}

// SourceConfig describes one gradebook export file. Either FileType selects
// a built-in preset, or Columns supplies an explicit mapping; an explicit
// mapping overrides the preset. The first source in the list is the
// reference gradebook that fixes the roster.
type SourceConfig struct {
	Path          string        `yaml:"path" validate:"required"`
	FileType      string        `yaml:"file_type" validate:"omitempty,oneof=GS WA"`
	Columns       ColumnMapping `yaml:"columns"`
	LastNameFirst *bool         `yaml:"last_name_first"`
	NameSeparator string        `yaml:"name_separator"`
	MissingValues []string      `yaml:"missing_values"`
}

// SchemeConfig describes one grading scheme. Kind selects the variant:
// "mean" (default), "drop" with Drop lowest scores removed, or "weights"
// with either a positional Weights list or a name-keyed WeightMap.
type SchemeConfig struct {
	Kind      string             `yaml:"kind" validate:"omitempty,oneof=mean drop weights"`
	Drop      int                `yaml:"drop" validate:"gte=0"`
	Weights   []float64          `yaml:"weights"`
	WeightMap map[string]float64 `yaml:"weight_map"`
}

// AssignmentConfig describes one assignment family. NbTests of zero means a
// single test named after the assignment; otherwise tests are named
// "<name><test_separator><i>". MaxPoints and NbVersions broadcast scalars
// across tests, or supply one entry per test.
type AssignmentConfig struct {
	Name             string         `yaml:"name" validate:"required"`
	MaxPoints        FloatOrList    `yaml:"max_points" validate:"required"`
	NbTests          int            `yaml:"nb_tests" validate:"gte=0"`
	TestSeparator    string         `yaml:"test_separator"`
	NbVersions       *IntOrList     `yaml:"nb_versions"`
	VersionSeparator string         `yaml:"version_separator"`
	Scaling          *float64       `yaml:"scaling"`
	GradingSchemes   []SchemeConfig `yaml:"grading_schemes" validate:"dive"`
}

// ReportConfig controls which sections the graded report includes and how
// the final grade is computed from the per-assignment averages.
type ReportConfig struct {
	Sections       []string       `yaml:"sections" validate:"dive,oneof=tests averages final letter missed"`
	IncludeOthers  []string       `yaml:"include_others"`
	GradingSchemes []SchemeConfig `yaml:"grading_schemes" validate:"dive"`
	Thresholds     []float64      `yaml:"thresholds"`
	Letters        []string       `yaml:"letters"`
	SortByFinal    bool           `yaml:"sort_by_final"`
	OutputFile     string         `yaml:"output_file"`
}

// ReimportConfig controls the LMS reimport file produced from a graded
// (possibly hand-edited) report.
type ReimportConfig struct {
	LetterGradeColumn string   `yaml:"letter_grade_column"`
	Standardize       *bool    `yaml:"standardize"`
	IncludeOthers     []string `yaml:"include_others"`
	Thresholds        []float64 `yaml:"thresholds"`
	Letters           []string  `yaml:"letters"`
}

// CourseConfig is the declarative course definition: where the gradebook
// exports live, how they map onto canonical columns, and how grades are
// computed from them.
type CourseConfig struct {
	InfoColumns InfoColumns        `yaml:"info_columns"`
	Gradebooks  []SourceConfig     `yaml:"gradebooks" validate:"min=1,dive"`
	Assignments []AssignmentConfig `yaml:"assignments" validate:"min=1,dive"`
	Report      ReportConfig       `yaml:"report"`
	Reimport    ReimportConfig     `yaml:"reimport"`
}

// normalize fills defaulted course fields in place.
func (c *CourseConfig) normalize() {
	c.InfoColumns = c.InfoColumns.withDefaults()
	if len(c.Report.Sections) == 0 {
		c.Report.Sections = DefaultSections()
	}
	if len(c.Report.Thresholds) == 0 {
		c.Report.Thresholds = DefaultThresholds()
	}
	if len(c.Report.Letters) == 0 {
		c.Report.Letters = DefaultLetters()
	}
	if c.Reimport.LetterGradeColumn == "" {
		c.Reimport.LetterGradeColumn = LetterGradeColumn
	}
	if len(c.Reimport.Thresholds) == 0 {
		c.Reimport.Thresholds = DefaultThresholds()
	}
	if len(c.Reimport.Letters) == 0 {
		c.Reimport.Letters = DefaultLetters()
	}
}
