package config

// Application constants shared across the gradecli tools.
const (
	AppName    = "gradecli"
	AppVersion = "1.2.0"

	// Default directories (relative to the working directory)
	DefaultDataDir       = "data"
	DefaultGradebooksDir = "data/gradebooks"
	DefaultReportsDir    = "data/reports"
	DefaultLogsDir       = "logs"

	// Log settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"

	// Test naming defaults. A versioned test expands to
	// "<name><VersionSeparator><i>" for i = 1..N, e.g. "Quiz 3 - v2";
	// a multi-test assignment expands to "<name><TestSeparator><i>".
	DefaultTestSeparator    = " "
	DefaultVersionSeparator = " - v"

	// Report column names
	FinalGradeColumn  = "Final grade"
	LetterGradeColumn = "Letter grade"
	MissedSuffix      = " missed"

	// Reimport file column names (fixed by the LMS import format)
	ReimportUsernameColumn    = "Username"
	ReimportNumeratorColumn   = "Adjusted Final Grade Numerator"
	ReimportDenominatorColumn = "Adjusted Final Grade Denominator"
	ReimportEOLColumn         = "End-Of-Line Indicator"
	ReimportPointsGradeSuffix = " Points Grade"
	ReimportUsernamePrefix    = "#"
	ReimportEOLMarker         = "#"
	ReimportDenominator       = "100"
)

// Report section names accepted by the report options.
const (
	SectionTests    = "tests"
	SectionAverages = "averages"
	SectionFinal    = "final"
	SectionLetter   = "letter"
	SectionMissed   = "missed"
)

// DefaultSections returns the report sections included when none are
// configured: assignment averages, missed counts, final grade, letter grade.
func DefaultSections() []string {
	return []string{SectionAverages, SectionMissed, SectionFinal, SectionLetter}
}

// DefaultThresholds returns the descending letter-grade cut points.
// A grade exactly at a threshold receives the higher letter.
func DefaultThresholds() []float64 {
	return []float64{93, 90, 87, 83, 80, 75, 65, 50}
}

// DefaultLetters returns the letter labels, one more than the thresholds.
func DefaultLetters() []string {
	return []string{"A", "A-", "B+", "B", "B-", "C+", "C", "D", "F"}
}

// InfoColumns names the standardized student info columns of a canonical
// gradebook table.
type InfoColumns struct {
	Last  string `yaml:"last"`
	First string `yaml:"first"`
	ID    string `yaml:"id"`
	Email string `yaml:"email"`
}

// DefaultInfoColumns returns the standard info column names.
func DefaultInfoColumns() InfoColumns {
	return InfoColumns{
		Last:  "Last Name",
		First: "First Name",
		ID:    "ID",
		Email: "Email",
	}
}

// Names returns the info column names in roster order: last, first, id, email.
func (ic InfoColumns) Names() []string {
	return []string{ic.Last, ic.First, ic.ID, ic.Email}
}

// withDefaults fills empty fields from the standard names.
func (ic InfoColumns) withDefaults() InfoColumns {
	def := DefaultInfoColumns()
	if ic.Last == "" {
		ic.Last = def.Last
	}
	if ic.First == "" {
		ic.First = def.First
	}
	if ic.ID == "" {
		ic.ID = def.ID
	}
	if ic.Email == "" {
		ic.Email = def.Email
	}
	return ic
}
