package config

// ColumnMapping names the input columns of a raw gradebook export. A file
// carries either a Full name column or separate First/Last columns. Empty
// fields mean the column is not present in the export.
type ColumnMapping struct {
	Full  string `yaml:"full"`
	First string `yaml:"first"`
	Last  string `yaml:"last"`
	ID    string `yaml:"id"`
	Email string `yaml:"email"`
}

// IsZero reports whether no input column was mapped.
func (m ColumnMapping) IsZero() bool {
	return m == ColumnMapping{}
}

// Preset is a built-in description of a known export format: its column
// mapping, name ordering and the aliases the format uses for missing values.
type Preset struct {
	Columns       ColumnMapping
	LastNameFirst bool
	NameSeparator string
	MissingValues []string
}

// File-type preset identifiers.
const (
	PresetGradescope = "GS"
	PresetWebAssign  = "WA"
)

// presets holds the built-in export formats. Gradescope exports carry a
// single "Name" column (first name first) and an SID column; WebAssign
// exports carry "Fullname" (last name first, comma separated), no ID
// column, and use ND/NS for missing scores.
var presets = map[string]Preset{
	PresetGradescope: {
		Columns:       ColumnMapping{Full: "Name", ID: "SID", Email: "Email"},
		LastNameFirst: false,
		NameSeparator: " ",
	},
	PresetWebAssign: {
		Columns:       ColumnMapping{Full: "Fullname", Email: "Email"},
		LastNameFirst: true,
		NameSeparator: ", ",
		MissingValues: []string{"ND", "NS"},
	},
}

// PresetFor returns the built-in preset for a file type identifier.
func PresetFor(fileType string) (Preset, bool) {
	p, ok := presets[fileType]
	return p, ok
}

// PresetNames returns the known file type identifiers.
func PresetNames() []string {
	return []string{PresetGradescope, PresetWebAssign}
}
