package errors

import (
	"fmt"
	"log/slog"
	"sync"
)

// Diagnostic codes for non-fatal findings surfaced during a run.
const (
	DiagMissingStudents   = "MISSING_STUDENTS"
	DiagMultiVersionScore = "MULTI_VERSION_SCORE"
	DiagNameSplit         = "NAME_SPLIT"
	DiagThresholdOrder    = "THRESHOLDS_UNSORTED"
	DiagThresholdCount    = "THRESHOLD_LETTER_MISMATCH"
)

// Diagnostic is a single non-fatal finding. Execution continues so one
// run can surface multiple unrelated warnings.
type Diagnostic struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Details != nil {
		return fmt.Sprintf("%s: %s: %v", d.Code, d.Message, d.Details)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Diagnostics collects non-fatal findings and mirrors each one to the
// logger as it is added. The zero value logs to slog.Default().
// Safe for concurrent use; gradebook sources are normalized in parallel.
type Diagnostics struct {
	mu      sync.Mutex
	logger  *slog.Logger
	entries []Diagnostic
}

// NewDiagnostics creates a collector that logs through the given logger.
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	return &Diagnostics{logger: logger}
}

// Add records a diagnostic and logs it at warn level.
func (d *Diagnostics) Add(code, message string, details interface{}) {
	d.mu.Lock()
	d.entries = append(d.entries, Diagnostic{Code: code, Message: message, Details: details})
	logger := d.logger
	d.mu.Unlock()
	if logger == nil {
		logger = slog.Default()
	}
	if details != nil {
		logger.Warn(message, slog.String("code", code), slog.Any("details", details))
	} else {
		logger.Warn(message, slog.String("code", code))
	}
}

// Addf records a diagnostic with a formatted message and no details.
func (d *Diagnostics) Addf(code, format string, args ...interface{}) {
	d.Add(code, fmt.Sprintf(format, args...), nil)
}

// Entries returns the collected diagnostics in the order they were added.
func (d *Diagnostics) Entries() []Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()
	entries := make([]Diagnostic, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// Count returns the number of collected diagnostics.
func (d *Diagnostics) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// HasCode reports whether any collected diagnostic carries the given code.
func (d *Diagnostics) HasCode(code string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.entries {
		if e.Code == code {
			return true
		}
	}
	return false
}
