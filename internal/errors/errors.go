package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for the grading pipeline. Fatal errors abort the current
// operation; diagnostics (see diagnostics.go) never do.
const (
	CodeSchema     = "SCHEMA_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeConfig     = "CONFIG_ERROR"
	CodeLookup     = "LOOKUP_ERROR"
)

// DomainError represents a structured pipeline error
type DomainError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

// New creates a new DomainError with the given code and message
func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// NewWithDetails creates a new DomainError with additional details,
// typically the affected row keys or column names.
func NewWithDetails(code, message string, details interface{}) *DomainError {
	return &DomainError{Code: code, Message: message, Details: details}
}

// SchemaError reports an input table whose columns cannot be resolved
// (no name columns, no ID/email column).
func SchemaError(message string) *DomainError {
	return New(CodeSchema, message)
}

// ValidationError reports rows that resolved to unusable identifiers,
// listing the affected students.
func ValidationError(message string, affected interface{}) *DomainError {
	return NewWithDetails(CodeValidation, message, affected)
}

// ConfigError reports invalid grading configuration detected at
// construction time (mismatched lengths, bad scheme parameters).
func ConfigError(format string, args ...interface{}) *DomainError {
	return New(CodeConfig, fmt.Sprintf(format, args...))
}

// LookupError reports a key that should exist but does not, such as a
// letter grade absent from the configured letter list.
func LookupError(format string, args ...interface{}) *DomainError {
	return New(CodeLookup, fmt.Sprintf(format, args...))
}

// HasCode reports whether err is (or wraps) a DomainError with the given code.
func HasCode(err error, code string) bool {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsSchema reports whether err is a schema resolution failure.
func IsSchema(err error) bool { return HasCode(err, CodeSchema) }

// IsValidation reports whether err is an identifier validation failure.
func IsValidation(err error) bool { return HasCode(err, CodeValidation) }

// IsConfig reports whether err is a configuration failure.
func IsConfig(err error) bool { return HasCode(err, CodeConfig) }

// IsLookup reports whether err is a lookup failure.
func IsLookup(err error) bool { return HasCode(err, CodeLookup) }
