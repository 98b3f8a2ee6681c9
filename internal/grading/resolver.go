package grading

import (
	"gradecli/internal/errors"
)

// ResolveScore picks a single score for a test from its version columns.
// Version order is authoritative: when a student has values in more than one
// version the first one wins and a diagnostic is recorded.
func ResolveScore(testName, studentID string, versions []Score, diags *errors.Diagnostics) Score {
	var (
		resolved Score
		found    int
	)
	for _, v := range versions {
		if v.Absent {
			continue
		}
		if found == 0 {
			resolved = v
		}
		found++
	}
	if found == 0 {
		return AbsentScore
	}
	if found > 1 {
		diags.Addf(errors.DiagMultiVersionScore,
			"student %s has scores in multiple versions of %s", studentID, testName)
	}
	return resolved
}
