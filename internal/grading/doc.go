// Package grading implements the grade computation primitives: grading
// schemes (mean, drop-lowest, weighted, custom), test and assignment
// definitions, multi-version score resolution, and the letter grade
// conversion used for reports and LMS reimports.
//
// Everything in this package is immutable configuration or a pure
// function. Schemes are stateless and safe to share across computations.
package grading
