// Package config provides configuration loading and validation for the
// gradecli tools.
//
// Configuration is resolved in two layers: a YAML file (gradecli.yaml next
// to the executable or given with -config) and environment variables with
// the GRADE prefix, where the environment wins. The course definition
// (gradebook sources, assignments, grading schemes, letter thresholds and
// report options) lives in the same file so a grading run is fully
// declarative.
//
// The package also owns the built-in file-type presets (Gradescope and
// WebAssign exports) and the default constants shared across the pipeline.
package config
