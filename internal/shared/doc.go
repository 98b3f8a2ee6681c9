// Package shared provides common utilities and test helpers used across the
// gradecli codebase. It serves as a central location for functionality that
// does not belong to any specific pipeline stage.
//
// The testutil subpackage provides an in-memory slog handler and assertions
// for verifying structured log output in tests.
package shared
