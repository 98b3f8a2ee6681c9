// Package gradebook provides the canonical in-memory gradebook table and
// the schema normalizer that maps heterogeneous spreadsheet exports onto it.
//
// A canonical table is keyed by a unique student identifier and starts with
// the standardized info columns (last name, first name, ID, email) followed
// by the raw score columns of the export. Missing values are explicit
// absent cells; they are never coerced to zero at this layer.
package gradebook
