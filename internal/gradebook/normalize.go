package gradebook

import (
	"fmt"
	"strings"

	"gradecli/internal/config"
	"gradecli/internal/errors"
)

// Options controls how one raw export is normalized. FileType selects a
// built-in preset; a non-zero Columns mapping overrides the preset's
// mapping, and the remaining fields override the preset's name-splitting
// and missing-value settings when set.
type Options struct {
	FileType      string
	Columns       config.ColumnMapping
	InfoColumns   config.InfoColumns
	LastNameFirst *bool
	NameSeparator string
	MissingValues []string
}

// resolved is the effective normalization configuration after preset and
// override merging.
type resolved struct {
	columns       config.ColumnMapping
	info          config.InfoColumns
	lastNameFirst bool
	nameSeparator string
	missing       map[string]struct{}
}

func (o Options) resolve() (resolved, error) {
	r := resolved{
		columns:       o.Columns,
		info:          o.InfoColumns,
		nameSeparator: o.NameSeparator,
		missing:       make(map[string]struct{}),
	}
	if (r.info == config.InfoColumns{}) {
		r.info = config.DefaultInfoColumns()
	}
	missingValues := o.MissingValues

	if o.FileType != "" {
		preset, ok := config.PresetFor(o.FileType)
		if !ok {
			return resolved{}, errors.ConfigError("unknown file type preset %q (known: %v)", o.FileType, config.PresetNames())
		}
		if r.columns.IsZero() {
			r.columns = preset.Columns
		}
		if o.LastNameFirst == nil {
			r.lastNameFirst = preset.LastNameFirst
		} else {
			r.lastNameFirst = *o.LastNameFirst
		}
		if r.nameSeparator == "" {
			r.nameSeparator = preset.NameSeparator
		}
		if missingValues == nil {
			missingValues = preset.MissingValues
		}
	} else if o.LastNameFirst != nil {
		r.lastNameFirst = *o.LastNameFirst
	}

	for _, alias := range missingValues {
		r.missing[alias] = struct{}{}
	}
	return r, nil
}

// cell converts a raw string to a cell, mapping configured aliases to the
// absent marker.
func (r resolved) cell(raw string) Cell {
	if _, isAlias := r.missing[strings.TrimSpace(raw)]; isAlias {
		return Absent
	}
	return CellOf(raw)
}

// Normalize maps one raw export onto the canonical table: standardized
// info columns first, then every unconsumed raw column, keyed by the
// resolved student ID. Non-fatal findings go to diags; unresolvable
// schemas and unusable identifiers abort with an error.
func Normalize(raw *RawTable, opts Options, diags *errors.Diagnostics) (*Table, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	lasts, firsts, err := resolveNames(raw, r, diags)
	if err != nil {
		return nil, err
	}

	ids, emails, err := resolveIDs(raw, r)
	if err != nil {
		return nil, err
	}

	// Every student must have resolved to an ID.
	var unidentified []string
	for i := range ids {
		if ids[i].Absent {
			unidentified = append(unidentified, fmt.Sprintf("%s %s", firsts[i].Value, lasts[i].Value))
		}
	}
	if len(unidentified) > 0 {
		return nil, errors.ValidationError("some students have neither an ID nor an email", unidentified)
	}

	// IDs must be unique within one table.
	seen := make(map[string]int, len(ids))
	var duplicates []string
	for i := range ids {
		seen[ids[i].Value]++
		if seen[ids[i].Value] == 2 {
			duplicates = append(duplicates, ids[i].Value)
		}
	}
	if len(duplicates) > 0 {
		return nil, errors.ValidationError("some student IDs are duplicated", duplicates)
	}

	// Assemble the canonical table: info columns, then passthrough columns.
	consumed := map[string]struct{}{}
	for _, name := range []string{r.columns.Full, r.columns.First, r.columns.Last, r.columns.ID, r.columns.Email} {
		if name != "" {
			consumed[name] = struct{}{}
		}
	}
	columns := r.info.Names()
	var passthrough []int
	for ci, name := range raw.Columns {
		if _, ok := consumed[name]; ok {
			continue
		}
		columns = append(columns, name)
		passthrough = append(passthrough, ci)
	}

	table := New(columns...)
	for i := range raw.Rows {
		row := make([]Cell, 0, len(columns))
		row = append(row, lasts[i], firsts[i], ids[i], emails[i])
		for _, ci := range passthrough {
			row = append(row, r.cell(raw.Value(i, ci)))
		}
		if err := table.AppendRow(ids[i].Value, row); err != nil {
			return nil, errors.ValidationError("some student IDs are duplicated", []string{ids[i].Value})
		}
	}
	return table, nil
}

// resolveNames produces the last and first name cells for every row.
// Separate first/last columns are copied; a lone full-name column is split
// on the configured separator.
func resolveNames(raw *RawTable, r resolved, diags *errors.Diagnostics) (lasts, firsts []Cell, err error) {
	n := len(raw.Rows)
	lasts = make([]Cell, n)
	firsts = make([]Cell, n)

	switch {
	case r.columns.First != "" && r.columns.Last != "":
		firstIdx := raw.ColumnIndex(r.columns.First)
		lastIdx := raw.ColumnIndex(r.columns.Last)
		if firstIdx < 0 || lastIdx < 0 {
			return nil, nil, errors.SchemaError(fmt.Sprintf(
				"mapped name columns %q/%q not found in input", r.columns.First, r.columns.Last))
		}
		for i := 0; i < n; i++ {
			firsts[i] = r.cell(raw.Value(i, firstIdx))
			lasts[i] = r.cell(raw.Value(i, lastIdx))
		}

	case r.columns.Full != "":
		fullIdx := raw.ColumnIndex(r.columns.Full)
		if fullIdx < 0 {
			return nil, nil, errors.SchemaError(fmt.Sprintf(
				"mapped full-name column %q not found in input", r.columns.Full))
		}
		separator := r.nameSeparator
		if separator == "" {
			separator = " "
		}
		var oversplit []string
		for i := 0; i < n; i++ {
			full := raw.Value(i, fullIdx)
			parts := strings.Split(full, separator)
			if len(parts) > 2 {
				oversplit = append(oversplit, full)
			}
			var first, last string
			if r.lastNameFirst {
				last = parts[0]
				if len(parts) > 1 {
					first = parts[1]
				}
			} else {
				first = parts[0]
				if len(parts) > 1 {
					last = parts[1]
				}
			}
			firsts[i] = r.cell(first)
			lasts[i] = r.cell(last)
		}
		if len(oversplit) > 0 {
			diags.Add(errors.DiagNameSplit,
				"some students have more than 2 names, the name split may be incorrect", oversplit)
		}

	default:
		return nil, nil, errors.SchemaError(
			"first and last name columns or a full name column must be specified")
	}
	return lasts, firsts, nil
}

// resolveIDs produces the ID and email cells for every row. Rows without
// an ID are backfilled from the email local-part.
func resolveIDs(raw *RawTable, r resolved) (ids, emails []Cell, err error) {
	n := len(raw.Rows)
	ids = make([]Cell, n)
	emails = make([]Cell, n)
	for i := range ids {
		ids[i] = Absent
		emails[i] = Absent
	}

	idIdx, emailIdx := -1, -1
	if r.columns.ID != "" {
		idIdx = raw.ColumnIndex(r.columns.ID)
		if idIdx < 0 {
			return nil, nil, errors.SchemaError(fmt.Sprintf(
				"mapped ID column %q not found in input", r.columns.ID))
		}
	}
	if r.columns.Email != "" {
		emailIdx = raw.ColumnIndex(r.columns.Email)
		if emailIdx < 0 {
			return nil, nil, errors.SchemaError(fmt.Sprintf(
				"mapped email column %q not found in input", r.columns.Email))
		}
	}
	if idIdx < 0 && emailIdx < 0 {
		return nil, nil, errors.SchemaError("an ID column or an email column must be provided")
	}

	if idIdx >= 0 {
		for i := 0; i < n; i++ {
			ids[i] = r.cell(raw.Value(i, idIdx))
		}
	}
	if emailIdx >= 0 {
		for i := 0; i < n; i++ {
			emails[i] = r.cell(raw.Value(i, emailIdx))
			if ids[i].Absent && !emails[i].Absent {
				local, _, _ := strings.Cut(emails[i].Value, "@")
				ids[i] = CellOf(local)
			}
		}
	}
	return ids, emails, nil
}
