package gradebook

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Cell is one table cell. Absent marks an explicit missing value, distinct
// from zero or an empty score.
type Cell struct {
	Value  string
	Absent bool
}

// Absent is the canonical absent cell.
var Absent = Cell{Absent: true}

// CellOf creates a cell from a raw string. Empty and whitespace-only
// strings are absent.
func CellOf(value string) Cell {
	if strings.TrimSpace(value) == "" {
		return Absent
	}
	return Cell{Value: value}
}

// FloatCell creates a present cell holding a numeric value.
func FloatCell(v float64) Cell {
	return Cell{Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// Float parses the cell as a number. It returns false for absent cells and
// for cells that do not hold a number.
func (c Cell) Float() (float64, bool) {
	if c.Absent {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// String returns the cell value, or the empty string for absent cells.
func (c Cell) String() string {
	if c.Absent {
		return ""
	}
	return c.Value
}

// RawTable is an unnormalized input table as read from a spreadsheet
// export: header names and rows of string cells, in file order.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a column name, or -1.
func (r *RawTable) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell string at (row, column index), tolerating ragged
// rows shorter than the header.
func (r *RawTable) Value(row, col int) string {
	if col < 0 || row < 0 || row >= len(r.Rows) || col >= len(r.Rows[row]) {
		return ""
	}
	return r.Rows[row][col]
}

// Table is a canonical gradebook table: an ordered student-ID index and
// ordered named columns of cells. Student IDs are unique within a table.
type Table struct {
	columns  []string
	colIndex map[string]int
	ids      []string
	rowIndex map[string]int
	cells    [][]Cell
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	t := &Table{
		columns:  append([]string(nil), columns...),
		colIndex: make(map[string]int, len(columns)),
		rowIndex: make(map[string]int),
	}
	for i, c := range t.columns {
		t.colIndex[c] = i
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// IDs returns the student IDs in row order.
func (t *Table) IDs() []string {
	return append([]string(nil), t.ids...)
}

// NumRows returns the number of students.
func (t *Table) NumRows() int { return len(t.ids) }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// HasID reports whether the table has a row for the given student.
func (t *Table) HasID(id string) bool {
	_, ok := t.rowIndex[id]
	return ok
}

// AppendRow adds a row for the given student. Short rows are padded with
// absent cells. Duplicate IDs are a hard error.
func (t *Table) AppendRow(id string, cells []Cell) error {
	if _, dup := t.rowIndex[id]; dup {
		return fmt.Errorf("duplicate student ID %q", id)
	}
	row := make([]Cell, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = Absent
		}
	}
	t.rowIndex[id] = len(t.ids)
	t.ids = append(t.ids, id)
	t.cells = append(t.cells, row)
	return nil
}

// Cell returns the cell for (student, column). The second result is false
// when the student or the column does not exist.
func (t *Table) Cell(id, column string) (Cell, bool) {
	ri, ok := t.rowIndex[id]
	if !ok {
		return Absent, false
	}
	ci, ok := t.colIndex[column]
	if !ok {
		return Absent, false
	}
	return t.cells[ri][ci], true
}

// SetCell stores a cell for (student, column); both must exist.
func (t *Table) SetCell(id, column string, cell Cell) error {
	ri, ok := t.rowIndex[id]
	if !ok {
		return fmt.Errorf("unknown student ID %q", id)
	}
	ci, ok := t.colIndex[column]
	if !ok {
		return fmt.Errorf("unknown column %q", column)
	}
	t.cells[ri][ci] = cell
	return nil
}

// AddColumn appends a new column filled with absent cells. Adding an
// existing column is a no-op.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.colIndex[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.cells {
		t.cells[i] = append(t.cells[i], Absent)
	}
}

// Select returns a new table with the given columns, rows in the same
// order. Selecting a column the table does not have is an error.
func (t *Table) Select(columns ...string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, c := range columns {
		ci, ok := t.colIndex[c]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", c)
		}
		indices[i] = ci
	}
	out := New(columns...)
	for ri, id := range t.ids {
		row := make([]Cell, len(indices))
		for i, ci := range indices {
			row[i] = t.cells[ri][ci]
		}
		if err := out.AppendRow(id, row); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Reindex returns a new table with rows in exactly the given ID order.
// IDs missing from the table become all-absent rows; rows for IDs not in
// the list are dropped.
func (t *Table) Reindex(ids []string) *Table {
	out := New(t.columns...)
	for _, id := range ids {
		if ri, ok := t.rowIndex[id]; ok {
			row := make([]Cell, len(t.columns))
			copy(row, t.cells[ri])
			_ = out.AppendRow(id, row)
		} else {
			_ = out.AppendRow(id, nil)
		}
	}
	return out
}

// AppendColumns copies every column of other into t for t's students.
// Columns t already has are skipped (first table wins); students of t
// missing from other get absent cells.
func (t *Table) AppendColumns(other *Table) {
	for _, col := range other.columns {
		if t.HasColumn(col) {
			continue
		}
		t.AddColumn(col)
		for _, id := range t.ids {
			if cell, ok := other.Cell(id, col); ok {
				_ = t.SetCell(id, col, cell)
			}
		}
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.columns...)
	for ri, id := range t.ids {
		row := make([]Cell, len(t.columns))
		copy(row, t.cells[ri])
		_ = out.AppendRow(id, row)
	}
	return out
}

// Row returns the cells of one student in column order.
func (t *Table) Row(id string) ([]Cell, bool) {
	ri, ok := t.rowIndex[id]
	if !ok {
		return nil, false
	}
	row := make([]Cell, len(t.columns))
	copy(row, t.cells[ri])
	return row, true
}

// SortByFloatColumn returns a new table sorted by a numeric column.
// Absent or non-numeric cells sort last. The sort is stable.
func (t *Table) SortByFloatColumn(column string, descending bool) (*Table, error) {
	ci, ok := t.colIndex[column]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	type keyed struct {
		id      string
		value   float64
		present bool
	}
	keys := make([]keyed, len(t.ids))
	for ri, id := range t.ids {
		v, present := t.cells[ri][ci].Float()
		keys[ri] = keyed{id: id, value: v, present: present}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.present != b.present {
			return a.present
		}
		if !a.present {
			return false
		}
		if descending {
			return a.value > b.value
		}
		return a.value < b.value
	})
	order := make([]string, len(keys))
	for i, k := range keys {
		order[i] = k.id
	}
	return t.Reindex(order), nil
}
