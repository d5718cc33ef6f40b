// Package table provides the in-memory tabular data model shared by the
// loader, normalizer, and merger. A Table is an ordered set of named columns
// aligned by row index; cells are strings and the empty string marks a
// missing value.
package table

import "fmt"

// Table holds column names and row data. Every row has exactly
// len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// AppendRow adds a row, padding or truncating it to the column count so the
// row-alignment invariant always holds.
func (t *Table) AppendRow(row []string) {
	cells := make([]string, len(t.Columns))
	copy(cells, row)
	t.Rows = append(t.Rows, cells)
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's values.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no column named %q", name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// SetColumn replaces the named column's values in place. The value slice
// must match the row count.
func (t *Table) SetColumn(name string, values []string) error {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return fmt.Errorf("no column named %q", name)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q: %d values for %d rows", name, len(values), len(t.Rows))
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
	return nil
}

// Rename changes a column name. Renaming a missing column is a no-op.
func (t *Table) Rename(old, new string) {
	if old == new {
		return
	}
	if idx := t.ColumnIndex(old); idx >= 0 {
		t.Columns[idx] = new
	}
}

// Project returns a new table containing only the named columns, in the
// given order, preserving row order.
func (t *Table) Project(names ...string) (*Table, error) {
	indexes := make([]int, len(names))
	for i, name := range names {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("no column named %q", name)
		}
		indexes[i] = idx
	}

	out := New(names...)
	for _, row := range t.Rows {
		cells := make([]string, len(indexes))
		for i, idx := range indexes {
			cells[i] = row[idx]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// AddConstColumn appends a column where every row holds the same value.
func (t *Table) AddConstColumn(name, value string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// Append concatenates another table's rows onto this one. Column
// layouts must match exactly.
func (t *Table) Append(other *Table) error {
	if len(other.Columns) != len(t.Columns) {
		return fmt.Errorf("column count mismatch: %d vs %d", len(t.Columns), len(other.Columns))
	}
	for i, c := range t.Columns {
		if other.Columns[i] != c {
			return fmt.Errorf("column %d mismatch: %q vs %q", i, c, other.Columns[i])
		}
	}
	t.Rows = append(t.Rows, other.Rows...)
	return nil
}
