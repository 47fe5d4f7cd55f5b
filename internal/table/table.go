package table

import (
	"fmt"
	"strings"
)

// Table is an in-memory tabular snapshot: ordered columns plus one string
// map per row. Empty string means absent; the pipeline never stores nulls.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps a column name to its cell value.
type Row map[string]string

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Get returns the cell value for a column, or "" when the column is missing.
func (r Row) Get(column string) string {
	return r[column]
}

// IsBlank reports whether the cell is empty after trimming.
func (r Row) IsBlank(column string) bool {
	return strings.TrimSpace(r[column]) == ""
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumns appends any missing columns to the table, so later stages
// can read them as blank instead of failing on absent keys.
func (t *Table) EnsureColumns(names []string) {
	for _, n := range names {
		if !t.HasColumn(n) {
			t.Columns = append(t.Columns, n)
		}
	}
}

// Select returns a copy of the table restricted to the given columns, in
// the given order. Missing columns become blank.
func (t *Table) Select(columns []string) *Table {
	out := New(columns)
	for _, r := range t.Rows {
		row := make(Row, len(columns))
		for _, c := range columns {
			row[c] = r[c]
		}
		out.Append(row)
	}
	return out
}

// Validate checks that every row only uses declared columns. A stray key is
// a programming error in the stage that built the table.
func (t *Table) Validate() error {
	declared := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		declared[c] = true
	}
	for i, r := range t.Rows {
		for k := range r {
			if !declared[k] {
				return fmt.Errorf("row %d has undeclared column %q", i, k)
			}
		}
	}
	return nil
}
