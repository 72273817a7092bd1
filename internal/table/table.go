// Package table defines the in-memory representation of a loaded
// parquet file: an ordered list of rows plus the schema they share.
//
// A Table is created once by the reader package and never mutated
// afterwards. Row order always matches on-file storage order.
package table

// Column describes a single top-level field of a Table's schema.
type Column struct {
	Name     string
	Type     string
	Optional bool
}

// Row maps column names to scalar values as decoded from the file.
type Row map[string]interface{}

// Table holds all rows of a parquet file together with its schema.
//
// The schema is fixed at load time; rows appear in the same order as
// they are stored in the file.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnNames returns the column names in schema (file) order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Head returns the first min(n, NumRows) rows in file order.
//
// A negative n returns all rows. The returned slice aliases the
// table's backing storage and must not be modified.
func (t *Table) Head(n int) []Row {
	if n < 0 || n > len(t.Rows) {
		return t.Rows
	}
	return t.Rows[:n]
}

// Prefix returns a new Table sharing this table's schema and holding
// the first min(n, NumRows) rows. Used by the CLI to hand a bounded
// preview to a formatter without copying row data.
func (t *Table) Prefix(n int) *Table {
	return &Table{
		Columns: t.Columns,
		Rows:    t.Head(n),
	}
}
