// Package schema maps arbitrary statement column names onto the canonical
// schema expected by the analysis pipeline.
package schema

// Table is a row-oriented table as produced by the ingestion layer.
// Columns preserves the original column order, which is significant for
// alias resolution when duplicate columns map to the same canonical field.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// NewTable builds a table from an ordered header and row maps.
func NewTable(columns []string, rows []map[string]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// IsEmpty returns true if the table has no data rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// renameColumn renames a column in the header and in every row.
func (t *Table) renameColumn(from, to string) {
	for i, col := range t.Columns {
		if col == from {
			t.Columns[i] = to
			break
		}
	}
	for _, row := range t.Rows {
		if value, ok := row[from]; ok {
			delete(row, from)
			row[to] = value
		}
	}
}

// hasColumn reports whether the header contains the given column name.
func (t *Table) hasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}
