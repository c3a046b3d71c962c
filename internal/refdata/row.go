// Package refdata loads the reference spreadsheet and builds the lookup
// index that resolves candidate keys to rows.
package refdata

// Row is one reference-spreadsheet row: column name -> cell value.
// Missing columns read as the empty string, never an error.
type Row map[string]string

// Get returns the cell value for col, or "" when the column is absent.
func (r Row) Get(col string) string {
	if r == nil {
		return ""
	}
	return r[col]
}

// Table is a parsed reference dataset: ordered column headers plus rows in
// file order. It is immutable once loaded.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether col is one of the table's headers.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}
