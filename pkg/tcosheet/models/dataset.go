package models

import "fmt"

// Dataset is one logical table: an ordered column schema and rows whose
// cells follow that order. A cell holds text, an integer, a float or nil.
type Dataset struct {
	// Columns are the header names, in display order.
	Columns []string `json:"columns" yaml:"columns"`
	// Rows holds one value per column for each row.
	Rows [][]interface{} `json:"rows" yaml:"rows"`
}

// RaggedRowError reports a row whose width differs from the column count.
type RaggedRowError struct {
	Row  int
	Got  int
	Want int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Validate checks that every row has exactly one cell per column.
func (d Dataset) Validate() error {
	for i, row := range d.Rows {
		if len(row) != len(d.Columns) {
			return &RaggedRowError{Row: i, Got: len(row), Want: len(d.Columns)}
		}
	}
	return nil
}

// ColumnIndex returns the position of the column with the exact name, or NoColumn.
func (d Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return NoColumn
}

// IsNumericColumn reports whether every non-missing value in column col is
// a number. A column with no values at all is not numeric.
func (d Dataset) IsNumericColumn(col int) bool {
	seen := false
	for _, row := range d.Rows {
		v := row[col]
		if IsMissing(v) {
			continue
		}
		if _, ok := Number(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// HasNumber reports whether column col holds at least one finite number.
func (d Dataset) HasNumber(col int) bool {
	for _, row := range d.Rows {
		if _, ok := Finite(row[col]); ok {
			return true
		}
	}
	return false
}
