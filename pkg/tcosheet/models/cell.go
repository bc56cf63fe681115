package models

// CellFormat describes the visible formatting of a cell read back from a workbook.
type CellFormat struct {
	// Bold reports a bold font.
	Bold bool `json:"bold,omitempty"`
	// Fill is the pattern fill colour, empty when unfilled.
	Fill string `json:"fill,omitempty"`
	// NumFmt is the custom number format code, if any.
	NumFmt string `json:"num_fmt,omitempty"`
}

// CellRow represents a single row of cells with optional formatting.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// Formats maps column index to the cell's formatting (optional).
	Formats map[string]CellFormat `json:"formats,omitempty"`
}
