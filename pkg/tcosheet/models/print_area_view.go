package models

// PrintAreaView is the slice of a sheet that falls inside one print area.
type PrintAreaView struct {
	BookName        string    `json:"book_name"`
	SheetName       string    `json:"sheet_name"`
	Area            PrintArea `json:"area"`
	Rows            []CellRow `json:"rows,omitempty"`
	TableCandidates []string  `json:"table_candidates,omitempty"`
}
