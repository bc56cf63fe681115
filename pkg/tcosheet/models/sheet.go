package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Rows contains extracted rows with cell values and formats.
	Rows []CellRow `json:"rows,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
