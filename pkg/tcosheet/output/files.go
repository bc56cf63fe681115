package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// Destinations says where an inspected workbook goes. With no Path and no
// directories the workbook JSON is written to the fallback writer.
type Destinations struct {
	Path          string
	SheetsDir     string
	PrintAreasDir string
	Pretty        bool
}

func (d Destinations) toWriter() bool {
	return d.Path == "" && d.SheetsDir == "" && d.PrintAreasDir == ""
}

// Write serializes wb to every destination in dst.
func Write(wb *models.WorkbookData, w io.Writer, dst Destinations) error {
	if dst.Path != "" || dst.toWriter() {
		data, err := ToJSON(wb, dst.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if dst.toWriter() {
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
		if err := os.WriteFile(dst.Path, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if dst.SheetsDir != "" {
		if err := WriteSheetFiles(wb, dst.SheetsDir, dst.Pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	if dst.PrintAreasDir != "" {
		if err := WritePrintAreaFiles(wb, dst.PrintAreasDir, dst.Pretty); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}
	return nil
}

// WriteSheetFiles writes <sheet>.json into dir for each sheet of wb.
func WriteSheetFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, name := range wb.SheetOrder {
		sheet := wb.Sheets[name]
		data, err := SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}
		if err := os.WriteFile(SheetFileName(dir, name), data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// WritePrintAreaFiles writes one file per print area into dir, numbered
// from 1 within each sheet.
func WritePrintAreaFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, name := range wb.SheetOrder {
		for i, view := range tcosheet.PrintAreaViews(wb, name) {
			data, err := PrintAreaViewToJSON(&view, pretty)
			if err != nil {
				return err
			}
			if err := os.WriteFile(PrintAreaFileName(dir, name, i+1), data, 0644); err != nil {
				return err
			}
		}
	}
	return nil
}

// SheetFileName is the path WriteSheetFiles uses for sheet.
func SheetFileName(dir, sheet string) string {
	return filepath.Join(dir, sheet+".json")
}

// PrintAreaFileName is the path WritePrintAreaFiles uses for the n-th area of sheet.
func PrintAreaFileName(dir, sheet string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_area%d.json", sheet, n))
}
