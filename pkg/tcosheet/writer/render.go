package writer

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// printAreaName is the reserved defined name for a sheet's print area.
const printAreaName = "_xlnm.Print_Area"

// Render writes layout into the existing sheet of f: the header unstyled
// on row 1, data rows below in layout order. It returns the written range.
func Render(f *excelize.File, sheet string, layout Layout, styles *StyleCache) (models.PrintArea, error) {
	area := models.PrintArea{R1: 1, C1: 1, R2: len(layout.Rows) + 1, C2: len(layout.Columns)}

	for col, c := range layout.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return area, err
		}
		if err := f.SetCellValue(sheet, cell, c.Name); err != nil {
			return area, fmt.Errorf("header %s: %w", cell, err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return area, err
		}
		if err := f.SetColWidth(sheet, name, name, math.Min(c.Width, excelize.MaxColumnWidth)); err != nil {
			return area, fmt.Errorf("column %s width: %w", name, err)
		}
	}

	for i, row := range layout.Rows {
		for col, c := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return area, err
			}
			if c.Value != nil {
				if err := f.SetCellValue(sheet, cell, c.Value); err != nil {
					return area, fmt.Errorf("cell %s: %w", cell, err)
				}
			}
			id, err := styles.ID(c.Style, c.NumFmt)
			if err != nil {
				return area, fmt.Errorf("cell %s style: %w", cell, err)
			}
			if id == 0 {
				continue
			}
			if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
				return area, fmt.Errorf("cell %s style: %w", cell, err)
			}
		}
	}

	if area.C2 > 0 {
		if err := setPrintArea(f, sheet, area); err != nil {
			return area, err
		}
	}
	return area, nil
}

func setPrintArea(f *excelize.File, sheet string, area models.PrintArea) error {
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return err
	}
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: fmt.Sprintf("%s!%s:%s", quoted, start, end),
		Scope:    sheet,
	})
}
