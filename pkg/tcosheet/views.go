package tcosheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// PrintAreaViews cuts every print area of sheet out of wb, in area order.
func PrintAreaViews(wb *models.WorkbookData, sheetName string) []models.PrintAreaView {
	sheet := wb.Sheets[sheetName]
	views := make([]models.PrintAreaView, 0, len(sheet.PrintAreas))
	for _, area := range sheet.PrintAreas {
		view := models.PrintAreaView{
			BookName:  wb.BookName,
			SheetName: sheetName,
			Area:      area,
		}
		for _, row := range sheet.Rows {
			if row.R < area.R1 || row.R > area.R2 {
				continue
			}
			if clipped, ok := clipRow(row, area); ok {
				view.Rows = append(view.Rows, clipped)
			}
		}
		for _, candidate := range sheet.TableCandidates {
			if rangeIntersects(candidate, area) {
				view.TableCandidates = append(view.TableCandidates, candidate)
			}
		}
		views = append(views, view)
	}
	return views
}

// clipRow keeps the cells of row inside area's columns.
func clipRow(row models.CellRow, area models.PrintArea) (models.CellRow, bool) {
	out := models.CellRow{R: row.R, C: make(map[string]interface{})}
	for key, v := range row.C {
		col, err := strconv.Atoi(key)
		if err != nil || !area.Contains(row.R, col) {
			continue
		}
		out.C[key] = v
		if f, ok := row.Formats[key]; ok {
			if out.Formats == nil {
				out.Formats = make(map[string]models.CellFormat)
			}
			out.Formats[key] = f
		}
	}
	return out, len(out.C) > 0
}

func rangeIntersects(ref string, area models.PrintArea) bool {
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return false
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return false
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return false
	}
	return r1 <= area.R2 && r2 >= area.R1 && c1 <= area.C2 && c2 >= area.C1
}
