// Package parser reads sheets of an existing workbook back into datasets
// and cell maps.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// ErrNoHeader indicates a sheet with no non-empty cells.
var ErrNoHeader = errors.New("sheet has no header row")

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string, includeFormats bool) ([]models.CellRow, error) {
	rows, err := readRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{})
		formatMap := make(map[string]models.CellFormat)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			colStr := strconv.Itoa(colIdx + 1) // 1-based column index as string
			cellMap[colStr] = parseValue(cellValue)

			if includeFormats {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
				format, ok, err := cellFormat(f, sheetName, cellName)
				if err != nil {
					return nil, err
				}
				if ok {
					formatMap[colStr] = format
				}
			}
		}

		if len(cellMap) > 0 {
			cellRow := models.CellRow{
				R: rowNum,
				C: cellMap,
			}
			if len(formatMap) > 0 {
				cellRow.Formats = formatMap
			}
			result = append(result, cellRow)
		}
	}

	return result, nil
}

// LoadDataset reads the table block of a sheet as a dataset. The first
// non-empty row of the block is the header; blank cells load as missing
// values and fully blank rows are dropped.
func LoadDataset(f *excelize.File, sheetName string) (models.Dataset, error) {
	rows, err := readRows(f, sheetName)
	if err != nil {
		return models.Dataset{}, err
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Dataset{}, ErrNoHeader
	}

	ds := models.Dataset{Columns: make([]string, 0, maxCol-minCol+1)}
	header := rows[minRow]
	for col := minCol; col <= maxCol; col++ {
		ds.Columns = append(ds.Columns, strings.TrimSpace(cellAt(header, col)))
	}

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		values := make([]interface{}, len(ds.Columns))
		blank := true
		for col := minCol; col <= maxCol; col++ {
			if s := cellAt(row, col); s != "" {
				values[col-minCol] = parseValue(s)
				blank = false
			}
		}
		if !blank {
			ds.Rows = append(ds.Rows, values)
		}
	}
	return ds, nil
}

// readRows returns raw cell values so numbers are not rendered through
// their number format.
func readRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// cellFormat reads the bold flag, fill colour and custom number format of
// a cell. ok is false for cells with the default style.
func cellFormat(f *excelize.File, sheetName, cell string) (models.CellFormat, bool, error) {
	var format models.CellFormat
	id, err := f.GetCellStyle(sheetName, cell)
	if err != nil || id == 0 {
		return format, false, err
	}
	style, err := f.GetStyle(id)
	if err != nil {
		return format, false, err
	}
	if style.Font != nil {
		format.Bold = style.Font.Bold
	}
	if style.Fill.Type == "pattern" && style.Fill.Pattern == 1 && len(style.Fill.Color) > 0 {
		format.Fill = normalizeColor(style.Fill.Color[0])
	}
	if style.CustomNumFmt != nil {
		format.NumFmt = *style.CustomNumFmt
	}
	return format, format != (models.CellFormat{}), nil
}

// normalizeColor turns ARGB or RGB hex into "#RRGGBB".
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(c, "#"))
	if len(c) > 6 {
		c = c[len(c)-6:]
	}
	if c == "" {
		return ""
	}
	return "#" + c
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; "NaN" and "Inf" spellings stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
