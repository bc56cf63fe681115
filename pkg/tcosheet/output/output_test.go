package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

func workbook() *models.WorkbookData {
	return &models.WorkbookData{
		BookName:   "tco-comparison.xlsx",
		SheetOrder: []string{"TCO"},
		Sheets: map[string]models.SheetData{
			"TCO": {
				Rows: []models.CellRow{{
					R:       2,
					C:       map[string]interface{}{"1": "TOTAL", "2": int64(499600)},
					Formats: map[string]models.CellFormat{"2": {Bold: true, NumFmt: "#,##0"}},
				}},
				PrintAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 2}},
			},
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(workbook(), false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"book_name": "tco-comparison.xlsx",
		"sheet_order": ["TCO"],
		"sheets": {"TCO": {
			"rows": [{"r": 2, "c": {"1": "TOTAL", "2": 499600}, "formats": {"2": {"bold": true, "num_fmt": "#,##0"}}}],
			"print_areas": [{"r1": 1, "c1": 1, "r2": 2, "c2": 2}]
		}}
	}`, string(data))
	assert.NotContains(t, string(data), "\n")

	again, err := ToJSON(workbook(), false)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestPretty(t *testing.T) {
	sheet := workbook().Sheets["TCO"]
	data, err := SheetToJSON(&sheet, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"rows\": [")

	view := models.PrintAreaView{BookName: "b.xlsx", SheetName: "TCO", Area: sheet.PrintAreas[0]}
	data, err = PrintAreaViewToJSON(&view, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"book_name":"b.xlsx","sheet_name":"TCO","area":{"r1":1,"c1":1,"r2":2,"c2":2}}`, string(data))
}
