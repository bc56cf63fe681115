package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// reopen round-trips f through its serialized form.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	f2, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "Text"))

	rows, err := ExtractCells(reopen(t, f), sheetName, false)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].R)
	assert.Equal(t, "Header1", rows[0].C["1"])
	assert.Equal(t, int64(100), rows[1].C["1"])
	assert.Equal(t, 200.5, rows[1].C["2"])
	assert.Nil(t, rows[1].Formats)
}

func TestExtractCellsFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	numFmt := "#,##0"
	style, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#C6EFCE"}, Pattern: 1},
		CustomNumFmt: &numFmt,
	})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "TOTAL"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 499600))
	require.NoError(t, f.SetCellStyle("Sheet1", "B1", "B1", style))

	rows, err := ExtractCells(reopen(t, f), "Sheet1", true)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.NotContains(t, rows[0].Formats, "1")
	assert.Equal(t, models.CellFormat{Bold: true, Fill: "#C6EFCE", NumFmt: "#,##0"}, rows[0].Formats["2"])
}

func TestLoadDataset(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Table block offset from A1 with a blank row inside it.
	cells := map[string]interface{}{
		"B2": "YEAR", "C2": "VENDOR A", "D2": "VENDOR B",
		"B3": "2025", "C3": 243800, "D3": 250500,
		"B5": "TOTAL", "C5": 499600.5,
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}

	ds, err := LoadDataset(reopen(t, f), "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"YEAR", "VENDOR A", "VENDOR B"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []interface{}{int64(2025), int64(243800), int64(250500)}, ds.Rows[0])
	assert.Equal(t, []interface{}{"TOTAL", 499600.5, nil}, ds.Rows[1])
	assert.NoError(t, ds.Validate())
}

func TestLoadDatasetEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := LoadDataset(f, "Sheet1")
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = LoadDataset(f, "Missing")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#C6EFCE", normalizeColor("FFC6EFCE"))
	assert.Equal(t, "#C6EFCE", normalizeColor("c6efce"))
	assert.Equal(t, "#FFEB9C", normalizeColor("#FFEB9C"))
	assert.Equal(t, "", normalizeColor(""))
}
