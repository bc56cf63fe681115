package tcosheet

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/rules"
)

func tcoYear() models.Dataset {
	return models.Dataset{
		Columns: []string{"YEAR", "VENDOR A", "VENDOR B", "VENDOR C"},
		Rows: [][]interface{}{
			{"2025", 243800, 250500, 252900},
			{"2026", 255800, 253900, 255700},
			{"TOTAL", 499600, 504400, 508600},
		},
	}
}

func mergeData() models.Dataset {
	return models.Dataset{
		Columns: []string{"VENDOR", "YEAR", "SCOPE", "REGION 1", "REGION 2", "TOTAL"},
		Rows: [][]interface{}{
			{"Vendor A", "2025", "Site Survey", 8500, 9000, 17500},
			{"Vendor A", "2025", "TOTAL", 121500, 122300, 243800},
			{"Vendor A", "TOTAL", "", 252100, 247500, 499600},
		},
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.Register("Merge Data", Sheet{Dataset: mergeData(), Kind: models.KindMerge}))
	require.NoError(t, reg.Register("TCO Summary (Year)", Sheet{Dataset: tcoYear(), Kind: models.KindTCOSummary}))
	// No SCOPE column, so the cost-summary rules cannot apply.
	require.NoError(t, reg.Register("Broken", Sheet{Dataset: tcoYear(), Kind: models.KindCostSummary}))
	return reg
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExport(t *testing.T) {
	reg := testRegistry(t)
	res, err := Export([]string{"TCO Summary (Year)", "Merge Data"}, reg, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"TCO Summary (Year)", "Merge Data"}, res.Sheets)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, models.PrintArea{R1: 1, C1: 1, R2: 4, C2: 4}, res.PrintAreas["TCO Summary (Year)"])

	f := open(t, res.Data)
	assert.Equal(t, []string{"TCO Summary (Year)", "Merge Data"}, f.GetSheetList())
	assert.Equal(t, 0, f.GetActiveSheetIndex())

	rows, err := f.GetRows("Merge Data", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"VENDOR", "YEAR", "SCOPE", "REGION 1", "REGION 2", "TOTAL"}, rows[0])
	assert.Equal(t, []string{"Vendor A", "2025", "TOTAL", "121500", "122300", "243800"}, rows[2])

	wb, err := InspectBytes(res.Data, DefaultFilename)
	require.NoError(t, err)
	assert.Equal(t, DefaultFilename, wb.BookName)

	merge := wb.Sheets["Merge Data"]
	subtotal := merge.Rows[2].Formats["4"]
	assert.True(t, subtotal.Bold)
	assert.Equal(t, "#FFEB9C", subtotal.Fill)
	grand := merge.Rows[3].Formats["1"]
	assert.True(t, grand.Bold)
	assert.Equal(t, "#C6EFCE", grand.Fill)
	assert.Empty(t, merge.Rows[1].Formats["1"])
}

func TestExportSelectionErrors(t *testing.T) {
	reg := testRegistry(t)

	_, err := Export(nil, reg, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = Export([]string{"Merge Data", "merge data"}, reg, DefaultOptions())
	var dup *DuplicateSheetError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "merge data", dup.Name)

	_, err = Export([]string{"Merge Data", "Nope"}, reg, DefaultOptions())
	var unknown *UnknownSheetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Nope", unknown.Name)
}

func TestExportDuplicateUnknownName(t *testing.T) {
	reg := testRegistry(t)

	_, err := Export([]string{"Nope", "nope"}, reg, DefaultOptions())
	var dup *DuplicateSheetError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "nope", dup.Name)

	var unknown *UnknownSheetError
	assert.NotErrorAs(t, err, &unknown)
}

func TestExportRaggedRow(t *testing.T) {
	reg := NewRegistry()
	ds := tcoYear()
	ds.Rows[1] = ds.Rows[1][:3]
	require.NoError(t, reg.Register("Ragged", Sheet{Dataset: ds, Kind: models.KindTCOSummary}))

	_, err := Export([]string{"Ragged"}, reg, DefaultOptions())
	var sheetErr *SheetError
	require.ErrorAs(t, err, &sheetErr)
	assert.Equal(t, "Ragged", sheetErr.SheetName)
	assert.Equal(t, "validate", sheetErr.Stage)

	var ragged *models.RaggedRowError
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, 1, ragged.Row)
}

func TestExportMissingRole(t *testing.T) {
	reg := testRegistry(t)
	selection := []string{"Broken", "TCO Summary (Year)"}

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	opts := DefaultOptions()
	opts.Logger = &logger

	res, err := Export(selection, reg, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"TCO Summary (Year)"}, res.Sheets)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "Broken", res.Skipped[0].Name)
	assert.Equal(t, []string{"TCO Summary (Year)"}, open(t, res.Data).GetSheetList())
	assert.Contains(t, logs.String(), `"role":"scope"`)
	assert.Contains(t, logs.String(), "sheet skipped")

	opts.OnMissingRole = RolePolicyAbort
	_, err = Export(selection, reg, opts)
	var missing *rules.MissingRoleError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, rules.RoleScope, missing.Role)

	_, err = Export([]string{"Broken"}, reg, DefaultOptions())
	assert.ErrorIs(t, err, ErrNothingExported)
}

func TestExportInvalidSheetName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("TCO", Sheet{Dataset: tcoYear(), Kind: models.KindTCOSummary}))
	require.NoError(t, reg.Register("a/b", Sheet{Dataset: tcoYear(), Kind: models.KindTCOSummary}))

	_, err := Export([]string{"TCO", "a/b"}, reg, DefaultOptions())
	var sheetErr *SheetError
	require.ErrorAs(t, err, &sheetErr)
	assert.Equal(t, "write", sheetErr.Stage)
}

func TestExportIdempotent(t *testing.T) {
	reg := testRegistry(t)
	selection := []string{"Merge Data", "TCO Summary (Year)"}

	first, err := Export(selection, reg, DefaultOptions())
	require.NoError(t, err)
	second, err := Export(selection, reg, DefaultOptions())
	require.NoError(t, err)

	a, err := InspectBytes(first.Data, "a.xlsx")
	require.NoError(t, err)
	b, err := InspectBytes(second.Data, "a.xlsx")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExportAll(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("TCO", Sheet{Dataset: tcoYear(), Kind: models.KindTCOSummary}))
	require.NoError(t, reg.Register("Plain", Sheet{Dataset: tcoYear()}))

	res, err := ExportAll(reg, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"TCO", "Plain"}, res.Sheets)

	// Kind defaults to generic: only the TOTAL row is styled.
	wb, err := InspectBytes(res.Data, "plain.xlsx")
	require.NoError(t, err)
	plain := wb.Sheets["Plain"]
	assert.Empty(t, plain.Rows[1].Formats["2"].Fill)
	assert.True(t, plain.Rows[3].Formats["2"].Bold)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("B", Sheet{}))
	require.NoError(t, reg.Register("A", Sheet{}))

	var dup *DuplicateSheetError
	assert.ErrorAs(t, reg.Register("b", Sheet{}), &dup)
	assert.Equal(t, []string{"B", "A"}, reg.Names())
	assert.Equal(t, 2, reg.Len())

	_, ok := reg.Lookup("a")
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.False(t, opts.ShouldAbortOnMissingRole())
	assert.Equal(t, 2.0, opts.ColumnPadding())

	padding := 0.0
	opts.Padding = &padding
	assert.Equal(t, 0.0, opts.ColumnPadding())

	p, err := ParseRolePolicy("abort")
	require.NoError(t, err)
	assert.Equal(t, RolePolicyAbort, p)
	_, err = ParseRolePolicy("ignore")
	assert.Error(t, err)
}
