package tcosheet

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/parser"
)

// Inspect reads a workbook back into values, formats and print areas.
func Inspect(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return inspect(f, filepath.Base(path))
}

// InspectBytes is Inspect for an in-memory workbook such as Result.Data.
func InspectBytes(data []byte, bookName string) (*models.WorkbookData, error) {
	return InspectReader(bytes.NewReader(data), bookName)
}

// InspectReader is Inspect for a workbook read from r.
func InspectReader(r io.Reader, bookName string) (*models.WorkbookData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return inspect(f, bookName)
}

func inspect(f *excelize.File, bookName string) (*models.WorkbookData, error) {
	sheetList := f.GetSheetList()
	sheets := make(map[string]models.SheetData, len(sheetList))

	for _, sheetName := range sheetList {
		rows, err := parser.ExtractCells(f, sheetName, true)
		if err != nil {
			return nil, NewSheetError(sheetName, "read", err)
		}
		tables, err := parser.DetectTables(f, sheetName, parser.DefaultTableParams())
		if err != nil {
			return nil, NewSheetError(sheetName, "read", err)
		}
		sheets[sheetName] = models.SheetData{
			Rows:            rows,
			TableCandidates: tables,
		}
	}

	printAreas, err := parser.ExtractPrintAreas(f)
	if err != nil {
		return nil, err
	}
	for sheetName, areas := range printAreas {
		if sheet, ok := sheets[sheetName]; ok {
			sheet.PrintAreas = areas
			sheets[sheetName] = sheet
		}
	}

	return &models.WorkbookData{
		BookName:   bookName,
		SheetOrder: sheetList,
		Sheets:     sheets,
	}, nil
}

// LoadSheet reads one sheet of the workbook at path as a dataset.
func LoadSheet(path, sheetName string) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Dataset{}, err
	}
	defer f.Close()

	ds, err := parser.LoadDataset(f, sheetName)
	if err != nil {
		return models.Dataset{}, NewSheetError(sheetName, "read", err)
	}
	return ds, nil
}
