// Package output serializes inspected workbooks.
package output

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// Map keys are sorted, so equal workbooks serialize to equal bytes.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serializes a workbook.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes one sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// PrintAreaViewToJSON serializes one print area view.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
