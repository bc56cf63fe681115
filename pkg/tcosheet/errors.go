package tcosheet

import (
	"errors"
	"fmt"
)

// ErrEmptySelection indicates export was called with no sheet names.
var ErrEmptySelection = errors.New("no sheets selected")

// ErrNothingExported indicates every selected sheet was skipped.
var ErrNothingExported = errors.New("every selected sheet was skipped")

// DuplicateSheetError reports a sheet name selected or registered twice.
// Names are compared case-insensitively, as spreadsheet tabs are.
type DuplicateSheetError struct {
	Name string
}

func (e *DuplicateSheetError) Error() string {
	return fmt.Sprintf("duplicate sheet name %q", e.Name)
}

// UnknownSheetError reports a selected name with no registered dataset.
type UnknownSheetError struct {
	Name string
}

func (e *UnknownSheetError) Error() string {
	return fmt.Sprintf("unknown sheet %q", e.Name)
}

// SheetError represents an error while exporting or inspecting one sheet.
type SheetError struct {
	SheetName string
	Stage     string // "validate", "roles", "write", "read"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
