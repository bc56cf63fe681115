package tcosheet

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/rules"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/writer"
)

// ContentType is the MIME type of the exported workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DefaultFilename is the suggested name for a downloaded export.
const DefaultFilename = "tco-comparison.xlsx"

// SkippedSheet is a selected sheet left out of the workbook.
type SkippedSheet struct {
	Name string
	Err  error
}

// Result is a finished export.
type Result struct {
	// Data is the complete xlsx file.
	Data []byte
	// Sheets lists the written tabs in workbook order.
	Sheets []string
	// Skipped lists sheets dropped under RolePolicySkip.
	Skipped []SkippedSheet
	// PrintAreas maps each written sheet to its used range.
	PrintAreas map[string]models.PrintArea
}

type plannedSheet struct {
	name   string
	kind   models.SheetKind
	layout writer.Layout
}

// Export writes the selected sheets of reg, in selection order, into one
// workbook. Every check runs before the workbook is built, so a failed
// export never yields partial output.
func Export(selection []string, reg *Registry, opts Options) (*Result, error) {
	log := opts.logger()

	plans, skipped, err := plan(selection, reg, opts)
	if err != nil {
		return nil, err
	}
	for _, s := range skipped {
		event := log.Warn().Str("sheet", s.Name)
		var missing *rules.MissingRoleError
		if errors.As(s.Err, &missing) {
			event = event.Str("kind", string(missing.Kind)).Str("role", missing.Role)
		}
		event.Err(s.Err).Msg("sheet skipped")
	}
	if len(plans) == 0 {
		return nil, ErrNothingExported
	}

	f := excelize.NewFile()
	defer f.Close()

	styles := writer.NewStyleCache(f, opts.HighlightPalette())
	result := &Result{
		Skipped:    skipped,
		PrintAreas: make(map[string]models.PrintArea, len(plans)),
	}
	for i, p := range plans {
		if err := addSheet(f, i, p.name); err != nil {
			return nil, NewSheetError(p.name, "write", err)
		}
		area, err := writer.Render(f, p.name, p.layout, styles)
		if err != nil {
			return nil, NewSheetError(p.name, "write", err)
		}
		result.Sheets = append(result.Sheets, p.name)
		result.PrintAreas[p.name] = area
		log.Debug().
			Str("sheet", p.name).
			Str("kind", string(p.kind)).
			Int("rows", len(p.layout.Rows)).
			Int("cols", len(p.layout.Columns)).
			Msg("sheet written")
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	result.Data = buf.Bytes()
	log.Info().Int("sheets", len(result.Sheets)).Int("skipped", len(skipped)).Int("bytes", len(result.Data)).Msg("workbook exported")
	return result, nil
}

// ExportAll exports every registered sheet in registration order.
func ExportAll(reg *Registry, opts Options) (*Result, error) {
	return Export(reg.Names(), reg, opts)
}

// plan validates the selection and lays out every sheet that will be written.
func plan(selection []string, reg *Registry, opts Options) ([]plannedSheet, []SkippedSheet, error) {
	if len(selection) == 0 {
		return nil, nil, ErrEmptySelection
	}

	// Duplicates are reported before unknown names, even when the
	// duplicated name is itself unknown.
	seen := make(map[string]bool, len(selection))
	for _, name := range selection {
		key := strings.ToLower(name)
		if seen[key] {
			return nil, nil, &DuplicateSheetError{Name: name}
		}
		seen[key] = true
	}
	for _, name := range selection {
		if _, ok := reg.Lookup(name); !ok {
			return nil, nil, &UnknownSheetError{Name: name}
		}
	}

	var (
		plans   []plannedSheet
		skipped []SkippedSheet
	)
	layoutOpts := writer.Options{
		Padding:       opts.ColumnPadding(),
		RankTotalRows: opts.RankTotalRows,
	}
	for _, name := range selection {
		sheet, _ := reg.Lookup(name)
		if err := sheet.Dataset.Validate(); err != nil {
			return nil, nil, NewSheetError(name, "validate", err)
		}
		kind := sheet.Kind
		if kind == "" {
			kind = models.KindGeneric
		}
		roles, err := rules.ResolveRoles(kind, sheet.Dataset, sheet.Competitors)
		if err != nil {
			var missing *rules.MissingRoleError
			if errors.As(err, &missing) && !opts.ShouldAbortOnMissingRole() {
				skipped = append(skipped, SkippedSheet{Name: name, Err: err})
				continue
			}
			return nil, nil, NewSheetError(name, "roles", err)
		}
		plans = append(plans, plannedSheet{
			name:   name,
			kind:   kind,
			layout: writer.Build(sheet.Dataset, kind, roles, layoutOpts),
		})
	}
	return plans, skipped, nil
}

// addSheet creates the tab for the i-th written sheet. The default sheet
// of a new file is renamed so no stray empty tab remains.
func addSheet(f *excelize.File, i int, name string) error {
	if i == 0 {
		return f.SetSheetName(f.GetSheetName(0), name)
	}
	_, err := f.NewSheet(name)
	return err
}
