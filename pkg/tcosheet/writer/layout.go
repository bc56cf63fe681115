// Package writer lays datasets out as styled grids and writes them into
// workbook sheets.
package writer

import (
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/numfmt"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/rules"
)

// DefaultPadding is added to the widest text of a column.
const DefaultPadding = 2

// Options configures Build.
type Options struct {
	// Padding is added to every column width.
	Padding float64
	// RankTotalRows is passed on to the tco-summary strategy.
	RankTotalRows bool
}

// Cell is one resolved data cell.
type Cell struct {
	// Value is what gets written; nil leaves the cell empty.
	Value interface{}
	// Text is the value as displayed.
	Text   string
	Style  models.CellStyle
	NumFmt string
}

// Column holds the per-column formatting.
type Column struct {
	Name  string
	Kind  numfmt.Kind
	Width float64
}

// Layout is a dataset resolved into a header and styled rows, in dataset order.
type Layout struct {
	Columns []Column
	Rows    [][]Cell
}

// Build resolves every cell of ds. The dataset must be valid and roles
// must come from rules.ResolveRoles for the same kind.
func Build(ds models.Dataset, kind models.SheetKind, roles models.ColumnRoles, opts Options) Layout {
	layout := Layout{
		Columns: make([]Column, len(ds.Columns)),
		Rows:    make([][]Cell, len(ds.Rows)),
	}
	for col, name := range ds.Columns {
		layout.Columns[col] = Column{
			Name:  name,
			Kind:  numfmt.ColumnKind(name, ds.IsNumericColumn(col)),
			Width: float64(runewidth.StringWidth(name)),
		}
	}

	resolver := rules.NewResolver(kind, ds.Columns, roles, rules.ResolverOptions{RankTotalRows: opts.RankTotalRows})
	for i, row := range ds.Rows {
		styles := resolver.ResolveRow(row)
		cells := make([]Cell, len(row))
		for col, v := range row {
			c := &layout.Columns[col]
			cells[col] = Cell{
				Value:  cellValue(v),
				Text:   numfmt.FormatAs(c.Kind, v),
				Style:  styles[col],
				NumFmt: numfmt.Code(c.Kind, v),
			}
			if w := float64(runewidth.StringWidth(cells[col].Text)); w > c.Width {
				c.Width = w
			}
		}
		layout.Rows[i] = cells
	}

	for col := range layout.Columns {
		layout.Columns[col].Width += opts.Padding
	}
	return layout
}

// cellValue drops missing and non-finite numbers so they are written empty.
func cellValue(v interface{}) interface{} {
	if models.IsMissing(v) {
		return nil
	}
	if _, ok := models.Number(v); ok {
		if _, finite := models.Finite(v); !finite {
			return nil
		}
	}
	return v
}
