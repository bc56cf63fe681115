// Package tcosheet exports vendor comparison tables into one styled
// spreadsheet workbook.
package tcosheet

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/writer"
)

// RolePolicy decides what happens to a sheet that lacks a role column.
type RolePolicy string

const (
	// RolePolicySkip leaves the sheet out and reports it in Result.Skipped.
	RolePolicySkip RolePolicy = "skip"
	// RolePolicyAbort fails the whole export.
	RolePolicyAbort RolePolicy = "abort"
)

// ParseRolePolicy converts a policy name into a RolePolicy.
func ParseRolePolicy(s string) (RolePolicy, error) {
	switch p := RolePolicy(s); p {
	case RolePolicySkip, RolePolicyAbort:
		return p, nil
	}
	return "", fmt.Errorf("invalid role policy: %s (must be skip or abort)", s)
}

// Options configures export behavior.
type Options struct {
	// OnMissingRole specifies the missing role column policy (skip, abort).
	OnMissingRole RolePolicy
	// RankTotalRows ranks TOTAL rows of tco-summary sheets instead of
	// only bolding them.
	RankTotalRows bool
	// Padding is added to every column width.
	// If nil, defaults to writer.DefaultPadding.
	Padding *float64
	// Palette overrides the highlight colours.
	// If nil, defaults to writer.DefaultPalette().
	Palette *writer.Palette
	// Logger receives per-sheet diagnostics. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		OnMissingRole: RolePolicySkip,
	}
}

// ShouldAbortOnMissingRole returns whether a missing role column fails the export.
func (o Options) ShouldAbortOnMissingRole() bool {
	return o.OnMissingRole == RolePolicyAbort
}

// ColumnPadding returns the padding added to column widths.
func (o Options) ColumnPadding() float64 {
	if o.Padding != nil {
		return *o.Padding
	}
	return writer.DefaultPadding
}

// HighlightPalette returns the palette to style cells with.
func (o Options) HighlightPalette() writer.Palette {
	if o.Palette != nil {
		return *o.Palette
	}
	return writer.DefaultPalette()
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
