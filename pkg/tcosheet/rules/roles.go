// Package rules decides which highlight each exported cell receives.
package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/numfmt"
)

// Role names reported by MissingRoleError.
const (
	RoleYear         = "year"
	RoleScope        = "scope"
	RoleCompetitor   = "competitor"
	RoleFirstVendor  = "1st vendor"
	RoleSecondVendor = "2nd vendor"
)

// MissingRoleError reports a role column a sheet kind needs but the dataset lacks.
type MissingRoleError struct {
	Kind models.SheetKind
	Role string
	// Column is set when an explicitly named column was not found.
	Column string
}

func (e *MissingRoleError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s sheet: %s column %q not found", e.Kind, e.Role, e.Column)
	}
	return fmt.Sprintf("%s sheet: no %s column", e.Kind, e.Role)
}

// ResolveRoles locates the role columns kind needs in ds. Columns are found
// by the tokens of their header, never by exact name. competitors, when
// non-empty, names the competitor columns explicitly.
func ResolveRoles(kind models.SheetKind, ds models.Dataset, competitors []string) (models.ColumnRoles, error) {
	roles := models.NewColumnRoles()
	missing := func(role string) error {
		return &MissingRoleError{Kind: kind, Role: role}
	}

	switch kind {
	case models.KindMerge:
		roles.Year = findColumn(ds.Columns, "YEAR")
		if roles.Year == models.NoColumn {
			return roles, missing(RoleYear)
		}
		// Scope is the first dimension after the year. A price column with
		// a text placeholder still holds numbers, so it is never taken.
		for col := roles.Year + 1; col < len(ds.Columns); col++ {
			if !ds.HasNumber(col) {
				roles.Scope = col
				break
			}
		}
		if roles.Scope == models.NoColumn {
			return roles, missing(RoleScope)
		}

	case models.KindCostSummary:
		roles.Year = findColumn(ds.Columns, "YEAR")
		if roles.Year == models.NoColumn {
			return roles, missing(RoleYear)
		}
		roles.Scope = findColumn(ds.Columns, "SCOPE")
		if roles.Scope == models.NoColumn {
			return roles, missing(RoleScope)
		}

	case models.KindTCOSummary, models.KindBidAnalysis:
		if kind == models.KindBidAnalysis {
			roles.FirstVendor = findColumn(ds.Columns, "1ST", "VENDOR")
			if roles.FirstVendor == models.NoColumn {
				return roles, missing(RoleFirstVendor)
			}
			roles.SecondVendor = findColumn(ds.Columns, "2ND", "VENDOR")
			if roles.SecondVendor == models.NoColumn {
				return roles, missing(RoleSecondVendor)
			}
		}
		cols, err := competitorColumns(kind, ds, roles, competitors)
		if err != nil {
			return roles, err
		}
		roles.Competitors = cols
	}
	return roles, nil
}

// competitorColumns picks the price columns: any column holding at least
// one number that is neither a role, year, TOTAL nor percentage column. A text
// placeholder such as "-" only makes its own cell ineligible, which Rank
// already handles per row.
func competitorColumns(kind models.SheetKind, ds models.Dataset, roles models.ColumnRoles, names []string) ([]int, error) {
	var cols []int
	if len(names) > 0 {
		for _, name := range names {
			col := ds.ColumnIndex(name)
			if col == models.NoColumn {
				return nil, &MissingRoleError{Kind: kind, Role: RoleCompetitor, Column: name}
			}
			cols = append(cols, col)
		}
		return cols, nil
	}

	for col, name := range ds.Columns {
		if col == roles.FirstVendor || col == roles.SecondVendor {
			continue
		}
		if !ds.HasNumber(col) || numfmt.ColumnKind(name, true) != numfmt.KindCurrency {
			continue
		}
		if models.IsTotal(name) || hasTokens(name, "YEAR") {
			continue
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, &MissingRoleError{Kind: kind, Role: RoleCompetitor}
	}
	return cols, nil
}

// findColumn returns the first column whose header contains every token in want.
func findColumn(columns []string, want ...string) int {
	for i, name := range columns {
		if hasTokens(name, want...) {
			return i
		}
	}
	return models.NoColumn
}

func hasTokens(name string, want ...string) bool {
	have := tokens(name)
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// tokens splits a header into upper-case letter/digit runs.
func tokens(name string) []string {
	return strings.FieldsFunc(strings.ToUpper(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
