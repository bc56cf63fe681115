package models

import "fmt"

// SheetKind selects the classification and highlight rules for a dataset.
type SheetKind string

const (
	// KindMerge is the merged per-vendor table with year subtotals.
	KindMerge SheetKind = "merge"
	// KindCostSummary is the region-transposed cost table.
	KindCostSummary SheetKind = "cost-summary"
	// KindTCOSummary compares vendor totals along one dimension.
	KindTCOSummary SheetKind = "tco-summary"
	// KindBidAnalysis carries precomputed 1st/2nd vendor columns.
	KindBidAnalysis SheetKind = "bid-analysis"
	// KindGeneric only gets the TOTAL bold fallback.
	KindGeneric SheetKind = "generic"
)

// ParseSheetKind converts a kind name into a SheetKind.
func ParseSheetKind(s string) (SheetKind, error) {
	switch k := SheetKind(s); k {
	case KindMerge, KindCostSummary, KindTCOSummary, KindBidAnalysis, KindGeneric:
		return k, nil
	}
	return "", fmt.Errorf("unknown sheet kind %q", s)
}

// RowClass is the aggregation level of a row.
type RowClass int

const (
	RowOrdinary RowClass = iota
	RowYearSubtotal
	RowGrandTotal
)

func (c RowClass) String() string {
	switch c {
	case RowYearSubtotal:
		return "year-subtotal"
	case RowGrandTotal:
		return "grand-total"
	}
	return "ordinary"
}

// CellStyle is the single highlight applied to a cell.
type CellStyle int

const (
	StyleNone CellStyle = iota
	StyleRankFirst
	StyleRankSecond
	StyleSubtotal
	StyleGrandTotal
	StyleBoldTotal
)

func (s CellStyle) String() string {
	switch s {
	case StyleRankFirst:
		return "rank-first"
	case StyleRankSecond:
		return "rank-second"
	case StyleSubtotal:
		return "subtotal-highlight"
	case StyleGrandTotal:
		return "grand-total-highlight"
	case StyleBoldTotal:
		return "bold-total"
	}
	return "none"
}

// NoColumn marks an absent column position.
const NoColumn = -1

// RankOutcome holds the lowest and second-lowest competitor columns of a row.
type RankOutcome struct {
	First  int
	Second int
}

// NoRank is the outcome when no competitor is eligible.
var NoRank = RankOutcome{First: NoColumn, Second: NoColumn}

// ColumnRoles locates the semantic columns of a dataset by position.
// Roles a sheet kind does not use are NoColumn.
type ColumnRoles struct {
	Year         int
	Scope        int
	FirstVendor  int
	SecondVendor int
	// Competitors are the columns eligible for ranking, in column order.
	Competitors []int
}

// NewColumnRoles returns roles with every position unset.
func NewColumnRoles() ColumnRoles {
	return ColumnRoles{
		Year:         NoColumn,
		Scope:        NoColumn,
		FirstVendor:  NoColumn,
		SecondVendor: NoColumn,
	}
}

// IsCompetitor reports whether col is one of the competitor columns.
func (r ColumnRoles) IsCompetitor(col int) bool {
	for _, c := range r.Competitors {
		if c == col {
			return true
		}
	}
	return false
}
