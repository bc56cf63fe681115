package rules

import (
	"strings"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// Resolver assigns exactly one style to every cell of a row.
type Resolver interface {
	ResolveRow(row []interface{}) []models.CellStyle
}

// ResolverOptions tunes the per-kind strategies.
type ResolverOptions struct {
	// RankTotalRows ranks TOTAL rows of tco-summary sheets instead of
	// only bolding them.
	RankTotalRows bool
}

// NewResolver returns the strategy for kind. It is chosen once per sheet.
func NewResolver(kind models.SheetKind, columns []string, roles models.ColumnRoles, opts ResolverOptions) Resolver {
	switch kind {
	case models.KindMerge, models.KindCostSummary:
		return totalsResolver{roles: roles}
	case models.KindTCOSummary:
		return rankResolver{roles: roles, rankTotals: opts.RankTotalRows}
	case models.KindBidAnalysis:
		return bidResolver{columns: columns, roles: roles}
	}
	return genericResolver{}
}

// totalsResolver colours whole subtotal and grand-total rows.
type totalsResolver struct {
	roles models.ColumnRoles
}

func (r totalsResolver) ResolveRow(row []interface{}) []models.CellStyle {
	switch Classify(row, r.roles) {
	case models.RowYearSubtotal:
		return fill(len(row), models.StyleSubtotal)
	case models.RowGrandTotal:
		return fill(len(row), models.StyleGrandTotal)
	}
	return genericResolver{}.ResolveRow(row)
}

// rankResolver colours the two cheapest competitors of each row.
type rankResolver struct {
	roles      models.ColumnRoles
	rankTotals bool
}

func (r rankResolver) ResolveRow(row []interface{}) []models.CellStyle {
	total := IsTotalRow(row)
	rank := models.NoRank
	if !total || r.rankTotals {
		rank = Rank(row, r.roles.Competitors)
	}

	styles := make([]models.CellStyle, len(row))
	for col := range row {
		switch {
		case col == rank.First:
			styles[col] = models.StyleRankFirst
		case col == rank.Second:
			styles[col] = models.StyleRankSecond
		case total:
			styles[col] = models.StyleBoldTotal
		}
	}
	return styles
}

// bidResolver looks winners up in the row's 1st/2nd vendor columns.
type bidResolver struct {
	columns []string
	roles   models.ColumnRoles
}

func (r bidResolver) ResolveRow(row []interface{}) []models.CellStyle {
	first := strings.TrimSpace(models.Text(row[r.roles.FirstVendor]))
	second := strings.TrimSpace(models.Text(row[r.roles.SecondVendor]))
	total := IsTotalRow(row)

	styles := make([]models.CellStyle, len(row))
	for col := range row {
		name := strings.TrimSpace(r.columns[col])
		competitor := r.roles.IsCompetitor(col)
		switch {
		case competitor && first != "" && name == first:
			styles[col] = models.StyleRankFirst
		case competitor && second != "" && name == second:
			styles[col] = models.StyleRankSecond
		case total:
			styles[col] = models.StyleBoldTotal
		}
	}
	return styles
}

type genericResolver struct{}

func (genericResolver) ResolveRow(row []interface{}) []models.CellStyle {
	if IsTotalRow(row) {
		return fill(len(row), models.StyleBoldTotal)
	}
	return make([]models.CellStyle, len(row))
}

func fill(n int, style models.CellStyle) []models.CellStyle {
	styles := make([]models.CellStyle, n)
	for i := range styles {
		styles[i] = style
	}
	return styles
}
