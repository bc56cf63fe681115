package rules

import "github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"

// Classify returns the aggregation level of row using the year and scope
// roles. A TOTAL scope under a concrete year is a year subtotal; a TOTAL
// year is the grand total.
func Classify(row []interface{}, roles models.ColumnRoles) models.RowClass {
	if roles.Year == models.NoColumn || roles.Scope == models.NoColumn {
		return models.RowOrdinary
	}
	year := models.Normalize(row[roles.Year])
	scope := models.Normalize(row[roles.Scope])

	switch {
	case scope == models.TotalSentinel && year != models.TotalSentinel:
		return models.RowYearSubtotal
	case year == models.TotalSentinel:
		return models.RowGrandTotal
	}
	return models.RowOrdinary
}

// IsTotalRow reports whether any text cell of row is exactly TOTAL.
func IsTotalRow(row []interface{}) bool {
	for _, v := range row {
		if models.IsTotal(v) {
			return true
		}
	}
	return false
}
