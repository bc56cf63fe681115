package rules

import (
	"sort"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// Rank finds the lowest and second-lowest competitor columns of row.
// Missing, non-numeric and zero values never win. Equal values keep
// column order, so the earlier column takes first place.
func Rank(row []interface{}, competitors []int) models.RankOutcome {
	type entry struct {
		col   int
		value float64
	}

	eligible := make([]entry, 0, len(competitors))
	for _, col := range competitors {
		v, ok := models.Finite(row[col])
		if !ok || v == 0 {
			continue
		}
		eligible = append(eligible, entry{col: col, value: v})
	}
	if len(eligible) == 0 {
		return models.NoRank
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].value < eligible[j].value
	})

	out := models.RankOutcome{First: eligible[0].col, Second: models.NoColumn}
	if len(eligible) > 1 {
		out.Second = eligible[1].col
	}
	return out
}
