// Package samples builds the demonstration datasets of a three-vendor
// tender: two years, two regions and three work scopes.
package samples

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/rules"
)

// Sheet names in registration order.
const (
	SheetMerge       = "Merge Data"
	SheetCostSummary = "Cost Summary"
	SheetTCOYear     = "TCO Summary (Year)"
	SheetTCORegion   = "TCO Summary (Region)"
	SheetTCOScope    = "TCO Summary (Scope)"
	SheetBidAnalysis = "Bid & Price Analysis"
)

var (
	Vendors = []string{"A", "B", "C"}
	Years   = []string{"2025", "2026"}
	Regions = []string{"REGION 1", "REGION 2"}
	// Scopes in tender order. Summaries keyed by scope sort them by name.
	Scopes = []string{"Site Survey", "DG Dismantle", "RAN & Power Supply"}
)

// prices[vendor][year][region][scope], indexed like the slices above.
var prices = [3][2][2][3]int{
	{ // Vendor A
		{{8500, 45000, 68000}, {9000, 47800, 65500}},
		{{9200, 46500, 74900}, {8800, 44000, 72400}},
	},
	{ // Vendor B
		{{8200, 46200, 70500}, {8700, 49000, 67900}},
		{{8700, 48900, 71900}, {8300, 46800, 69300}},
	},
	{ // Vendor C
		{{8900, 43500, 73800}, {9200, 46000, 71500}},
		{{9700, 51300, 69500}, {9300, 49100, 66800}},
	},
}

// Price returns one quoted price.
func Price(vendor, year, region, scope int) int {
	return prices[vendor][year][region][scope]
}

// Registry returns the six demonstration sheets in display order.
func Registry() *tcosheet.Registry {
	reg := tcosheet.NewRegistry()
	for _, s := range []struct {
		name  string
		sheet tcosheet.Sheet
	}{
		{SheetMerge, tcosheet.Sheet{Dataset: MergeData(), Kind: models.KindMerge}},
		{SheetCostSummary, tcosheet.Sheet{Dataset: CostSummary(), Kind: models.KindCostSummary}},
		{SheetTCOYear, tcosheet.Sheet{Dataset: TCOByYear(), Kind: models.KindTCOSummary}},
		{SheetTCORegion, tcosheet.Sheet{Dataset: TCOByRegion(), Kind: models.KindTCOSummary}},
		{SheetTCOScope, tcosheet.Sheet{Dataset: TCOByScope(), Kind: models.KindTCOSummary}},
		{SheetBidAnalysis, tcosheet.Sheet{Dataset: BidAnalysis(), Kind: models.KindBidAnalysis}},
	} {
		if err := reg.Register(s.name, s.sheet); err != nil {
			panic(err)
		}
	}
	return reg
}

func vendorName(v int) string {
	return "Vendor " + Vendors[v]
}

func vendorColumn(v int) string {
	return "VENDOR " + Vendors[v]
}

func vendorColumns(lead ...string) []string {
	cols := append([]string(nil), lead...)
	for v := range Vendors {
		cols = append(cols, vendorColumn(v))
	}
	return cols
}

// MergeData lists every vendor's scopes per year with a TOTAL subtotal row
// per year and a grand total row per vendor.
func MergeData() models.Dataset {
	cols := append([]string{"VENDOR", "YEAR", "SCOPE"}, Regions...)
	ds := models.Dataset{Columns: append(cols, "TOTAL")}
	for v := range Vendors {
		grand := make([]int, len(Regions))
		for y, year := range Years {
			sub := make([]int, len(Regions))
			for s, scope := range Scopes {
				row := []interface{}{vendorName(v), year, scope}
				sum := 0
				for r := range Regions {
					p := Price(v, y, r, s)
					row = append(row, p)
					sub[r] += p
					sum += p
				}
				ds.Rows = append(ds.Rows, append(row, sum))
			}
			ds.Rows = append(ds.Rows, totalsRow([]interface{}{vendorName(v), year, models.TotalSentinel}, sub))
			for r := range grand {
				grand[r] += sub[r]
			}
		}
		ds.Rows = append(ds.Rows, totalsRow([]interface{}{vendorName(v), models.TotalSentinel, ""}, grand))
	}
	return ds
}

// totalsRow appends values and their sum to lead.
func totalsRow(lead []interface{}, values []int) []interface{} {
	sum := 0
	for _, v := range values {
		lead = append(lead, v)
		sum += v
	}
	return append(lead, sum)
}

// CostSummary is MergeData with the region columns transposed into rows.
func CostSummary() models.Dataset {
	ds := models.Dataset{Columns: []string{"VENDOR", "YEAR", "REGION", "SCOPE", "PRICE"}}
	for r, region := range Regions {
		for v := range Vendors {
			grand := 0
			for y, year := range Years {
				sub := 0
				for s, scope := range Scopes {
					p := Price(v, y, r, s)
					ds.Rows = append(ds.Rows, []interface{}{vendorName(v), year, region, scope, p})
					sub += p
				}
				ds.Rows = append(ds.Rows, []interface{}{vendorName(v), year, region, models.TotalSentinel, sub})
				grand += sub
			}
			ds.Rows = append(ds.Rows, []interface{}{vendorName(v), models.TotalSentinel, region, "", grand})
		}
	}
	return ds
}

// tcoTable sums each vendor's prices per key, one row per label plus a
// TOTAL row. key maps (year, region, scope) to the label index.
func tcoTable(dimension string, labels []string, key func(y, r, s int) int) models.Dataset {
	sums := make([][]int, len(labels))
	for i := range sums {
		sums[i] = make([]int, len(Vendors))
	}
	totals := make([]int, len(Vendors))
	for v := range Vendors {
		for y := range Years {
			for r := range Regions {
				for s := range Scopes {
					p := Price(v, y, r, s)
					sums[key(y, r, s)][v] += p
					totals[v] += p
				}
			}
		}
	}

	ds := models.Dataset{Columns: vendorColumns(dimension)}
	for i, label := range labels {
		ds.Rows = append(ds.Rows, intRow(label, sums[i]))
	}
	ds.Rows = append(ds.Rows, intRow(models.TotalSentinel, totals))
	return ds
}

func intRow(label string, values []int) []interface{} {
	row := []interface{}{label}
	for _, v := range values {
		row = append(row, v)
	}
	return row
}

// TCOByYear compares the vendors' totals per year.
func TCOByYear() models.Dataset {
	return tcoTable("YEAR", Years, func(y, _, _ int) int { return y })
}

// TCOByRegion compares the vendors' totals per region.
func TCOByRegion() models.Dataset {
	return tcoTable("REGION", Regions, func(_, r, _ int) int { return r })
}

// TCOByScope compares the vendors' totals per scope, scopes sorted by name.
func TCOByScope() models.Dataset {
	order := sortedScopes()
	pos := make([]int, len(Scopes))
	labels := make([]string, len(order))
	for i, s := range order {
		pos[s] = i
		labels[i] = Scopes[s]
	}
	return tcoTable("SCOPE", labels, func(_, _, s int) int { return pos[s] })
}

// sortedScopes returns scope indexes ordered by scope name.
func sortedScopes() []int {
	order := make([]int, len(Scopes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return Scopes[order[i]] < Scopes[order[j]] })
	return order
}

// BidAnalysis ranks the vendors per year, region and scope. Percentages are
// numbers rounded to one decimal: the gap between the two lowest bids
// relative to the lowest, and each bid's distance to the median bid.
func BidAnalysis() models.Dataset {
	cols := vendorColumns("YEAR", "REGION", "SCOPE")
	cols = append(cols, "1st Lowest", "1st Vendor", "2nd Lowest", "2nd Vendor", "Gap 1 to 2 (%)", "Median Price")
	for v := range Vendors {
		cols = append(cols, fmt.Sprintf("%s to Median (%%)", vendorColumn(v)))
	}
	ds := models.Dataset{Columns: cols}

	competitors := make([]int, len(Vendors))
	for v := range competitors {
		competitors[v] = v
	}
	for y, year := range Years {
		for r, region := range Regions {
			for _, s := range sortedScopes() {
				bids := make([]interface{}, len(Vendors))
				values := make([]float64, len(Vendors))
				for v := range Vendors {
					bids[v] = Price(v, y, r, s)
					values[v] = float64(Price(v, y, r, s))
				}
				rank := rules.Rank(bids, competitors)
				first, second := values[rank.First], values[rank.Second]
				mid := median(values)

				row := append([]interface{}{year, region, Scopes[s]}, bids...)
				row = append(row,
					bids[rank.First], vendorColumn(rank.First),
					bids[rank.Second], vendorColumn(rank.Second),
					percent(second-first, first),
					mid,
				)
				for _, p := range values {
					row = append(row, percent(p-mid, mid))
				}
				ds.Rows = append(ds.Rows, row)
			}
		}
	}
	return ds
}

// percent returns part/whole as a percentage rounded to one decimal.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromFloat(part * 100 / whole).Round(1).InexactFloat64()
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
