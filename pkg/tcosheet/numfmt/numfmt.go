// Package numfmt renders cell values the way the comparison tables display
// them: "." groups thousands and "," separates decimals.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

const (
	thousandsSep = "."
	decimalSep   = ","
)

// Kind is the display format of a column.
type Kind int

const (
	// KindText leaves values as they are.
	KindText Kind = iota
	// KindCurrency groups thousands and shows two decimals only when needed.
	KindCurrency
	// KindPercent shows one decimal and a trailing %.
	KindPercent
	// KindSignedPercent is KindPercent with an explicit + on nonnegative values.
	KindSignedPercent
)

// Spreadsheet number format codes matching the display formats.
const (
	CodeInteger       = "#,##0"
	CodeDecimal       = "#,##0.00"
	CodePercent       = `#,##0.0"%"`
	CodeSignedPercent = `+#,##0.0"%";-#,##0.0"%"`
)

// ColumnKind picks the display format for a column from its name and
// whether all of its values are numbers. Any name containing % is a
// percentage; a percentage measured against the median is signed.
func ColumnKind(name string, numeric bool) Kind {
	if strings.Contains(name, "%") {
		if strings.Contains(strings.ToUpper(name), "MEDIAN") {
			return KindSignedPercent
		}
		return KindPercent
	}
	// Years stay plain even when a source sheet stored them as numbers.
	if strings.EqualFold(strings.TrimSpace(name), "YEAR") {
		return KindText
	}
	if numeric {
		return KindCurrency
	}
	return KindText
}

// Format renders v as a currency-style number. Missing values become "",
// values that are not numbers are returned unchanged.
func Format(v interface{}) string {
	d, ok := toDecimal(v, false)
	if !ok {
		return passthrough(v)
	}
	return formatCurrency(d)
}

// FormatPercent renders v with one decimal and a trailing %. With signed
// set, nonnegative values get a leading +.
func FormatPercent(v interface{}, signed bool) string {
	d, ok := toDecimal(v, true)
	if !ok {
		return passthrough(v)
	}
	d = d.Round(1)
	s := group(d.Abs().StringFixed(1))
	switch {
	case d.Sign() < 0:
		s = "-" + s
	case signed:
		s = "+" + s
	}
	return s + "%"
}

// FormatAs renders v for a column of the given kind.
func FormatAs(kind Kind, v interface{}) string {
	switch kind {
	case KindCurrency:
		return Format(v)
	case KindPercent:
		return FormatPercent(v, false)
	case KindSignedPercent:
		return FormatPercent(v, true)
	}
	return passthrough(v)
}

// Code returns the spreadsheet number format code for v in a column of the
// given kind, or "" when no number format applies.
func Code(kind Kind, v interface{}) string {
	f, ok := models.Finite(v)
	if !ok {
		return ""
	}
	switch kind {
	case KindCurrency:
		if decimal.NewFromFloat(f).Round(2).IsInteger() {
			return CodeInteger
		}
		return CodeDecimal
	case KindPercent:
		return CodePercent
	case KindSignedPercent:
		return CodeSignedPercent
	}
	return ""
}

func formatCurrency(d decimal.Decimal) string {
	d = d.Round(2)
	var s string
	if d.IsInteger() {
		s = group(d.Abs().StringFixed(0))
	} else {
		s = group(d.Abs().StringFixed(2))
	}
	if d.Sign() < 0 {
		s = "-" + s
	}
	return s
}

// toDecimal converts numbers and numeric text. With percent set, text such
// as "+3.5%" is accepted too.
func toDecimal(v interface{}, percent bool) (decimal.Decimal, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if percent {
			s = strings.TrimSuffix(s, "%")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(f), true
	}
	f, ok := models.Finite(v)
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

func passthrough(v interface{}) string {
	if models.IsMissing(v) {
		return ""
	}
	if f, ok := models.Number(v); ok && math.IsInf(f, 0) {
		return ""
	}
	return models.Text(v)
}

// group inserts thousands separators into an unsigned "123456.78" string
// and swaps the decimal point for the decimal separator.
func group(fixed string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteString(decimalSep)
		b.WriteString(frac)
	}
	return b.String()
}
