// Package models defines data structures for spreadsheet export.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TotalSentinel is the dimension text marking an aggregated row.
const TotalSentinel = "TOTAL"

// IsMissing reports whether v is a missing cell value (nil or NaN).
func IsMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	f, ok := Number(v)
	return ok && math.IsNaN(f)
}

// Number returns v as float64 when v holds a Go numeric type.
// Text is never treated as a number here, even when it looks like one.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Finite returns v as float64 when it is numeric and neither NaN nor infinite.
func Finite(v interface{}) (float64, bool) {
	f, ok := Number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Text renders v as plain text, without any locale formatting.
func Text(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	// Integers print exactly, including uint64 values beyond float64 precision.
	return fmt.Sprint(v)
}

// Normalize returns the trimmed, upper-cased text of v.
func Normalize(v interface{}) string {
	return strings.ToUpper(strings.TrimSpace(Text(v)))
}

// IsTotal reports whether v is the TOTAL sentinel, ignoring case and
// surrounding whitespace.
func IsTotal(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(s), TotalSentinel)
}
