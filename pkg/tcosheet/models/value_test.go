package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissing(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{"nil", nil, true},
		{"float NaN", math.NaN(), true},
		{"float32 NaN", float32(math.NaN()), true},
		{"zero", 0, false},
		{"empty text", "", false},
		{"NaN text", "NaN", false},
		{"infinity", math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMissing(tt.value))
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"int", 252100, 252100, true},
		{"int8", int8(-3), -3, true},
		{"uint64", uint64(1) << 53, 9007199254740992, true},
		{"float32", float32(1.5), 1.5, true},
		{"float64", 0.052, 0.052, true},
		{"numeric text", "12", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinite(t *testing.T) {
	for _, v := range []interface{}{math.NaN(), math.Inf(1), math.Inf(-1), "100", nil} {
		_, ok := Finite(v)
		assert.False(t, ok, "%v", v)
	}
	f, ok := Finite(int64(-40))
	assert.True(t, ok)
	assert.Equal(t, -40.0, f)
}

func TestText(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "VENDOR A", Text("VENDOR A"))
	assert.Equal(t, "true", Text(true))
	assert.Equal(t, "0.1", Text(float32(0.1)))
	assert.Equal(t, "252100", Text(252100.0))
	assert.Equal(t, "18446744073709551615", Text(uint64(math.MaxUint64)))
	assert.Equal(t, "-7", Text(int16(-7)))
}

func TestNormalizeAndIsTotal(t *testing.T) {
	assert.Equal(t, "TOTAL", Normalize("  total "))
	assert.Equal(t, "2025", Normalize(2025))

	assert.True(t, IsTotal(" total "))
	assert.True(t, IsTotal("TOTAL"))
	assert.False(t, IsTotal("TOTALS"))
	assert.False(t, IsTotal(5))
	assert.False(t, IsTotal(nil))
}
