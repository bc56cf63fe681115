package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

func TestClassify(t *testing.T) {
	roles := models.NewColumnRoles()
	roles.Year = 0
	roles.Scope = 1

	tests := []struct {
		row      []interface{}
		expected models.RowClass
	}{
		{[]interface{}{"2025", "TOTAL", 1}, models.RowYearSubtotal},
		{[]interface{}{"TOTAL", "", 1}, models.RowGrandTotal},
		{[]interface{}{"2025", "Site Survey", 1}, models.RowOrdinary},
		{[]interface{}{" total ", nil, 1}, models.RowGrandTotal},
		{[]interface{}{2025, " Total", 1}, models.RowYearSubtotal},
		{[]interface{}{"TOTAL", "TOTAL", 1}, models.RowGrandTotal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.row, roles), "Classify(%v)", tt.row)
	}
}

func TestClassifyWithoutRoles(t *testing.T) {
	row := []interface{}{"TOTAL", "TOTAL"}
	assert.Equal(t, models.RowOrdinary, Classify(row, models.NewColumnRoles()))
}

func TestIsTotalRow(t *testing.T) {
	assert.True(t, IsTotalRow([]interface{}{"TOTAL", 1, 2}))
	assert.True(t, IsTotalRow([]interface{}{"Vendor A", "  total"}))
	assert.False(t, IsTotalRow([]interface{}{"TOTALS", 1}))
	assert.False(t, IsTotalRow([]interface{}{"Grand TOTAL", nil}))
	assert.False(t, IsTotalRow([]interface{}{2025, 3.5}))
}
