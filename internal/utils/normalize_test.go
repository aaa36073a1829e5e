package utils_test

import (
	"math"
	"testing"

	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	def := decimal.Zero

	tests := []struct {
		name  string
		input any
		want  decimal.Decimal
	}{
		{"nil", nil, def},
		{"float64", 12.5, decimal.NewFromFloat(12.5)},
		{"NaN", math.NaN(), def},
		{"positive infinity", math.Inf(1), def},
		{"negative infinity", math.Inf(-1), def},
		{"int", 42, decimal.NewFromInt(42)},
		{"int64", int64(-7), decimal.NewFromInt(-7)},
		{"numeric string", "99.99", decimal.RequireFromString("99.99")},
		{"garbage string", "abc", def},
		{"decimal passthrough", decimal.NewFromInt(3), decimal.NewFromInt(3)},
		{"nil decimal pointer", (*decimal.Decimal)(nil), def},
		{"unsupported type", struct{}{}, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.ToDecimal(tt.input, def)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestToDecimal_CustomDefault(t *testing.T) {
	def := decimal.NewFromInt(100)
	assert.True(t, utils.ToDecimal(nil, def).Equal(def))
	assert.True(t, utils.ToDecimal("junk", def).Equal(def))
}
