package utils_test

import (
	"testing"

	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{"simple", decimal.NewFromInt(1000), "PKR", "PKR 1,000.00"},
		{"millions", decimal.RequireFromString("1234567.8"), "PKR", "PKR 1,234,567.80"},
		{"negative", decimal.RequireFromString("-4500.5"), "PKR", "PKR -4,500.50"},
		{"half-up rounding", decimal.RequireFromString("2.005"), "PKR", "PKR 2.01"},
		{"no currency", decimal.NewFromInt(50), "", "50.00"},
		{"small", decimal.RequireFromString("0.4"), "USD", "USD 0.40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(tt.amount, tt.currency))
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	assert.Equal(t, "short", utils.TruncateDescription("short", 10))
	assert.Equal(t, "exactlyten", utils.TruncateDescription("exactlyten", 10))
	assert.Equal(t, "elevenchars…", utils.TruncateDescription("elevencharsx", 11))
	assert.Equal(t, "0123456789…", utils.TruncateDescription("0123456789extra", 10))
	assert.Equal(t, "", utils.TruncateDescription("", 10))
}
