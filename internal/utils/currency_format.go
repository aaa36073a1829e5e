package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount for report display: 2-decimal half-up
// rounding, thousand separators and the currency code prefix.
// Example: 1234567.8 with "PKR" returns "PKR 1,234,567.80".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatNumber(amount)
	}
	return currency + " " + FormatNumber(amount)
}

// FormatNumber renders an amount with 2-decimal half-up rounding and
// thousand separators, preserving a leading minus sign.
func FormatNumber(amount decimal.Decimal) string {
	s := amount.Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// TruncateDescription caps free-text descriptions for table cells at max
// characters, appending an ellipsis when truncated.
func TruncateDescription(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
