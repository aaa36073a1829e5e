package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// ToDecimal coerces an arbitrary value into a finite decimal amount,
// returning def for nil, NaN, infinities and anything unparseable. It never
// returns an error; all downstream amount math goes through this so garbage
// input degrades to the default instead of propagating.
func ToDecimal(value any, def decimal.Decimal) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return def
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return def
		}
		return *v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return decimal.NewFromFloat(v)
	case float32:
		return ToDecimal(float64(v), def)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return def
		}
		return d
	default:
		return def
	}
}
