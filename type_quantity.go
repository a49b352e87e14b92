package fintrack

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// D is a convenient factory for decimal.Decimal amounts, quantities and prices.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// ratio returns num/den in percent, or 0 when den is zero.
func ratio(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		return 0
	}
	return Percent(num.Div(den).Mul(hundred).InexactFloat64())
}
