package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency when none is given.
const DefaultCurrency = "INR"

// KnownCurrency reports whether code is an ISO 4217 code known to the formatter.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// Money formats amount in currency, rounded to the currency's minor unit.
//
// Unknown currencies are formatted as a plain number followed by the code.
func Money(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(currency)
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedMoney is like Money with an explicit "+" for positive amounts.
func SignedMoney(amount decimal.Decimal, currency string) string {
	s := Money(amount, currency)
	if amount.Round(2).IsPositive() {
		return "+" + s
	}
	return s
}
