package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// parseAmount decodes a decimal flag value.
func parseAmount(name, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("missing %s", name)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return d, nil
}

// parseDate decodes a D/M/Y flag value. "0/0/0" is a valid date.
func parseDate(s string) (date.Date, error) {
	return date.ParseDisplay(strings.TrimSpace(s))
}
