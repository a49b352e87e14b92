package fintrack

import "fmt"

// Percent is a ratio expressed in percent (12.5 means 12.5%).
type Percent float64

// Equal reports whether p and q differ by less than 0.0001 percentage points.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats p with two decimals and a percent sign, like "12.50%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString is like String with an explicit sign, like "+12.50%" or "-3.00%".
// A value that rounds to zero is shown as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
