// Package date provides the day-granularity date used by ledger entries and holdings.
//
// Unlike time.Time, a Date is stored exactly as given: no calendar normalization is
// applied, so a day of 40 or a month of 13 is kept, encoded and decoded unchanged.
package date

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrSyntax is wrapped by all parse errors of this package.
var ErrSyntax = errors.New("invalid date")

// Date represents a calendar day as a (day, month, year) triple.
type Date struct {
	d, m, y int
}

// New returns the Date for the given day, month and year, without any validation.
func New(day, month, year int) Date { return Date{d: day, m: month, y: year} }

// Today returns the current local date.
func Today() Date { return FromTime(time.Now()) }

// FromTime returns the local calendar day of t.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{d: d, m: int(m), y: y}
}

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Month returns the month number.
func (d Date) Month() int { return d.m }

// Year returns the year.
func (d Date) Year() int { return d.y }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
// Ordering is lexicographic on (year, month, day).
func (d Date) Compare(x Date) int {
	if c := cmp.Compare(d.y, x.y); c != 0 {
		return c
	}
	if c := cmp.Compare(d.m, x.m); c != 0 {
		return c
	}
	return cmp.Compare(d.d, x.d)
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// String formats the date for display as "D/M/Y", without zero padding.
func (d Date) String() string {
	return strconv.Itoa(d.d) + "/" + strconv.Itoa(d.m) + "/" + strconv.Itoa(d.y)
}

// Encode formats the date for storage as "D,M,Y".
func (d Date) Encode() string {
	return strconv.Itoa(d.d) + "," + strconv.Itoa(d.m) + "," + strconv.Itoa(d.y)
}

// Fields returns the three storage fields of the date: day, month and year.
func (d Date) Fields() []string {
	return []string{strconv.Itoa(d.d), strconv.Itoa(d.m), strconv.Itoa(d.y)}
}

// Parse decodes a date in its storage format "D,M,Y".
// Day and month ranges are not validated.
func Parse(str string) (Date, error) {
	return split(str, ",")
}

// ParseDisplay decodes a date in its display format "D/M/Y".
func ParseDisplay(str string) (Date, error) {
	return split(str, "/")
}

// FromFields decodes a date from its three storage fields.
func FromFields(day, month, year string) (Date, error) {
	d, err := atoi("day", day)
	if err != nil {
		return Date{}, err
	}
	m, err := atoi("month", month)
	if err != nil {
		return Date{}, err
	}
	y, err := atoi("year", year)
	if err != nil {
		return Date{}, err
	}
	return New(d, m, y), nil
}

func split(str, sep string) (Date, error) {
	parts := strings.Split(str, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w %q: want 3 fields separated by %q, got %d", ErrSyntax, str, sep, len(parts))
	}
	return FromFields(parts[0], parts[1], parts[2])
}

func atoi(name, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrSyntax, name, field)
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler using the display format.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using the display format.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDisplay(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
