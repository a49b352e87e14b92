package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Kind is the nature of a ledger entry. Its ordinal value is the one persisted.
type Kind int

// Kinds of ledger entries.
const (
	Income Kind = iota
	Expense
	Investment
	Withdrawal
)

var kindNames = [...]string{"Income", "Expense", "Investment", "Withdrawal"}

// Kinds returns all valid kinds in ordinal order.
func Kinds() []Kind { return []Kind{Income, Expense, Investment, Withdrawal} }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownOrdinal, int(k))
	}
	return []byte(k.String()), nil
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidField, s)
}

// Category classifies expenses. Entries of other kinds carry it without meaning.
type Category int

// Expense categories.
const (
	Food Category = iota
	Transport
	Utilities
	Entertainment
	Healthcare
	Education
	Other
)

var categoryNames = [...]string{"Food", "Transport", "Utilities", "Entertainment", "Healthcare", "Education", "Other"}

// Categories returns all valid categories in ordinal order.
func Categories() []Category {
	return []Category{Food, Transport, Utilities, Entertainment, Healthcare, Education, Other}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return c >= 0 && int(c) < len(categoryNames) }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: category %d", ErrUnknownOrdinal, int(c))
	}
	return []byte(c.String()), nil
}

// ParseCategory returns the category with the given name, ignoring case.
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidField, s)
}

// Entry is a single record of the ledger.
//
// Its id, kind and date are fixed at creation. Description, amount and category
// can be edited in place.
type Entry struct {
	id          int
	description string
	amount      decimal.Decimal
	on          date.Date
	kind        Kind
	category    Category
}

// NewEntry creates a ledger entry. Amount sign and magnitude are not validated.
func NewEntry(id int, description string, amount decimal.Decimal, kind Kind, category Category, on date.Date) Entry {
	return Entry{
		id:          id,
		description: description,
		amount:      amount,
		on:          on,
		kind:        kind,
		category:    category,
	}
}

// Accessors of the entry fields.

func (e Entry) ID() int                 { return e.id }
func (e Entry) Description() string     { return e.description }
func (e Entry) Amount() decimal.Decimal { return e.amount }
func (e Entry) Date() date.Date         { return e.on }
func (e Entry) Kind() Kind              { return e.kind }
func (e Entry) Category() Category      { return e.category }

// Setters of the editable fields.

func (e *Entry) SetDescription(description string) { e.description = description }
func (e *Entry) SetAmount(amount decimal.Decimal)  { e.amount = amount }
func (e *Entry) SetCategory(category Category)     { e.category = category }

// Equal reports whether e and x hold the same values.
func (e Entry) Equal(x Entry) bool {
	return e.id == x.id &&
		e.description == x.description &&
		e.amount.Equal(x.amount) &&
		e.on == x.on &&
		e.kind == x.kind &&
		e.category == x.category
}

func (e Entry) String() string {
	s := fmt.Sprintf("#%d %s %s %s %s", e.id, e.on, e.kind, e.amount, e.description)
	if e.kind == Expense {
		s += " [" + e.category.String() + "]"
	}
	return s
}
