package fintrack

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Income, "Income"},
		{Expense, "Expense"},
		{Investment, "Investment"},
		{Withdrawal, "Withdrawal"},
		{Kind(7), "Kind(7)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if got, err := ParseKind(" expense "); err != nil || got != Expense {
		t.Errorf("ParseKind(\" expense \") = %v, %v; want Expense", got, err)
	}
	if _, err := ParseKind("salary"); !errors.Is(err, ErrInvalidField) {
		t.Errorf("ParseKind(\"salary\") error = %v, want ErrInvalidField", err)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if got, err := ParseCategory("HEALTHCARE"); err != nil || got != Healthcare {
		t.Errorf("ParseCategory(\"HEALTHCARE\") = %v, %v; want Healthcare", got, err)
	}
	if _, err := ParseCategory("rent"); !errors.Is(err, ErrInvalidField) {
		t.Errorf("ParseCategory(\"rent\") error = %v, want ErrInvalidField", err)
	}
	if _, err := Category(9).MarshalText(); !errors.Is(err, ErrUnknownOrdinal) {
		t.Errorf("Category(9).MarshalText() error = %v, want ErrUnknownOrdinal", err)
	}
}

func TestEntrySetters(t *testing.T) {
	e := NewEntry(4, "Lunch", D(12.5), Expense, Food, day)
	e.SetDescription("Dinner")
	e.SetAmount(D(30))
	e.SetCategory(Entertainment)

	want := NewEntry(4, "Dinner", D(30), Expense, Entertainment, day)
	if !e.Equal(want) {
		t.Errorf("after edit got %v, want %v", e, want)
	}
	if e.ID() != 4 || e.Kind() != Expense || e.Date() != day {
		t.Errorf("immutable fields changed: %v", e)
	}
}
