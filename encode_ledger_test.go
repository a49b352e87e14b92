package fintrack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"plain", NewEntry(1, "Salary", D(1000), Income, Other, date.New(1, 8, 2025)), "1,Salary,1000,1,8,2025,0,6"},
		{"fraction", NewEntry(2, "Lunch", decimal.RequireFromString("12.345678901234"), Expense, Food, date.New(2, 8, 2025)), "2,Lunch,12.345678901234,2,8,2025,1,0"},
		{"comma", NewEntry(3, "Rent, August", D(800), Expense, Utilities, date.New(3, 8, 2025)), `3,"Rent, August",800,3,8,2025,1,2`},
		{"quote", NewEntry(4, `The "big" one`, D(5), Expense, Entertainment, date.New(4, 8, 2025)), `4,"The ""big"" one",5,4,8,2025,1,3`},
		{"negative", NewEntry(5, "Refund", D(-20), Expense, Other, date.New(5, 8, 2025)), "5,Refund,-20,5,8,2025,1,6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeEntry(tt.entry))
		})
	}
}

func TestEntryRoundTrip(t *testing.T) {
	entries := []Entry{
		NewEntry(1, "Salary", D(1000), Income, Other, date.New(1, 8, 2025)),
		NewEntry(2, "Coffee", decimal.RequireFromString("3.1415926535897932"), Expense, Food, date.New(40, 13, 2025)),
		NewEntry(3, "Rent, August", D(800), Expense, Utilities, date.New(3, 8, 2025)),
		NewEntry(4, `say "hi", then leave`, D(1), Withdrawal, Food, date.New(4, 8, 2025)),
		NewEntry(5, "two\nlines", D(2), Investment, Other, date.New(5, 8, 2025)),
		NewEntry(6, "", D(0), Expense, Education, date.New(6, 8, 2025)),
	}
	for _, e := range entries {
		got, err := DecodeEntry(EncodeEntry(e))
		require.NoError(t, err, "decoding %q", EncodeEntry(e))
		assert.True(t, e.Equal(got), "DecodeEntry(EncodeEntry(%v)) = %v", e, got)
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeLedger(&buf, entries))
	got, skipped, err := DecodeLedger("test", &buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, got, len(entries))
	for i := range entries {
		assert.True(t, entries[i].Equal(got[i]), "entry %d: got %v, want %v", i, got[i], entries[i])
	}
}

func TestDecodeEntryLegacy(t *testing.T) {
	// written by the historical format, that never quoted anything.
	tests := []struct {
		line        string
		description string
	}{
		{"7,Rent, August,800,3,8,2025,1,2", "Rent, August"},
		{"7,a,b,,c,800,3,8,2025,1,2", "a,b,,c"},
		{`7,The "big" one,800,3,8,2025,1,2`, `The "big" one`},
		{`7,"quoted" then not,800,3,8,2025,1,2`, `"quoted" then not`},
		{`7,"never closed,800,3,8,2025,1,2`, `"never closed`},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			e, err := DecodeEntry(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.description, e.Description())
			assert.Equal(t, 7, e.ID())
			assert.True(t, e.Amount().Equal(D(800)))
			assert.Equal(t, Utilities, e.Category())
		})
	}
}

func TestDecodeEntryErrors(t *testing.T) {
	tests := []struct {
		line  string
		field string
		err   error
	}{
		{"1,Salary,1000,1,8,2025,0", "", ErrFieldCount},
		{"", "", ErrFieldCount},
		{"x,Salary,1000,1,8,2025,0,6", "id", ErrInvalidField},
		{"1,Salary,abc,1,8,2025,0,6", "amount", ErrInvalidField},
		{"1,Salary,1000,1,x,2025,0,6", "date", ErrInvalidField},
		{"1,Salary,1000,1,8,2025,4,6", "kind", ErrUnknownOrdinal},
		{"1,Salary,1000,1,8,2025,-1,6", "kind", ErrUnknownOrdinal},
		{"1,Salary,1000,1,8,2025,0,7", "category", ErrUnknownOrdinal},
		{"1,Salary,1000,1,8,2025,zero,6", "kind", ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := DecodeEntry(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestDecodeLedgerSkipsCorruptLines(t *testing.T) {
	content := strings.Join([]string{
		"1,Salary,1000,1,8,2025,0,6",
		"2,Lunch,twelve,2,8,2025,1,0",
		"",
		"   ",
		"3,Bus,2.5,2,8,2025,1,1",
		"garbage",
	}, "\n") + "\n"

	entries, skipped, err := DecodeLedger("ledger.csv", strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID())
	assert.Equal(t, 3, entries[1].ID())

	require.Len(t, skipped, 2)
	assert.Equal(t, "ledger.csv", skipped[0].File)
	assert.Equal(t, 2, skipped[0].Line)
	assert.Equal(t, "amount", skipped[0].Field)
	assert.ErrorIs(t, skipped[0], ErrInvalidField)
	assert.Equal(t, 6, skipped[1].Line)
	assert.ErrorIs(t, skipped[1], ErrFieldCount)
	assert.Contains(t, skipped[0].Error(), "ledger.csv:2:")
}

func TestDecodeLedgerStrayQuote(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		entries []int
		skipped []int
	}{
		{"legacy line", `1,"oops,10,1,1,2024,0,6`, []int{1, 2, 3}, nil},
		{"short line", `1,"oops`, []int{2, 3}, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Join([]string{
				tt.first,
				`2,"Rent, May",500,1,1,2024,1,2`,
				"3,Salary,1000,1,1,2024,0,6",
			}, "\n") + "\n"

			entries, skipped, err := DecodeLedger("ledger.csv", strings.NewReader(content))
			require.NoError(t, err)
			var ids []int
			for _, e := range entries {
				ids = append(ids, e.ID())
			}
			assert.Equal(t, tt.entries, ids)
			var lines []int
			for _, perr := range skipped {
				lines = append(lines, perr.Line)
			}
			assert.Equal(t, tt.skipped, lines)

			for _, e := range entries {
				if e.ID() == 2 {
					assert.Equal(t, "Rent, May", e.Description())
					assert.True(t, e.Amount().Equal(D(500)))
					assert.Equal(t, Utilities, e.Category())
				}
			}
		})
	}
}

func TestDecodeLedgerMultiline(t *testing.T) {
	content := "1,\"two\nlines\",10,1,8,2025,1,0\r\n2,Bus,2.5,2,8,2025,1,1\r\n"
	entries, skipped, err := DecodeLedger("ledger.csv", strings.NewReader(content))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, entries, 2)
	assert.Equal(t, "two\nlines", entries[0].Description())
	assert.Equal(t, "Bus", entries[1].Description())
}

func TestDecodeLedgerTruncated(t *testing.T) {
	// a partial write of the last record
	content := "1,Salary,1000,1,8,2025,0,6\n2,Lunch,12"
	entries, skipped, err := DecodeLedger("ledger.csv", strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Line)
}
