package fintrack

import (
	"encoding/json"
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryJSON(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{
			NewEntry(1, "Salary", D(1000), Income, Other, date.New(1, 8, 2025)),
			`{"id":1,"date":"1/8/2025","kind":"Income","description":"Salary","amount":1000}`,
		},
		{
			NewEntry(2, "Lunch", D(12.5), Expense, Food, date.New(2, 8, 2025)),
			`{"id":2,"date":"2/8/2025","kind":"Expense","category":"Food","description":"Lunch","amount":12.5}`,
		},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.entry)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(got))
	}
}

func TestHoldingJSON(t *testing.T) {
	h := NewHolding("AAPL", "Apple", Stock, D(2), D(100), date.New(1, 8, 2025))
	h.SetCurrentPrice(D(120))
	got, err := json.Marshal(h)
	require.NoError(t, err)
	want := `{"symbol":"AAPL","name":"Apple","kind":"Stock","quantity":2,"purchasePrice":100,"currentPrice":120,` +
		`"purchaseDate":"1/8/2025","currentValue":240,"initialValue":200,"gainLoss":40,"gainLossPct":20}`
	assert.Equal(t, want, string(got))
}

func TestDocument(t *testing.T) {
	s := New(WithClock(func() date.Date { return day }))
	s.RecordTransaction("Salary", D(1000), Income, Other)
	s.RecordTransaction("Groceries", D(300), Expense, Food)
	s.RecordPurchase("A", "Alpha", Stock, D(2), D(100))
	s.RecordPurchase("B", "Beta", MutualFund, D(1), D(50))
	require.NoError(t, s.SetPrice("A", D(120)))
	require.NoError(t, s.SetPrice("B", D(40)))

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "3/8/2025", doc["date"])
	assert.Equal(t, DefaultPortfolioName, doc["portfolioName"])
	assert.EqualValues(t, 980, doc["netWorth"])
	assert.EqualValues(t, 12, doc["gainLossPct"])
	assert.Len(t, doc["entries"], 4)
	assert.Len(t, doc["holdings"], 2)
	assert.Len(t, doc["positions"], 2)
	assert.Equal(t, map[string]any{"Food": 300.0}, doc["expenseByCategory"])
	div, ok := doc["diversification"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, div, "Mutual Fund")
}

func TestEmptyDocument(t *testing.T) {
	b, err := json.Marshal(New())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, []any{}, doc["entries"])
	assert.Equal(t, []any{}, doc["holdings"])
	assert.Equal(t, map[string]any{}, doc["diversification"])
}
