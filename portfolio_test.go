package fintrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePortfolio returns A(qty 2, price 100→120) and B(qty 1, price 50→40).
func samplePortfolio() *Portfolio {
	p := NewPortfolio("sample")
	a := NewHolding("A", "Alpha", Stock, D(2), D(100), day)
	a.SetCurrentPrice(D(120))
	b := NewHolding("B", "Beta", Bond, D(1), D(50), day)
	b.SetCurrentPrice(D(40))
	p.Add(a)
	p.Add(b)
	return p
}

func TestPortfolioValuation(t *testing.T) {
	p := samplePortfolio()
	assert.True(t, p.TotalValue().Equal(D(280)), "TotalValue() = %v", p.TotalValue())
	assert.True(t, p.TotalInitialValue().Equal(D(250)), "TotalInitialValue() = %v", p.TotalInitialValue())
	assert.True(t, p.TotalGainLoss().Equal(D(30)), "TotalGainLoss() = %v", p.TotalGainLoss())
	assert.True(t, p.TotalGainLossPct().Equal(12.0), "TotalGainLossPct() = %v", p.TotalGainLossPct())
}

func TestPortfolioEmpty(t *testing.T) {
	p := NewPortfolio("empty")
	assert.True(t, p.TotalValue().IsZero())
	assert.Equal(t, Percent(0), p.TotalGainLossPct())
	assert.Empty(t, p.Diversification())
	assert.Empty(t, p.Positions())
}

func TestDiversification(t *testing.T) {
	p := samplePortfolio()
	p.Add(NewHolding("C", "Gamma", Stock, D(1), D(40), day))

	div := p.Diversification()
	require.Len(t, div, 2)
	assert.True(t, div[Stock].Equal(Percent(280.0/320*100)), "stock = %v", div[Stock])
	assert.True(t, div[Bond].Equal(Percent(40.0/320*100)), "bond = %v", div[Bond])

	var sum Percent
	for _, v := range div {
		sum += v
	}
	assert.True(t, sum.Equal(100), "sum = %v", sum)
}

func TestDiversificationZeroValue(t *testing.T) {
	p := NewPortfolio("zero")
	p.Add(NewHolding("A", "", Stock, D(0), D(10), day))
	assert.Empty(t, p.Diversification())
}

func TestFindRemove(t *testing.T) {
	p := samplePortfolio()
	p.Add(NewHolding("A", "Alpha again", Stock, D(5), D(110), day))

	h, ok := p.Find("A")
	require.True(t, ok)
	assert.Equal(t, "Alpha", h.Name(), "Find returns the first line item")

	_, ok = p.Find("Z")
	assert.False(t, ok)

	assert.True(t, p.Remove("A"))
	assert.Equal(t, 2, p.Len())
	h, ok = p.Find("A")
	require.True(t, ok)
	assert.Equal(t, "Alpha again", h.Name())
	assert.Equal(t, "B", p.At(0).Symbol(), "order is preserved")

	assert.False(t, p.Remove("Z"))
	assert.Equal(t, 2, p.Len())
}

func TestPositions(t *testing.T) {
	p := NewPortfolio("positions")
	p.Add(NewHolding("AAPL", "Apple", Stock, D(10), D(100), day))
	p.Add(NewHolding("BTC", "Bitcoin", Crypto, D(1), D(1000), day))
	p.Add(NewHolding("AAPL", "Apple", Stock, D(30), D(200), day))

	pos := p.Positions()
	require.Len(t, pos, 2)
	assert.Equal(t, "AAPL", pos[0].Symbol)
	assert.Equal(t, 2, pos[0].LineItems)
	assert.True(t, pos[0].Quantity.Equal(D(40)), "quantity = %v", pos[0].Quantity)
	assert.True(t, pos[0].AveragePrice.Equal(D(175)), "average price = %v", pos[0].AveragePrice)
	assert.True(t, pos[0].InitialValue.Equal(D(7000)))
	assert.Equal(t, "BTC", pos[1].Symbol)
	assert.Equal(t, 3, p.Len(), "line items are kept separate")
}

func TestPortfolioClone(t *testing.T) {
	p := samplePortfolio()
	c := p.Clone()
	c.At(0).SetCurrentPrice(D(1))
	c.Remove("B")

	assert.Equal(t, 2, p.Len())
	assert.True(t, p.At(0).CurrentPrice().Equal(D(120)))
	assert.Equal(t, p.Name(), c.Name())
}

func TestSimulateMarketMove(t *testing.T) {
	p := samplePortfolio()
	p.SimulateMarketMove(Moves(0.05, -0.5))

	assert.True(t, p.At(0).CurrentPrice().Equal(D(126)), "A = %v", p.At(0).CurrentPrice())
	// clamped to -5%
	assert.True(t, p.At(1).CurrentPrice().Equal(D(38)), "B = %v", p.At(1).CurrentPrice())
	assert.True(t, p.At(0).PurchasePrice().Equal(D(100)))
}
