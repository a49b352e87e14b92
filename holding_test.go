package fintrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoldingValuation(t *testing.T) {
	h := NewHolding("AAPL", "Apple", Stock, D(2), D(100), day)
	assert.True(t, h.CurrentPrice().Equal(D(100)), "current price starts at the purchase price")
	assert.True(t, h.GainLoss().IsZero())

	h.SetCurrentPrice(D(120))
	assert.True(t, h.CurrentValue().Equal(D(240)), "CurrentValue() = %v", h.CurrentValue())
	assert.True(t, h.InitialValue().Equal(D(200)), "InitialValue() = %v", h.InitialValue())
	assert.True(t, h.GainLoss().Equal(D(40)), "GainLoss() = %v", h.GainLoss())
	assert.True(t, h.GainLossPct().Equal(20), "GainLossPct() = %v", h.GainLossPct())

	h.AddQuantity(D(3))
	assert.True(t, h.Quantity().Equal(D(5)))
	assert.True(t, h.PurchasePrice().Equal(D(100)), "a top-up does not change the purchase price")
}

func TestHoldingZeroInitialValue(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		price    float64
	}{
		{"zero quantity", 0, 10},
		{"zero price", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHolding("X", "", Crypto, D(tt.quantity), D(tt.price), day)
			h.SetCurrentPrice(D(5))
			assert.Equal(t, Percent(0), h.GainLossPct())
		})
	}
}

func TestAssetKind(t *testing.T) {
	assert.Equal(t, "Mutual Fund", MutualFund.String())
	for _, input := range []string{"Mutual Fund", "mutualfund", " MUTUAL fund "} {
		got, err := ParseAssetKind(input)
		if assert.NoError(t, err, input) {
			assert.Equal(t, MutualFund, got, input)
		}
	}
	got, err := ParseAssetKind("etf")
	assert.NoError(t, err)
	assert.Equal(t, ETF, got)

	_, err = ParseAssetKind("gold")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestHoldingClone(t *testing.T) {
	h := NewHolding("BTC", "Bitcoin", Crypto, D(1), D(100), day)
	c := h.Clone()
	c.SetCurrentPrice(D(50))
	assert.True(t, h.CurrentPrice().Equal(D(100)), "clone shares state with the original")
	assert.False(t, h.Equal(c))
}
