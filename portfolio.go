package fintrack

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Portfolio is a named and ordered collection of holdings.
//
// The portfolio owns its holdings. Totals are always computed from the current
// members, nothing is cached.
type Portfolio struct {
	name     string
	holdings []*Holding
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{name: name}
}

func (p *Portfolio) Name() string { return p.name }

// Len returns the number of line items.
func (p *Portfolio) Len() int { return len(p.holdings) }

// At returns the i-th line item, in insertion order.
func (p *Portfolio) At(i int) *Holding { return p.holdings[i] }

// Holdings iterates over line items in insertion order.
func (p *Portfolio) Holdings() iter.Seq[*Holding] {
	return func(yield func(*Holding) bool) {
		for _, h := range p.holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// Add appends h to the portfolio, which takes ownership of it.
func (p *Portfolio) Add(h *Holding) { p.holdings = append(p.holdings, h) }

// Find returns the first holding with the given symbol.
func (p *Portfolio) Find(symbol string) (*Holding, bool) {
	i := p.index(symbol)
	if i < 0 {
		return nil, false
	}
	return p.holdings[i], true
}

// Remove deletes the first holding with the given symbol and reports whether one was found.
func (p *Portfolio) Remove(symbol string) bool {
	i := p.index(symbol)
	if i < 0 {
		return false
	}
	p.holdings = slices.Delete(p.holdings, i, i+1)
	return true
}

func (p *Portfolio) index(symbol string) int {
	return slices.IndexFunc(p.holdings, func(h *Holding) bool { return h.symbol == symbol })
}

func (p *Portfolio) sum(f func(*Holding) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.holdings {
		total = total.Add(f(h))
	}
	return total
}

// TotalValue is the sum of the current values of all holdings.
func (p *Portfolio) TotalValue() decimal.Decimal { return p.sum((*Holding).CurrentValue) }

// TotalInitialValue is the sum of the initial values of all holdings.
func (p *Portfolio) TotalInitialValue() decimal.Decimal { return p.sum((*Holding).InitialValue) }

// TotalGainLoss is TotalValue minus TotalInitialValue.
func (p *Portfolio) TotalGainLoss() decimal.Decimal {
	return p.TotalValue().Sub(p.TotalInitialValue())
}

// TotalGainLossPct is the total gain relative to the total initial value, 0 if
// the portfolio cost nothing.
func (p *Portfolio) TotalGainLossPct() Percent {
	return ratio(p.TotalGainLoss(), p.TotalInitialValue())
}

// Diversification returns the share of the total value held in each asset kind.
// The map is empty when the total value is 0.
func (p *Portfolio) Diversification() map[AssetKind]Percent {
	res := make(map[AssetKind]Percent)
	total := p.TotalValue()
	if total.IsZero() {
		return res
	}
	byKind := make(map[AssetKind]decimal.Decimal)
	for _, h := range p.holdings {
		byKind[h.kind] = byKind[h.kind].Add(h.CurrentValue())
	}
	for k, v := range byKind {
		res[k] = ratio(v, total)
	}
	return res
}

// Position is the consolidated view of all line items sharing a symbol.
type Position struct {
	Symbol       string
	Name         string
	Kind         AssetKind
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal // quantity weighted purchase price
	CurrentPrice decimal.Decimal // of the first line item
	InitialValue decimal.Decimal
	CurrentValue decimal.Decimal
	LineItems    int
}

// GainLoss is CurrentValue minus InitialValue.
func (pos Position) GainLoss() decimal.Decimal { return pos.CurrentValue.Sub(pos.InitialValue) }

// GainLossPct is the gain relative to InitialValue, 0 if InitialValue is 0.
func (pos Position) GainLossPct() Percent { return ratio(pos.GainLoss(), pos.InitialValue) }

// Positions consolidates line items per symbol, in order of first appearance.
func (p *Portfolio) Positions() []Position {
	var res []Position
	index := make(map[string]int)
	for _, h := range p.holdings {
		i, exists := index[h.symbol]
		if !exists {
			i = len(res)
			index[h.symbol] = i
			res = append(res, Position{
				Symbol:       h.symbol,
				Name:         h.name,
				Kind:         h.kind,
				CurrentPrice: h.currentPrice,
			})
		}
		pos := &res[i]
		pos.Quantity = pos.Quantity.Add(h.quantity)
		pos.InitialValue = pos.InitialValue.Add(h.InitialValue())
		pos.CurrentValue = pos.CurrentValue.Add(h.CurrentValue())
		pos.LineItems++
	}
	for i := range res {
		if !res[i].Quantity.IsZero() {
			res[i].AveragePrice = res[i].InitialValue.Div(res[i].Quantity).Round(PricePrecision)
		}
	}
	return res
}

// SimulateMarketMove applies one draw of mover to the current price of each holding.
// See Move for the bounds applied.
func (p *Portfolio) SimulateMarketMove(mover MarketMover) {
	for _, h := range p.holdings {
		h.currentPrice = Move(h.currentPrice, mover.Move())
	}
}

// Clone returns a deep copy of p.
func (p *Portfolio) Clone() *Portfolio {
	c := &Portfolio{name: p.name, holdings: make([]*Holding, len(p.holdings))}
	for i, h := range p.holdings {
		c.holdings[i] = h.Clone()
	}
	return c
}
