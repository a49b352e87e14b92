package fintrack

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.id).
		Append("date", e.on).
		Append("kind", e.kind)
	if e.kind == Expense {
		w.Append("category", e.category)
	}
	w.Append("description", e.description).
		Append("amount", e.amount)
	return w.MarshalJSON()
}

func (h *Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", h.symbol).
		Optional("name", h.name).
		Append("kind", h.kind).
		Append("quantity", h.quantity).
		Append("purchasePrice", h.purchasePrice).
		Append("currentPrice", h.currentPrice).
		Append("purchaseDate", h.purchaseDate).
		Append("currentValue", h.CurrentValue()).
		Append("initialValue", h.InitialValue()).
		Append("gainLoss", h.GainLoss()).
		Append("gainLossPct", h.GainLossPct())
	return w.MarshalJSON()
}

func (pos Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", pos.Symbol).
		Optional("name", pos.Name).
		Append("kind", pos.Kind).
		Append("quantity", pos.Quantity).
		Append("averagePrice", pos.AveragePrice).
		Append("currentPrice", pos.CurrentPrice).
		Append("currentValue", pos.CurrentValue).
		Append("initialValue", pos.InitialValue).
		Append("gainLoss", pos.GainLoss()).
		Append("gainLossPct", pos.GainLossPct()).
		Append("lineItems", pos.LineItems)
	return w.MarshalJSON()
}

// Document is the JSON view of a store: its entries, its holdings and its summary.
//
// The summary fields are at the top level of the document.
type Document struct {
	Entries   []Entry
	Holdings  []*Holding
	Positions []Position
	Summary   Summary
}

// Document returns a consistent snapshot of the store.
func (s *Store) Document() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.portfolio.Clone()
	holdings := make([]*Holding, 0, p.Len())
	for h := range p.Holdings() {
		holdings = append(holdings, h)
	}
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return Document{
		Entries:   entries,
		Holdings:  holdings,
		Positions: p.Positions(),
		Summary:   s.summaryLocked(),
	}
}

func (d Document) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(d.Summary).
		Append("entries", nonNil(d.Entries)).
		Append("holdings", nonNil(d.Holdings)).
		Append("positions", nonNil(d.Positions))
	return w.MarshalJSON()
}

// nonNil makes empty lists marshal as [] instead of null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

// MarshalJSON returns the JSON document of the store, see Document.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Document())
}
