package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// AssetKind classifies holdings. Its ordinal value is the one persisted.
type AssetKind int

// Asset kinds.
const (
	Stock AssetKind = iota
	Bond
	MutualFund
	Crypto
	ETF
)

var assetKindNames = [...]string{"Stock", "Bond", "Mutual Fund", "Crypto", "ETF"}

// AssetKinds returns all valid asset kinds in ordinal order.
func AssetKinds() []AssetKind { return []AssetKind{Stock, Bond, MutualFund, Crypto, ETF} }

// Valid reports whether k is a known asset kind.
func (k AssetKind) Valid() bool { return k >= 0 && int(k) < len(assetKindNames) }

func (k AssetKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("AssetKind(%d)", int(k))
	}
	return assetKindNames[k]
}

func (k AssetKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: asset kind %d", ErrUnknownOrdinal, int(k))
	}
	return []byte(k.String()), nil
}

// ParseAssetKind returns the asset kind with the given name, ignoring case.
// Spaces are optional, "mutualfund" and "Mutual Fund" are the same kind.
func ParseAssetKind(s string) (AssetKind, error) {
	compact := func(s string) string { return strings.ReplaceAll(strings.TrimSpace(s), " ", "") }
	for i, n := range assetKindNames {
		if strings.EqualFold(compact(n), compact(s)) {
			return AssetKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown asset kind %q", ErrInvalidField, s)
}

// Holding is one line item of the portfolio: a quantity of an asset bought at a
// fixed price per unit and valued at a current price.
type Holding struct {
	symbol        string
	name          string
	kind          AssetKind
	quantity      decimal.Decimal
	purchasePrice decimal.Decimal
	currentPrice  decimal.Decimal
	purchaseDate  date.Date
}

// NewHolding creates a holding whose current price is its purchase price.
func NewHolding(symbol, name string, kind AssetKind, quantity, price decimal.Decimal, on date.Date) *Holding {
	return &Holding{
		symbol:        symbol,
		name:          name,
		kind:          kind,
		quantity:      quantity,
		purchasePrice: price,
		currentPrice:  price,
		purchaseDate:  on,
	}
}

// Accessors of the holding fields.

func (h *Holding) Symbol() string                 { return h.symbol }
func (h *Holding) Name() string                   { return h.name }
func (h *Holding) Kind() AssetKind                { return h.kind }
func (h *Holding) Quantity() decimal.Decimal      { return h.quantity }
func (h *Holding) PurchasePrice() decimal.Decimal { return h.purchasePrice }
func (h *Holding) CurrentPrice() decimal.Decimal  { return h.currentPrice }
func (h *Holding) PurchaseDate() date.Date        { return h.purchaseDate }

// SetCurrentPrice replaces the current price.
func (h *Holding) SetCurrentPrice(p decimal.Decimal) { h.currentPrice = p }

// AddQuantity increases the quantity by q. The purchase price is unchanged.
func (h *Holding) AddQuantity(q decimal.Decimal) { h.quantity = h.quantity.Add(q) }

// CurrentValue is quantity × current price.
func (h *Holding) CurrentValue() decimal.Decimal { return h.quantity.Mul(h.currentPrice) }

// InitialValue is quantity × purchase price.
func (h *Holding) InitialValue() decimal.Decimal { return h.quantity.Mul(h.purchasePrice) }

// GainLoss is the current value minus the initial value.
func (h *Holding) GainLoss() decimal.Decimal { return h.CurrentValue().Sub(h.InitialValue()) }

// GainLossPct is the gain relative to the initial value, 0 if the initial value is 0.
func (h *Holding) GainLossPct() Percent { return ratio(h.GainLoss(), h.InitialValue()) }

// Clone returns a copy of h.
func (h *Holding) Clone() *Holding {
	c := *h
	return &c
}

// Equal reports whether h and x hold the same values.
func (h *Holding) Equal(x *Holding) bool {
	return h.symbol == x.symbol &&
		h.name == x.name &&
		h.kind == x.kind &&
		h.quantity.Equal(x.quantity) &&
		h.purchasePrice.Equal(x.purchasePrice) &&
		h.currentPrice.Equal(x.currentPrice) &&
		h.purchaseDate == x.purchaseDate
}
