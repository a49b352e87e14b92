package fintrack

import (
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bounds applied to a simulated price move.
const (
	MaxMove        = 0.05 // largest relative change, up or down
	PricePrecision = 6    // decimal places kept on a moved price
)

// MinPrice is the floor of a moved price.
var MinPrice = decimal.New(1, -2)

// MarketMover is a source of relative price changes, one per holding.
// A draw of 0.01 means +1%.
type MarketMover interface {
	Move() float64
}

// MoverFunc adapts a function to a MarketMover.
type MoverFunc func() float64

func (f MoverFunc) Move() float64 { return f() }

// randomMover draws uniform moves.
type randomMover struct {
	dist distuv.Uniform
}

func (m *randomMover) Move() float64 { return m.dist.Rand() }

// NewRandomMover returns a mover drawing uniformly in [-MaxMove, MaxMove).
// Two movers built with the same seed draw the same sequence.
func NewRandomMover(seed uint64) MarketMover {
	return &randomMover{
		dist: distuv.Uniform{
			Min: -MaxMove,
			Max: MaxMove,
			Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		},
	}
}

// sequence cycles through a fixed list of moves.
type sequence struct {
	moves []float64
	next  int
}

func (s *sequence) Move() float64 {
	if len(s.moves) == 0 {
		return 0
	}
	v := s.moves[s.next%len(s.moves)]
	s.next++
	return v
}

// Moves returns a mover that returns values in order, cycling when exhausted.
// Without values it always returns 0.
func Moves(values ...float64) MarketMover {
	return &sequence{moves: values}
}

// Move returns price changed by the relative move p.
//
// p is clamped to [-MaxMove, MaxMove], NaN counts as no move. The result is
// rounded toward price to PricePrecision decimal places, so it stays within
// [price×(1-MaxMove), price×(1+MaxMove)], and never goes below MinPrice.
func Move(price decimal.Decimal, p float64) decimal.Decimal {
	switch {
	case math.IsNaN(p):
		p = 0
	case p > MaxMove:
		p = MaxMove
	case p < -MaxMove:
		p = -MaxMove
	}
	v := price.Mul(decimal.NewFromFloat(1 + p))
	switch {
	case p > 0:
		v = v.RoundFloor(PricePrecision)
	case p < 0:
		v = v.RoundCeil(PricePrecision)
	}
	if v.LessThan(MinPrice) {
		return MinPrice
	}
	return v
}
