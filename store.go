package fintrack

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/etnz/fintrack/date"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultPortfolioName is the name of the portfolio of a Store, unless WithPortfolioName is used.
const DefaultPortfolioName = "My Portfolio"

// Store owns the ledger entries and the portfolio, and the files they persist to.
//
// Ids of entries are assigned by the Store: they start at 1 and strictly increase, even
// across a Load, so that a new entry never reuses the id of a persisted one.
//
// It is guarded by an RWMutex. Accessors return copies, mutation only happens through
// the Store methods.
type Store struct {
	mu            sync.RWMutex
	ledgerFile    string
	portfolioFile string
	entries       []Entry
	portfolio     *Portfolio
	nextID        int
	logger        zerolog.Logger
	today         func() date.Date
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock sets the source of the current date used by RecordTransaction and RecordPurchase.
func WithClock(today func() date.Date) Option {
	return func(s *Store) { s.today = today }
}

// WithPortfolioName sets the name of the portfolio.
func WithPortfolioName(name string) Option {
	return func(s *Store) { s.portfolio.name = name }
}

// New returns an empty store with no files. Its Save always fails with ErrNoFiles.
func New(opts ...Option) *Store {
	s := &Store{
		portfolio: NewPortfolio(DefaultPortfolioName),
		nextID:    1,
		logger:    log.Logger,
		today:     date.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LedgerFile returns the path to the ledger file.
func (s *Store) LedgerFile() string { return s.ledgerFile }

// PortfolioFile returns the path to the portfolio file.
func (s *Store) PortfolioFile() string { return s.portfolioFile }

// RecordTransaction appends a new entry dated today, and returns it.
func (s *Store) RecordTransaction(description string, amount decimal.Decimal, kind Kind, category Category) Entry {
	return s.RecordTransactionOn(s.today(), description, amount, kind, category)
}

// RecordTransactionOn appends a new entry dated on, and returns it.
func (s *Store) RecordTransactionOn(on date.Date, description string, amount decimal.Decimal, kind Kind, category Category) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(on, description, amount, kind, category)
}

func (s *Store) appendLocked(on date.Date, description string, amount decimal.Decimal, kind Kind, category Category) Entry {
	e := NewEntry(s.nextID, description, amount, kind, category, on)
	s.nextID++
	s.entries = append(s.entries, e)
	return e
}

// RecordPurchase adds a new holding bought today, and records the matching
// Investment entry "Investment: <symbol>" of quantity × price.
func (s *Store) RecordPurchase(symbol, name string, kind AssetKind, quantity, price decimal.Decimal) (*Holding, Entry) {
	return s.RecordPurchaseOn(s.today(), symbol, name, kind, quantity, price)
}

// RecordPurchaseOn is like RecordPurchase for a purchase made on a given day.
func (s *Store) RecordPurchaseOn(on date.Date, symbol, name string, kind AssetKind, quantity, price decimal.Decimal) (*Holding, Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := NewHolding(symbol, name, kind, quantity, price, on)
	s.portfolio.Add(h)
	e := s.appendLocked(on, "Investment: "+symbol, quantity.Mul(price), Investment, Other)
	return h.Clone(), e
}

// EditEntry applies edit to the entry with the given id.
// Only description, amount and category can be changed, other changes are ignored.
func (s *Store) EditEntry(id int, edit func(*Entry)) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("entry #%d: %w", id, ErrNotFound)
	}
	e := s.entries[i]
	edit(&e)
	s.entries[i].SetDescription(e.description)
	s.entries[i].SetAmount(e.amount)
	s.entries[i].SetCategory(e.category)
	return s.entries[i], nil
}

func (s *Store) indexLocked(id int) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.id == id })
}

// AddQuantity adds q to the first holding of symbol.
func (s *Store) AddQuantity(symbol string, q decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.portfolio.Find(symbol)
	if !ok {
		return fmt.Errorf("holding %q: %w", symbol, ErrNotFound)
	}
	h.AddQuantity(q)
	return nil
}

// SetPrice sets the current price of the first holding of symbol.
func (s *Store) SetPrice(symbol string, p decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.portfolio.Find(symbol)
	if !ok {
		return fmt.Errorf("holding %q: %w", symbol, ErrNotFound)
	}
	h.SetCurrentPrice(p)
	return nil
}

// RemoveHolding removes the first holding of symbol and reports whether it existed.
// Ledger entries are never removed.
func (s *Store) RemoveHolding(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.Remove(symbol)
}

// SimulateMarketMove moves the current price of every holding, see Portfolio.SimulateMarketMove.
func (s *Store) SimulateMarketMove(mover MarketMover) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio.SimulateMarketMove(mover)
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Entry returns the entry with the given id.
func (s *Store) Entry(id int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("entry #%d: %w", id, ErrNotFound)
	}
	return s.entries[i], nil
}

// Holdings returns a copy of all holdings in insertion order.
func (s *Store) Holdings() []*Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]*Holding, 0, s.portfolio.Len())
	for h := range s.portfolio.Holdings() {
		res = append(res, h.Clone())
	}
	return res
}

// Holding returns a copy of the first holding of symbol.
func (s *Store) Holding(symbol string) (*Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.portfolio.Find(symbol)
	if !ok {
		return nil, fmt.Errorf("holding %q: %w", symbol, ErrNotFound)
	}
	return h.Clone(), nil
}

// Portfolio returns a deep copy of the portfolio.
func (s *Store) Portfolio() *Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio.Clone()
}

// NextID returns the id the next entry will get.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

func (s *Store) totalLocked(kind Kind) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.entries {
		if e.kind == kind {
			total = total.Add(e.amount)
		}
	}
	return total
}

func (s *Store) total(kind Kind) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalLocked(kind)
}

// TotalIncome is the sum of Income entries.
func (s *Store) TotalIncome() decimal.Decimal { return s.total(Income) }

// TotalExpenses is the sum of Expense entries.
func (s *Store) TotalExpenses() decimal.Decimal { return s.total(Expense) }

// TotalInvestments is the sum of Investment entries.
func (s *Store) TotalInvestments() decimal.Decimal { return s.total(Investment) }

// TotalWithdrawals is the sum of Withdrawal entries.
func (s *Store) TotalWithdrawals() decimal.Decimal { return s.total(Withdrawal) }

// NetWorth is income minus expenses plus the current value of the portfolio.
//
// Investment entries are not counted, the value they bought is in the portfolio.
// Withdrawals are not counted either.
func (s *Store) NetWorth() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.netWorthLocked()
}

func (s *Store) netWorthLocked() decimal.Decimal {
	return s.totalLocked(Income).Sub(s.totalLocked(Expense)).Add(s.portfolio.TotalValue())
}

// ExpenseByCategory sums Expense entries per category.
// Categories without expenses are absent.
func (s *Store) ExpenseByCategory() map[Category]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenseByCategoryLocked()
}

func (s *Store) expenseByCategoryLocked() map[Category]decimal.Decimal {
	res := make(map[Category]decimal.Decimal)
	for _, e := range s.entries {
		if e.kind == Expense {
			res[e.category] = res[e.category].Add(e.amount)
		}
	}
	return res
}

// Save writes the ledger and the portfolio to their files.
//
// Both files are attempted even if the first one fails. Each file is replaced as a
// whole, but the two files are not replaced together.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ledgerFile == "" && s.portfolioFile == "" {
		return ErrNoFiles
	}
	var errs []error
	if s.ledgerFile != "" {
		if err := writeFile(s.ledgerFile, func(w io.Writer) error { return EncodeLedger(w, s.entries) }); err != nil {
			s.logger.Error().Err(err).Str("file", s.ledgerFile).Msg("could not save ledger")
			errs = append(errs, err)
		}
	}
	if s.portfolioFile != "" {
		if err := writeFile(s.portfolioFile, func(w io.Writer) error { return EncodePortfolio(w, s.portfolio) }); err != nil {
			s.logger.Error().Err(err).Str("file", s.portfolioFile).Msg("could not save portfolio")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
