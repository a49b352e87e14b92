package fintrack

import (
	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Summary provides an at-a-glance overview of the ledger and the portfolio.
type Summary struct {
	Date              date.Date                    `json:"date"`
	PortfolioName     string                       `json:"portfolioName"`
	Income            decimal.Decimal              `json:"income"`
	Expenses          decimal.Decimal              `json:"expenses"`
	Investments       decimal.Decimal              `json:"investments"`
	Withdrawals       decimal.Decimal              `json:"withdrawals"`
	PortfolioValue    decimal.Decimal              `json:"portfolioValue"`
	InitialValue      decimal.Decimal              `json:"initialValue"`
	GainLoss          decimal.Decimal              `json:"gainLoss"`
	GainLossPct       Percent                      `json:"gainLossPct"`
	NetWorth          decimal.Decimal              `json:"netWorth"`
	ExpenseByCategory map[Category]decimal.Decimal `json:"expenseByCategory"`
	Diversification   map[AssetKind]Percent        `json:"diversification"`
}

// Summary computes the summary of the store as of today.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaryLocked()
}

func (s *Store) summaryLocked() Summary {
	p := s.portfolio
	return Summary{
		Date:              s.today(),
		PortfolioName:     p.Name(),
		Income:            s.totalLocked(Income),
		Expenses:          s.totalLocked(Expense),
		Investments:       s.totalLocked(Investment),
		Withdrawals:       s.totalLocked(Withdrawal),
		PortfolioValue:    p.TotalValue(),
		InitialValue:      p.TotalInitialValue(),
		GainLoss:          p.TotalGainLoss(),
		GainLossPct:       p.TotalGainLossPct(),
		NetWorth:          s.netWorthLocked(),
		ExpenseByCategory: s.expenseByCategoryLocked(),
		Diversification:   p.Diversification(),
	}
}
