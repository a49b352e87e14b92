// Package fintrack maintains a personal ledger of financial transactions and an
// investment portfolio, and persists both to plain, line-oriented files.
//
// The core functionalities include:
//   - Ledger Management: recording income, expense, investment and withdrawal
//     entries, each identified by an integer id assigned by the Store.
//   - Portfolio Management: holdings with a fixed cost basis and a live price,
//     valuation, gain/loss and diversification by asset kind.
//   - Market Simulation: a random walk on current prices driven by an injected
//     MarketMover, so that runs can be reproduced.
//   - Data Persistence: encoding and decoding entries and holdings to and from
//     comma-separated files that stay readable and diffable. Loading skips
//     malformed lines instead of aborting.
//
// The Store is the top-level owner of entries and of the Portfolio. It is the
// boundary used by the `ft` command-line tool.
package fintrack
