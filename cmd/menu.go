package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type menuCmd struct {
	seed uint64
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu" }
func (*menuCmd) Usage() string {
	return `ft menu [-seed <n>]

  Runs the interactive menu: add transactions and investments, view the ledger, the
  portfolio and the summary, simulate market moves. Data is saved on exit, and when
  the input ends.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", 0, "Seed of the simulated market moves. 0 uses the current time.")
}

var menuChoices = []string{
	"Add Transaction",
	"Add Investment",
	"View Transactions",
	"View Portfolio",
	"View Financial Summary",
	"Update Market Prices",
	"Save & Exit",
}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !checkCurrency() {
		return subcommands.ExitUsageError
	}
	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s, ok := openForUpdate()
	if !ok {
		return subcommands.ExitFailure
	}
	m := &menu{
		store: s,
		mover: fintrack.NewRandomMover(seed),
		in:    bufio.NewScanner(stdin),
	}
	m.run()
	fmt.Fprintln(stdout, "Saving data and exiting...")
	return save(s)
}

// menu is one interactive session over a store.
type menu struct {
	store *fintrack.Store
	mover fintrack.MarketMover
	in    *bufio.Scanner
}

// run loops until the user exits or the input ends.
func (m *menu) run() {
	for {
		fmt.Fprintln(stdout, "\n=== Personal Finance & Investment Tracker ===")
		choice, ok := m.choose("Enter your choice", menuChoices)
		if !ok {
			return
		}
		switch choice {
		case 0:
			if !m.addTransaction() {
				return
			}
		case 1:
			if !m.addInvestment() {
				return
			}
		case 2:
			printMarkdown(renderer.Transactions(m.store.Entries(), Currency()))
		case 3:
			printMarkdown(renderer.Portfolio(m.store.Portfolio(), Currency()))
		case 4:
			printMarkdown(renderer.Summary(m.store.Summary(), Currency()))
		case 5:
			m.store.SimulateMarketMove(m.mover)
			fmt.Fprintln(stdout, "Market prices updated!")
		case 6:
			return
		}
	}
}

func (m *menu) addTransaction() bool {
	description, ok := m.ask("Enter transaction description")
	if !ok {
		return false
	}
	amount, ok := m.askAmount("Enter amount")
	if !ok {
		return false
	}
	kinds := fintrack.Kinds()
	k, ok := m.choose("Select type", names(kinds))
	if !ok {
		return false
	}
	category := fintrack.Other
	if kinds[k] == fintrack.Expense {
		categories := fintrack.Categories()
		c, ok := m.choose("Select category", names(categories))
		if !ok {
			return false
		}
		category = categories[c]
	}
	e := m.store.RecordTransaction(description, amount, kinds[k], category)
	fmt.Fprintf(stdout, "Transaction #%d added successfully!\n", e.ID())
	return true
}

func (m *menu) addInvestment() bool {
	symbol, ok := m.ask("Enter investment symbol")
	if !ok {
		return false
	}
	name, ok := m.ask("Enter investment name")
	if !ok {
		return false
	}
	kinds := fintrack.AssetKinds()
	k, ok := m.choose("Select type", names(kinds))
	if !ok {
		return false
	}
	quantity, ok := m.askAmount("Enter quantity")
	if !ok {
		return false
	}
	price, ok := m.askAmount("Enter purchase price per unit")
	if !ok {
		return false
	}
	m.store.RecordPurchase(symbol, name, kinds[k], quantity, price)
	fmt.Fprintln(stdout, "Investment added successfully!")
	return true
}

// ask prompts for one line of input. It returns false when the input ends.
func (m *menu) ask(prompt string) (string, bool) {
	fmt.Fprintf(stdout, "%s: ", prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// askAmount prompts until a valid decimal is entered.
func (m *menu) askAmount(prompt string) (decimal.Decimal, bool) {
	for {
		s, ok := m.ask(prompt)
		if !ok {
			return decimal.Zero, false
		}
		d, err := parseAmount("amount", s)
		if err == nil {
			return d, true
		}
		fmt.Fprintf(stdout, "Invalid amount %q. Please try again.\n", s)
	}
}

// choose prompts until one of the options is selected, by its 1-based number or its name.
func (m *menu) choose(prompt string, options []string) (int, bool) {
	var b strings.Builder
	for i, o := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o)
	}
	for {
		fmt.Fprint(stdout, b.String())
		s, ok := m.ask(prompt)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
			return n - 1, true
		}
		for i, o := range options {
			if strings.EqualFold(o, s) {
				return i, true
			}
		}
		fmt.Fprintln(stdout, "Invalid choice. Please try again.")
	}
}

func names[T fmt.Stringer](values []T) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = v.String()
	}
	return res
}
