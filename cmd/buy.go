package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

type buyCmd struct {
	symbol   string
	name     string
	kind     string
	quantity string
	price    string
	on       string
}

func (*buyCmd) Name() string { return "buy" }
func (*buyCmd) Synopsis() string {
	return "record an investment purchase in the portfolio and the ledger"
}
func (*buyCmd) Usage() string {
	return `ft buy -s <symbol> -n <name> [-k <asset kind>] -q <quantity> -p <price> [-on <D/M/Y>]

  Adds a holding to the portfolio and records the matching Investment
  transaction ("Investment: <symbol>", quantity x price) in the ledger.
  Asset kinds: Stock, Bond, "Mutual Fund", Crypto, ETF.

Usage Examples:
$ ft buy -s AAPL -n "Apple Inc." -q 10 -p 150
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the security.")
	f.StringVar(&c.name, "n", "", "Name of the security.")
	f.StringVar(&c.kind, "k", "stock", "Asset kind of the security.")
	f.StringVar(&c.quantity, "q", "", "Quantity bought.")
	f.StringVar(&c.price, "p", "", "Price per unit.")
	f.StringVar(&c.on, "on", "", "Date of the purchase (D/M/Y). Defaults to today.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s flag is required.")
		return subcommands.ExitUsageError
	}
	kind, err := fintrack.ParseAssetKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing asset kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := parseAmount("quantity", c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := parseAmount("price", c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	var on date.Date
	if set["on"] {
		if on, err = parseDate(c.on); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, ok := openForUpdate()
	if !ok {
		return subcommands.ExitFailure
	}
	var e fintrack.Entry
	if set["on"] {
		_, e = s.RecordPurchaseOn(on, c.symbol, c.name, kind, quantity, price)
	} else {
		_, e = s.RecordPurchase(c.symbol, c.name, kind, quantity, price)
	}
	if status := save(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Bought %s %s, recorded transaction #%d.\n", quantity, c.symbol, e.ID())
	return subcommands.ExitSuccess
}
