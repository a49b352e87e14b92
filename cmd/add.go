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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	description string
	amount      string
	kind        string
	category    string
	on          string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction in the ledger" }
func (*addCmd) Usage() string {
	return `ft add -d <description> -a <amount> [-k <kind>] [-c <category>] [-on <D/M/Y>]

  Records a transaction with the next id and saves the ledger.
  Kinds: Income, Expense, Investment, Withdrawal.
  Categories: Food, Transport, Utilities, Entertainment, Healthcare, Education, Other.

Usage Examples:
$ ft add -d "Salary" -a 50000 -k income
$ ft add -d "Groceries" -a 1200.50 -c food -on 2/8/2025
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the transaction.")
	f.StringVar(&c.amount, "a", "", "Amount of the transaction.")
	f.StringVar(&c.kind, "k", "expense", "Kind of the transaction.")
	f.StringVar(&c.category, "c", "other", "Category of the transaction.")
	f.StringVar(&c.on, "on", "", "Date of the transaction (D/M/Y). Defaults to today.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := fintrack.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := fintrack.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing category: %v\n", err)
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
		e = s.RecordTransactionOn(on, c.description, amount, kind, category)
	} else {
		e = s.RecordTransaction(c.description, amount, kind, category)
	}
	if status := save(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Recorded transaction #%d.\n", e.ID())
	return subcommands.ExitSuccess
}
