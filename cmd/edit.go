package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	id          int
	description string
	amount      string
	category    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a transaction of the ledger" }
func (*editCmd) Usage() string {
	return `ft edit -id <id> [-d <description>] [-a <amount>] [-c <category>]

  Changes the description, amount or category of a transaction. Only the flags
  given on the command line are applied. Id, date and kind cannot be changed.

Usage Examples:
$ ft edit -id 3 -a 45.20 -c transport
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to edit.")
	f.StringVar(&c.description, "d", "", "New description.")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.category, "c", "", "New category.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["id"] {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	var amount decimal.Decimal
	if set["a"] {
		var err error
		if amount, err = parseAmount("amount", c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var category fintrack.Category
	if set["c"] {
		var err error
		if category, err = fintrack.ParseCategory(c.category); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing category: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, ok := openForUpdate()
	if !ok {
		return subcommands.ExitFailure
	}
	e, err := s.EditEntry(c.id, func(e *fintrack.Entry) {
		if set["d"] {
			e.SetDescription(c.description)
		}
		if set["a"] {
			e.SetAmount(amount)
		}
		if set["c"] {
			e.SetCategory(category)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := save(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Updated %s\n", e)
	return subcommands.ExitSuccess
}
