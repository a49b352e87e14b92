package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type topupCmd struct {
	symbol   string
	quantity string
}

func (*topupCmd) Name() string     { return "topup" }
func (*topupCmd) Synopsis() string { return "add units to an existing holding" }
func (*topupCmd) Usage() string {
	return `ft topup -s <symbol> -q <quantity>

  Adds units to the first holding of the symbol. The purchase price is unchanged and
  no transaction is recorded.
`
}

func (c *topupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the holding.")
	f.StringVar(&c.quantity, "q", "", "Quantity to add (may be negative).")
}

func (c *topupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := parseAmount("quantity", c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, ok := openForUpdate()
	if !ok {
		return subcommands.ExitFailure
	}
	if err := s.AddQuantity(c.symbol, quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(s)
}
