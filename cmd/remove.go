package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type removeCmd struct {
	symbol string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*removeCmd) Usage() string {
	return `ft remove -s <symbol>

  Removes the first holding of the symbol. Ledger transactions are kept.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the holding.")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ok := openForUpdate()
	if !ok {
		return subcommands.ExitFailure
	}
	if !s.RemoveHolding(c.symbol) {
		fmt.Fprintf(os.Stderr, "Error removing holding %q: %v\n", c.symbol, fintrack.ErrNotFound)
		return subcommands.ExitFailure
	}
	return save(s)
}
