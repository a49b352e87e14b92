package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type priceCmd struct {
	symbol string
	price  string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set the current price of a holding" }
func (*priceCmd) Usage() string {
	return `ft price -s <symbol> -p <price>

  Sets the current price of the first holding of the symbol.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the holding.")
	f.StringVar(&c.price, "p", "", "New current price.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := parseAmount("price", c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, ok := openForUpdate()
	if !ok {
		return subcommands.ExitFailure
	}
	if err := s.SetPrice(c.symbol, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(s)
}
