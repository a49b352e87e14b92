package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct {
	seed uint64
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "simulate a market move on every holding" }
func (*marketCmd) Usage() string {
	return `ft market [-seed <n>]

  Moves the current price of every holding by a random amount between -5% and +5%,
  saves the portfolio and prints it. The same seed always produces the same moves.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", 0, "Seed of the random moves. 0 uses the current time.")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	s.SimulateMarketMove(fintrack.NewRandomMover(seed))
	if status := save(s); status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.Portfolio(s.Portfolio(), Currency()))
	return subcommands.ExitSuccess
}
