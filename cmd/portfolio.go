package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the holdings of the portfolio" }
func (*portfolioCmd) Usage() string {
	return `ft portfolio

  Displays every holding with its value and gain or loss, the portfolio totals and
  the diversification by asset kind.
`
}

func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (*portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !checkCurrency() {
		return subcommands.ExitUsageError
	}
	s, _ := OpenStore()
	printMarkdown(renderer.Portfolio(s.Portfolio(), Currency()))
	return subcommands.ExitSuccess
}
