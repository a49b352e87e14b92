package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	html bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial summary" }
func (*summaryCmd) Usage() string {
	return `ft summary [-html]

  Displays the totals by kind of transaction, the portfolio value and gain or loss,
  the net worth, the expenses by category and the diversification.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Print the summary as an HTML fragment.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !checkCurrency() {
		return subcommands.ExitUsageError
	}
	s, _ := OpenStore()
	md := renderer.Summary(s.Summary(), Currency())
	if !c.html {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	html, err := renderer.HTML(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, html)
	return subcommands.ExitSuccess
}
