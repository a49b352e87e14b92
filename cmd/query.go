package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type queryCmd struct {
	first   bool
	compact bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the exported document" }
func (*queryCmd) Usage() string {
	return `ft query [-first] [-compact] <jsonpath>

  Evaluates a JSONPath expression against the document printed by 'ft export'
  and prints the result as JSON.

Usage Examples:
$ ft query '$.netWorth'
$ ft query '$.holdings[?(@.gainLoss < 0)].symbol'
$ ft query -first '$.entries[-1:]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.first, "first", false, "Print only the first element when the result is a list.")
	f.BoolVar(&c.compact, "compact", false, "Print the result on a single line.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	s, _ := OpenStore()
	jval, err := s.Document().Query(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.first {
		jval = fintrack.First(jval)
	}
	if err := printJSON(jval, c.compact); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
