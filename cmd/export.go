package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	compact bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the ledger, the portfolio and the summary as JSON" }
func (*exportCmd) Usage() string {
	return `ft export [-compact]

  Prints a JSON document with the summary fields, the entries, the holdings and the
  positions. Amounts are JSON numbers.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "compact", false, "Print the document on a single line.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _ := OpenStore()
	if err := printJSON(s.Document(), c.compact); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printJSON(v any, compact bool) error {
	enc := json.NewEncoder(stdout)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
