package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	kind string
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `ft tx [-k <kind>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "", "Show only transactions of this kind.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	accept := func(fintrack.Entry) bool { return true }
	if p.kind != "" {
		kind, err := fintrack.ParseKind(p.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
			return subcommands.ExitUsageError
		}
		accept = func(e fintrack.Entry) bool { return e.Kind() == kind }
	}
	if !checkCurrency() {
		return subcommands.ExitUsageError
	}

	s, _ := OpenStore()
	var entries []fintrack.Entry
	for _, e := range s.Entries() {
		if accept(e) {
			entries = append(entries, e)
		}
	}

	if p.head > 0 && len(entries) > p.head {
		entries = entries[:p.head]
	}
	if p.tail > 0 && len(entries) > p.tail {
		entries = entries[len(entries)-p.tail:]
	}

	printMarkdown(renderer.Transactions(entries, Currency()))
	return subcommands.ExitSuccess
}
