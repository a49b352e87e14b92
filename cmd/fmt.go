package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger and portfolio files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `ft fmt [-check]

  Reads both files, reports every record that cannot be decoded, and writes the
  remaining records back in canonical form: fields quoted only when needed, one
  record per line. Skipped records are dropped from the rewritten files.
  With -check, nothing is written and the exit status tells whether records were skipped.

Usage Examples:
$ ft fmt
$ ft -ledger-file old.csv fmt -check
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.check, "check", false, "Only report records that cannot be decoded.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, report := OpenStore()
	if unreadable(report) {
		return subcommands.ExitFailure
	}
	for _, perr := range report.Skipped {
		fmt.Fprintf(os.Stderr, "Skipped: %v\n", perr)
	}
	if p.check {
		if len(report.Skipped) > 0 {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if status := save(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(os.Stderr, "Formatted %d transactions and %d holdings, skipped %d records.\n",
		report.Entries, report.Holdings, len(report.Skipped))
	return subcommands.ExitSuccess
}
