// Command ft tracks personal finances: a ledger of transactions and an investment
// portfolio, stored in two flat files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/etnz/fintrack/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}
	cmd.Completion(flag.CommandLine).Complete("ft")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func known(name string) bool {
	names := []string{"help", "flags", "commands"}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	return slices.Contains(names, name)
}
