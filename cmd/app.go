// Package cmd implements the ft command line tool, one subcommand per operation of the
// ledger store.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// Commands returns a fresh instance of every ft subcommand.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&buyCmd{},
		&topupCmd{},
		&priceCmd{},
		&removeCmd{},
		&editCmd{},
		&marketCmd{},
		&txCmd{},
		&portfolioCmd{},
		&summaryCmd{},
		&exportCmd{},
		&queryCmd{},
		&fmtCmd{},
		&menuCmd{},
	}
}

var groups = map[string]string{
	"add":       "ledger",
	"edit":      "ledger",
	"tx":        "ledger",
	"buy":       "portfolio",
	"topup":     "portfolio",
	"price":     "portfolio",
	"remove":    "portfolio",
	"market":    "portfolio",
	"portfolio": "portfolio",
	"summary":   "reports",
	"export":    "reports",
	"query":     "reports",
	"fmt":       "files",
	"menu":      "",
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Empty values fall back to the environment, then to the defaults.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file. Defaults to $"+EnvLedgerFile+" or "+fintrack.DefaultLedgerFile)
var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file. Defaults to $"+EnvPortfolioFile+" or "+fintrack.DefaultPortfolioFile)
var currency = flag.String("currency", "", "Reporting currency (ISO 4217). Defaults to $"+EnvCurrency+" or "+renderer.DefaultCurrency)
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Defaults to $"+EnvLogLevel+" or warn")
var raw = flag.Bool("raw", false, "Print reports as plain markdown instead of rendering them for the terminal")

// stdout and stdin are swapped by tests.
var stdout io.Writer = os.Stdout
var stdin io.Reader = os.Stdin

// LoadEnv reads the .env file of the working directory, if any, into the environment.
// Variables already set are kept.
func LoadEnv() error {
	err := godotenv.Load(".env")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func valueOf(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// LedgerFile returns the path of the ledger file in use.
func LedgerFile() string { return valueOf(*ledgerFile, EnvLedgerFile, fintrack.DefaultLedgerFile) }

// PortfolioFile returns the path of the portfolio file in use.
func PortfolioFile() string {
	return valueOf(*portfolioFile, EnvPortfolioFile, fintrack.DefaultPortfolioFile)
}

// Currency returns the reporting currency code.
func Currency() string {
	return strings.ToUpper(valueOf(*currency, EnvCurrency, renderer.DefaultCurrency))
}

// Logger returns the logger configured by the -log-level flag.
func Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(valueOf(*logLevel, EnvLogLevel, "warn"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// OpenStore loads the ledger and portfolio files.
func OpenStore() (*fintrack.Store, fintrack.LoadReport) {
	return fintrack.Open(LedgerFile(), PortfolioFile(), fintrack.WithLogger(Logger()))
}

// openForUpdate loads the store for a command that saves it.
// Files that exist but cannot be read are reported and the command must stop, saving
// would replace them with what little was loaded.
func openForUpdate() (*fintrack.Store, bool) {
	s, report := OpenStore()
	return s, !unreadable(report)
}

// unreadable prints the files of report that could not be read, and reports whether there were any.
func unreadable(report fintrack.LoadReport) bool {
	for _, err := range report.Unreadable {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return len(report.Unreadable) > 0
}

// checkCurrency validates the reporting currency before anything is printed.
func checkCurrency() bool {
	if !renderer.KnownCurrency(Currency()) {
		fmt.Fprintf(os.Stderr, "Error: unknown currency %q\n", Currency())
		return false
	}
	return true
}

// save writes the store back and turns the outcome into an exit status.
func save(s *fintrack.Store) subcommands.ExitStatus {
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
