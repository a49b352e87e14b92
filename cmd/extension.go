package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	EnvLedgerFile    = "FT_LEDGER_FILE"
	EnvPortfolioFile = "FT_PORTFOLIO_FILE"
	EnvCurrency      = "FT_CURRENCY"
	EnvLogLevel      = "FT_LOG_LEVEL"
)

// ExtensionEnv returns the environment passed to extensions: the current one plus the
// resolved global flags.
func ExtensionEnv() []string {
	return append(os.Environ(),
		EnvLedgerFile+"="+LedgerFile(),
		EnvPortfolioFile+"="+PortfolioFile(),
		EnvCurrency+"="+Currency(),
		EnvLogLevel+"="+valueOf(*logLevel, EnvLogLevel, "warn"),
	)
}

// RunExtension attempts to find and execute an external ft-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ft-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = ExtensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
