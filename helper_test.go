package fintrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/rs/zerolog"
)

// day is the fixed date used by test stores.
var day = date.New(3, 8, 2025)

// newTestStore returns a store backed by two files in a temp directory, with a fixed clock.
func newTestStore(t *testing.T, opts ...Option) (*Store, LoadReport) {
	t.Helper()
	dir := t.TempDir()
	opts = append([]Option{WithLogger(zerolog.Nop()), WithClock(func() date.Date { return day })}, opts...)
	return Open(filepath.Join(dir, DefaultLedgerFile), filepath.Join(dir, DefaultPortfolioFile), opts...)
}

// reopen returns a new store loading the files of s.
func reopen(t *testing.T, s *Store) (*Store, LoadReport) {
	t.Helper()
	return Open(s.LedgerFile(), s.PortfolioFile(), WithLogger(zerolog.Nop()), WithClock(func() date.Date { return day }))
}

// writeTestFile writes content to name, failing the test on error.
func writeTestFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write %q: %v", name, err)
	}
}

// readTestFile returns the content of name, failing the test on error.
func readTestFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("cannot read %q: %v", name, err)
	}
	return string(b)
}
