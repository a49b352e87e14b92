package fintrack

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Default file names, relative to the working directory.
const (
	DefaultLedgerFile    = "finance_data.csv"
	DefaultPortfolioFile = "portfolio_data.csv"
)

// LoadReport describes the outcome of a Load.
type LoadReport struct {
	Entries    int           // number of entries loaded
	Holdings   int           // number of holdings loaded
	Skipped    []*ParseError // malformed records, not loaded
	Unreadable []error       // files that exist but could not be read
}

// Err returns all problems of the report joined, or nil if everything was loaded.
func (r LoadReport) Err() error {
	errs := make([]error, 0, len(r.Skipped)+len(r.Unreadable))
	for _, e := range r.Skipped {
		errs = append(errs, e)
	}
	errs = append(errs, r.Unreadable...)
	return errors.Join(errs...)
}

// Open returns a store backed by the two files, and loads them.
//
// Missing files are empty. Nothing that Load encounters is fatal: the report tells
// what was not loaded.
func Open(ledgerFile, portfolioFile string, opts ...Option) (*Store, LoadReport) {
	s := New(opts...)
	s.ledgerFile = ledgerFile
	s.portfolioFile = portfolioFile
	return s, s.Load()
}

// Load replaces the content of the store with the content of its files.
//
// The id counter never goes backward: the next id is after every loaded id and after
// every id already assigned by this store.
func (s *Store) Load() LoadReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report LoadReport
	s.entries = nil
	s.portfolio = NewPortfolio(s.portfolio.name)

	if s.ledgerFile != "" {
		err := readFile(s.ledgerFile, func(r io.Reader) error {
			entries, skipped, err := DecodeLedger(s.ledgerFile, r)
			s.entries = entries
			report.Skipped = append(report.Skipped, skipped...)
			return err
		})
		if err != nil {
			report.Unreadable = append(report.Unreadable, err)
		}
	}
	if s.portfolioFile != "" {
		err := readFile(s.portfolioFile, func(r io.Reader) error {
			p, skipped, err := DecodePortfolio(s.portfolio.name, s.portfolioFile, r)
			if p != nil {
				s.portfolio = p
			}
			report.Skipped = append(report.Skipped, skipped...)
			return err
		})
		if err != nil {
			report.Unreadable = append(report.Unreadable, err)
		}
	}

	for _, e := range s.entries {
		if e.id >= s.nextID {
			s.nextID = e.id + 1
		}
	}
	report.Entries = len(s.entries)
	report.Holdings = s.portfolio.Len()

	for _, perr := range report.Skipped {
		s.logger.Warn().Err(perr.Err).Str("file", perr.File).Int("line", perr.Line).Str("field", perr.Field).Msg("skipped malformed record")
	}
	for _, err := range report.Unreadable {
		s.logger.Error().Err(err).Msg("could not load file, treated as empty")
	}
	s.logger.Debug().Int("entries", report.Entries).Int("holdings", report.Holdings).Int("skipped", len(report.Skipped)).Msg("loaded")
	return report
}

// readFile calls decode with the content of name. A missing file is not an error
// and decode is not called.
func readFile(name string, decode func(io.Reader) error) error {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", name, err)
	}
	defer f.Close()
	return decode(f)
}

// writeFile replaces name with what encode writes.
//
// The content is written to a temporary file in the same directory, then renamed over
// name, so that name is either the old or the new content.
func writeFile(name string, encode func(io.Writer) error) (err error) {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %q: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", name, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	if err := os.Rename(f.Name(), name); err != nil {
		return fmt.Errorf("cannot replace %q: %w", name, err)
	}
	return nil
}
