package fintrack

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, to be tested with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrNoFiles        = errors.New("store has no files to save to")
	ErrFieldCount     = errors.New("wrong number of fields")
	ErrInvalidField   = errors.New("invalid field")
	ErrUnknownOrdinal = errors.New("unknown ordinal")
)

// ParseError reports a malformed record found while decoding a ledger or a
// portfolio file.
type ParseError struct {
	File  string // empty when decoding a single line
	Line  int    // 1-based, 0 when unknown
	Field string // name of the offending field, if any
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteByte(':')
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:", e.Line)
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("parse error")
	if e.Field != "" {
		fmt.Fprintf(&b, " in field %q", e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// fieldError returns a ParseError for the named field.
func fieldError(field string, err error) *ParseError {
	return &ParseError{Field: field, Err: err}
}
