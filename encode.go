package fintrack

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the shared part of the persistence format of ledgers and portfolios.
//
// Both files are line oriented: one record per line, fields separated by commas, no header.
// Text fields are quoted (RFC 4180) only when they contain a comma, a quote or a line
// break, so that plain records look exactly like the historical unquoted format.
//
// The overall strategy to decode a file is as follow:
//   read all physical lines, then group them into records (a quoted field may span several
//   lines), then split each record into fields. A record that is not valid CSV is split on
//   every comma, as the historical writer never quoted anything. Each record is then decoded
//   on its own, so that a malformed record never prevents the others from loading.

// fileLine is a record from a persisted file, with its position for error messages.
type fileLine struct {
	i      int // line number of the first physical line
	fields []string
}

// decodeLines reads all records from r, want is the number of fields of a record.
// Blank lines are skipped.
//
// A line ending inside a quoted field is merged with the following lines only if the
// merged text is a valid record of at least want fields. Otherwise the line stands alone,
// so that a stray quote never swallows the records after it.
func decodeLines(r io.Reader, want int) ([]fileLine, error) {
	var physical []string
	br := bufio.NewReader(r)
	for {
		txt, err := br.ReadString('\n')
		if len(txt) > 0 || err == nil {
			txt = strings.TrimSuffix(txt, "\n")
			txt = strings.TrimSuffix(txt, "\r")
			physical = append(physical, txt)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read line %d: %w", len(physical)+1, err)
		}
	}

	var list []fileLine
	for i := 0; i < len(physical); {
		txt, j := physical[i], i+1
		if openQuote(txt) {
			merged, k := txt, j
			for openQuote(merged) && k < len(physical) {
				merged += "\n" + physical[k]
				k++
			}
			if fields, ok := csvRecord(merged); ok && len(fields) >= want {
				txt, j = merged, k
			}
		}
		if strings.TrimSpace(txt) != "" {
			list = append(list, fileLine{i: i + 1, fields: splitRecord(txt)})
		}
		i = j
	}
	return list, nil
}

// openQuote reports whether txt ends inside a quoted field.
func openQuote(txt string) bool {
	quoted, start := false, true
	for i := 0; i < len(txt); i++ {
		c := txt[i]
		if quoted {
			if c == '"' {
				if i+1 < len(txt) && txt[i+1] == '"' {
					i++
				} else {
					quoted = false
				}
			}
			continue
		}
		if c == '"' && start {
			quoted = true
		}
		start = c == ','
	}
	return quoted
}

// splitRecord splits a single record into fields.
func splitRecord(txt string) []string {
	if fields, ok := csvRecord(txt); ok {
		return fields
	}
	// not CSV, so it was written unquoted.
	return strings.Split(txt, ",")
}

// csvRecord parses txt as exactly one CSV record.
func csvRecord(txt string) ([]string, bool) {
	if openQuote(txt) {
		return nil, false
	}
	r := csv.NewReader(strings.NewReader(txt))
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return nil, false
	}
	if _, err := r.Read(); err != io.EOF {
		return nil, false
	}
	return fields, true
}

// encodeRecord formats fields as a single record, without the line terminator.
func encodeRecord(fields ...string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	// strings.Builder never fails, and fields are never empty records.
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// writeRecords writes records, one per line.
func writeRecords(w io.Writer, records []string) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(rec); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// rejoin recovers a text field containing commas from a legacy unquoted record.
//
// fields has at least want fields. The text field at index pos absorbs the surplus
// fields, all other fields are numeric and contain no comma.
func rejoin(fields []string, want, pos int) []string {
	n := len(fields)
	if n <= want {
		return fields
	}
	surplus := n - want
	res := make([]string, 0, want)
	res = append(res, fields[:pos]...)
	res = append(res, strings.Join(fields[pos:pos+surplus+1], ","))
	res = append(res, fields[pos+surplus+1:]...)
	return res
}

func parseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fieldError(field, fmt.Errorf("%w: %q is not an integer", ErrInvalidField, s))
	}
	return v, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fieldError(field, fmt.Errorf("%w: %q is not a number", ErrInvalidField, s))
	}
	return v, nil
}

func parseOrdinal(field, s string, count int) (int, error) {
	v, err := parseInt(field, s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= count {
		return 0, fieldError(field, fmt.Errorf("%w: %d", ErrUnknownOrdinal, v))
	}
	return v, nil
}

// atLine adds the position of l to a decoding error.
func atLine(file string, l fileLine, err error) *ParseError {
	var perr *ParseError
	if !errors.As(err, &perr) {
		perr = &ParseError{Err: err}
	}
	perr.File, perr.Line = file, l.i
	return perr
}
