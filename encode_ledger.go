package fintrack

import (
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/fintrack/date"
)

// ledgerFields is the number of fields of a ledger record:
// id, description, amount, day, month, year, kind, category.
const ledgerFields = 8

// EncodeEntry formats e as a single ledger record, without line terminator.
func EncodeEntry(e Entry) string {
	fields := []string{
		strconv.Itoa(e.id),
		e.description,
		e.amount.String(),
	}
	fields = append(fields, e.on.Fields()...)
	fields = append(fields, strconv.Itoa(int(e.kind)), strconv.Itoa(int(e.category)))
	return encodeRecord(fields...)
}

// DecodeEntry parses a single ledger record, as written by EncodeEntry.
//
// Unquoted records with commas in the description are accepted, the description is
// everything between the id and the amount.
// Errors are *ParseError.
func DecodeEntry(line string) (Entry, error) {
	return decodeEntryFields(splitRecord(line))
}

func decodeEntryFields(fields []string) (Entry, error) {
	if len(fields) < ledgerFields {
		return Entry{}, &ParseError{Err: fmt.Errorf("%w: ledger record has %d fields, want %d", ErrFieldCount, len(fields), ledgerFields)}
	}
	fields = rejoin(fields, ledgerFields, 1)

	id, err := parseInt("id", fields[0])
	if err != nil {
		return Entry{}, err
	}
	amount, err := parseDecimal("amount", fields[2])
	if err != nil {
		return Entry{}, err
	}
	on, err := date.FromFields(fields[3], fields[4], fields[5])
	if err != nil {
		return Entry{}, fieldError("date", fmt.Errorf("%w: %w", ErrInvalidField, err))
	}
	kind, err := parseOrdinal("kind", fields[6], len(kindNames))
	if err != nil {
		return Entry{}, err
	}
	category, err := parseOrdinal("category", fields[7], len(categoryNames))
	if err != nil {
		return Entry{}, err
	}
	return NewEntry(id, fields[1], amount, Kind(kind), Category(category), on), nil
}

// EncodeLedger writes entries to w, one record per line, in the given order.
func EncodeLedger(w io.Writer, entries []Entry) error {
	records := make([]string, len(entries))
	for i, e := range entries {
		records[i] = EncodeEntry(e)
	}
	if err := writeRecords(w, records); err != nil {
		return fmt.Errorf("could not write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads all entries from r.
//
// Malformed records are skipped and reported, they do not prevent the others from
// being decoded. filename is used in the reported errors only.
// The returned error is not nil only if r itself could not be read.
func DecodeLedger(filename string, r io.Reader) ([]Entry, []*ParseError, error) {
	lines, err := decodeLines(r, ledgerFields)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read ledger %q: %w", filename, err)
	}
	var entries []Entry
	var skipped []*ParseError
	for _, l := range lines {
		e, err := decodeEntryFields(l.fields)
		if err != nil {
			skipped = append(skipped, atLine(filename, l, err))
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}
