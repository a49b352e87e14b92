package fintrack

import (
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/fintrack/date"
)

// holdingFields is the number of fields of a portfolio record:
// symbol, name, kind, quantity, purchase price, current price, day, month, year.
const holdingFields = 9

// EncodeHolding formats h as a single portfolio record, without line terminator.
func EncodeHolding(h *Holding) string {
	fields := []string{
		h.symbol,
		h.name,
		strconv.Itoa(int(h.kind)),
		h.quantity.String(),
		h.purchasePrice.String(),
		h.currentPrice.String(),
	}
	fields = append(fields, h.purchaseDate.Fields()...)
	return encodeRecord(fields...)
}

// DecodeHolding parses a single portfolio record, as written by EncodeHolding.
//
// Unquoted records with commas in the name are accepted, the name is everything
// between the symbol and the asset kind.
// Errors are *ParseError.
func DecodeHolding(line string) (*Holding, error) {
	return decodeHoldingFields(splitRecord(line))
}

func decodeHoldingFields(fields []string) (*Holding, error) {
	if len(fields) < holdingFields {
		return nil, &ParseError{Err: fmt.Errorf("%w: portfolio record has %d fields, want %d", ErrFieldCount, len(fields), holdingFields)}
	}
	fields = rejoin(fields, holdingFields, 1)

	kind, err := parseOrdinal("kind", fields[2], len(assetKindNames))
	if err != nil {
		return nil, err
	}
	quantity, err := parseDecimal("quantity", fields[3])
	if err != nil {
		return nil, err
	}
	purchasePrice, err := parseDecimal("purchasePrice", fields[4])
	if err != nil {
		return nil, err
	}
	currentPrice, err := parseDecimal("currentPrice", fields[5])
	if err != nil {
		return nil, err
	}
	on, err := date.FromFields(fields[6], fields[7], fields[8])
	if err != nil {
		return nil, fieldError("date", fmt.Errorf("%w: %w", ErrInvalidField, err))
	}
	h := NewHolding(fields[0], fields[1], AssetKind(kind), quantity, purchasePrice, on)
	h.currentPrice = currentPrice
	return h, nil
}

// EncodePortfolio writes the holdings of p to w, one record per line, in order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	records := make([]string, 0, p.Len())
	for h := range p.Holdings() {
		records = append(records, EncodeHolding(h))
	}
	if err := writeRecords(w, records); err != nil {
		return fmt.Errorf("could not write portfolio %q: %w", p.Name(), err)
	}
	return nil
}

// DecodePortfolio reads all holdings from r into a new portfolio with the given name.
//
// Like DecodeLedger, malformed records are skipped and reported.
func DecodePortfolio(name, filename string, r io.Reader) (*Portfolio, []*ParseError, error) {
	lines, err := decodeLines(r, holdingFields)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read portfolio %q: %w", filename, err)
	}
	p := NewPortfolio(name)
	var skipped []*ParseError
	for _, l := range lines {
		h, err := decodeHoldingFields(l.fields)
		if err != nil {
			skipped = append(skipped, atLine(filename, l, err))
			continue
		}
		p.Add(h)
	}
	return p, skipped, nil
}
