package fintrack

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression (e.g. "$.holdings[?(@.gainLoss < 0)].symbol")
// against the JSON form of the document.
func (d Document) Query(path string) (any, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("cannot encode document: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		return nil, fmt.Errorf("cannot decode document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return jval, nil
}

// First reduces a query result to its first element when it is a list.
// jsonpath returns either a single value or a list depending on the expression.
func First(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}
