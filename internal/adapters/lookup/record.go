package lookup

import (
	"encoding/json"
	"strconv"
)

// Record is one result object
type Record map[string]any

// Result is the decoded response array; it may be empty
type Result []Record

// First returns the best match, false when empty
func (r Result) First() (Record, bool) {
	if len(r) == 0 {
		return nil, false
	}
	return r[0], true
}

// String renders field as text; absent, null, blank and nested values read as missing
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, x != ""
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}
