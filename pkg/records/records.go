// Package records defines the row representation shared by the spreadsheet
// parsers and the transform engine.
//
// A Record is one parsed row keyed by source column header, verbatim as the
// upload provided it. Parsers do not normalize header case or whitespace;
// lookups downstream must match headers exactly. A field that was not present
// in the source row is absent from the map (not an empty string), which lets
// consumers distinguish "column missing" from "cell empty".
package records

import (
	"fmt"
	"strconv"
)

// Record is a single row: source column header -> raw cell value.
// Values are strings for text cells, float64/int for numeric cells parsed by
// a spreadsheet codec, bool for boolean cells, or nil for explicit nulls.
type Record map[string]any

// CellString converts a raw cell value to its canonical string form.
//
//   - nil        -> ""
//   - string     -> unchanged
//   - float64    -> shortest decimal representation ('f', no exponent)
//   - ints/bool  -> strconv formatting
//   - anything else falls back to fmt.Sprint
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// HasColumn reports whether any record in the set carries the named field.
// Column presence is a dataset-level property: a header that appears in the
// upload exists for every row even when individual cells are empty.
func HasColumn(in []Record, name string) bool {
	for _, r := range in {
		if _, ok := r[name]; ok {
			return true
		}
	}
	return false
}
