// Package transform implements the record transformation engine: it turns a
// raw record set parsed from an uploaded spreadsheet into a table matching
// the fixed Super Dispatch import schema.
//
// The engine is a pure function over (raw records, schema columns). It never
// fails: missing columns, malformed VINs, unrecognized state names and
// non-numeric ZIPs all degrade to empty-string cells instead of errors, so
// the output table is always fully populated and well-formed. There is no
// shared mutable state, so concurrent requests may run it without
// coordination.
package transform

import (
	"strings"

	"dispatchcsv/internal/schema"
	"dispatchcsv/pkg/records"
)

// Table is an in-memory tabular result: an ordered header row plus data rows
// aligned to it. Every cell is a string; unavailable data is "" rather than
// any kind of null.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Apply derives one output column per spec, each independently, and returns
// the assembled table. The output row count always equals len(raw) and the
// column set is exactly the schema's names in schema order, regardless of
// which source columns the upload carried.
func Apply(raw []records.Record, cols []schema.Column) *Table {
	t := &Table{
		Columns: make([]string, len(cols)),
		Rows:    make([][]string, len(raw)),
	}
	for j, c := range cols {
		t.Columns[j] = c.Name
	}
	for i := range raw {
		t.Rows[i] = make([]string, len(cols))
	}

	for j, c := range cols {
		switch c.Kind {
		case schema.Constant:
			for i := range raw {
				t.Rows[i][j] = c.Value
			}
		case schema.DecodedFromVin:
			for i, r := range raw {
				t.Rows[i][j] = VinModel(vinOf(r))
			}
		case schema.FromSource:
			deriveSource(t, raw, j, c)
		case schema.Empty:
			// rows are zero-valued already
		}
	}
	return t
}

// deriveSource fills column j from the named source column. A column absent
// from the whole dataset yields "" for every row; otherwise each cell is
// converted to a string, the float artifact suffix is stripped, and ZIP/state
// columns get their extra normalization.
func deriveSource(t *Table, raw []records.Record, j int, c schema.Column) {
	if !records.HasColumn(raw, c.Source) {
		return
	}
	for i, r := range raw {
		v, ok := r[c.Source]
		if !ok || v == nil {
			continue
		}
		s := stripFloatZero(records.CellString(v))
		switch {
		case c.Zip:
			s = PadZip(s)
		case c.State:
			s = NormalizeState(s)
		}
		t.Rows[i][j] = s
	}
}

// vinOf reads the Vin field from a record. The header match is
// case-insensitive; an exact "Vin" key wins when several candidates exist.
// Missing or non-string values count as empty.
func vinOf(r records.Record) string {
	if v, ok := r["Vin"]; ok {
		s, _ := v.(string)
		return s
	}
	for k, v := range r {
		if strings.EqualFold(k, "Vin") {
			s, _ := v.(string)
			return s
		}
	}
	return ""
}
