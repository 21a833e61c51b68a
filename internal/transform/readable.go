package transform

import (
	"sort"

	"dispatchcsv/pkg/records"
)

// Column layout for the "readable" cleanup workflow: the dispatcher-facing
// columns come first at a wider width, the rest follow in preference order.
var (
	preferenceColumns = []string{
		"ShipmentNumber", "Vin", "OriginState", "OriginCity",
		"OriginAddress", "OriginZip", "OriginContactPhone",
		"DestinationState", "DestinationCity", "DestinationAddress",
		"DestinationZip", "DestinationContactPhone",
	}
	firstColumns = []string{
		"Vin", "OriginState", "OriginCity",
		"DestinationState", "DestinationCity", "Price",
	}
	sortOrder = []string{
		"OriginState", "OriginCity",
		"DestinationState", "DestinationCity", "Vin",
	}
)

// Readable prepares an uploaded origin sheet for human review: it keeps only
// the preference columns (plus a Price column, injected empty when the
// upload lacks one), puts the route-defining columns first, and sorts rows
// by origin, destination and VIN so shipments group by lane.
//
// Unknown source columns are dropped; missing cells come out as "".
func Readable(raw []records.Record) *Table {
	present := func(name string) bool {
		return name == "Price" || records.HasColumn(raw, name)
	}

	var cols []string
	for _, c := range firstColumns {
		if present(c) {
			cols = append(cols, c)
		}
	}
	for _, c := range preferenceColumns {
		if !contains(firstColumns, c) && present(c) {
			cols = append(cols, c)
		}
	}

	t := &Table{Columns: cols, Rows: make([][]string, len(raw))}
	for i, r := range raw {
		row := make([]string, len(cols))
		for j, c := range cols {
			if v, ok := r[c]; ok {
				row[j] = records.CellString(v)
			}
		}
		t.Rows[i] = row
	}

	// Multi-level sort on whichever sort keys survived column selection.
	var keys []int
	for _, name := range sortOrder {
		for j, c := range cols {
			if c == name {
				keys = append(keys, j)
			}
		}
	}
	sort.SliceStable(t.Rows, func(a, b int) bool {
		for _, k := range keys {
			if t.Rows[a][k] != t.Rows[b][k] {
				return t.Rows[a][k] < t.Rows[b][k]
			}
		}
		return false
	})
	return t
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
