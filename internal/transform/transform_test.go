package transform

import (
	"reflect"
	"testing"

	"dispatchcsv/internal/schema"
	"dispatchcsv/pkg/records"
)

/*
TestApplyShape verifies the structural invariants of the engine:

  - Output row count equals input row count.
  - Output columns are exactly the schema names, in schema order, regardless
    of which source columns exist.
  - Every cell is a string; unavailable data is "" (never a missing cell).
*/
func TestApplyShape(t *testing.T) {
	t.Parallel()

	raw := []records.Record{
		{"Vin": "5YJSA1E2XNF000001"},
		{}, // completely empty row is valid input
		{"Unrelated": "x"},
	}
	out := Apply(raw, schema.Template())

	if len(out.Rows) != len(raw) {
		t.Fatalf("row count = %d, want %d", len(out.Rows), len(raw))
	}
	if len(out.Columns) != 19 {
		t.Fatalf("column count = %d, want 19", len(out.Columns))
	}
	for i, row := range out.Rows {
		if len(row) != len(out.Columns) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(out.Columns))
		}
	}
}

/*
TestApplyEndToEnd runs a representative input row through the full template
and checks each derivation rule on the result.
*/
func TestApplyEndToEnd(t *testing.T) {
	t.Parallel()

	raw := []records.Record{{
		"Vin":            "5YJSA1E2XNF000001",
		"OriginState":    "Texas",
		"OriginZip":      "750",
		"ShipmentNumber": "98765.0",
	}}
	out := Apply(raw, schema.Template())

	cell := func(name string) string {
		t.Helper()
		for j, c := range out.Columns {
			if c == name {
				return out.Rows[0][j]
			}
		}
		t.Fatalf("no output column %q", name)
		return ""
	}

	checks := map[string]string{
		"model":                  "S",
		"Pickup State":           "TX",
		"Pickup Zip Code":        "00750",
		"Order ID":               "98765",
		"VIN":                    "5YJSA1E2XNF000001",
		"Carrier Payment Method": "check",
		"Carrier Payment Terms":  "10_days",
		"Pickup Date Type":       "estimated",
		"Delivery Date Type":     "estimated",
		"     ":                  "",
		"Delivery City":          "", // source column absent
	}
	for name, want := range checks {
		if got := cell(name); got != want {
			t.Errorf("column %q = %q, want %q", name, got, want)
		}
	}
}

/*
TestApplyMissingColumn verifies that a source column absent from the whole
dataset yields "" for every row without any error.
*/
func TestApplyMissingColumn(t *testing.T) {
	t.Parallel()

	raw := []records.Record{
		{"OriginCity": "Dallas"},
		{"OriginCity": "Austin"},
	}
	out := Apply(raw, schema.Template())

	var zipIdx, cityIdx int = -1, -1
	for j, c := range out.Columns {
		switch c {
		case "Pickup Zip Code":
			zipIdx = j
		case "Pickup City":
			cityIdx = j
		}
	}
	for i := range out.Rows {
		if got := out.Rows[i][zipIdx]; got != "" {
			t.Errorf("row %d Pickup Zip Code = %q, want empty (column absent)", i, got)
		}
	}
	if out.Rows[0][cityIdx] != "Dallas" || out.Rows[1][cityIdx] != "Austin" {
		t.Errorf("Pickup City column not copied: %q, %q",
			out.Rows[0][cityIdx], out.Rows[1][cityIdx])
	}
}

/*
TestApplyVinHeaderCaseInsensitive verifies the Vin source header is located
case-insensitively while every other header must match exactly.
*/
func TestApplyVinHeaderCaseInsensitive(t *testing.T) {
	t.Parallel()

	cols := []schema.Column{
		{Name: "model", Kind: schema.DecodedFromVin},
		{Name: "Pickup City", Kind: schema.FromSource, Source: "OriginCity"},
	}
	raw := []records.Record{{
		"VIN":        "5YJ3E1EA7KF000316",
		"origincity": "Dallas", // wrong case: must NOT match OriginCity
	}}
	out := Apply(raw, cols)

	if got := out.Rows[0][0]; got != "3'" {
		t.Errorf("model via VIN header = %q, want 3'", got)
	}
	if got := out.Rows[0][1]; got != "" {
		t.Errorf("Pickup City = %q, want empty (exact-match lookup)", got)
	}
}

/*
TestApplyNonStringVin verifies a non-string Vin cell degrades to an empty
model rather than an error.
*/
func TestApplyNonStringVin(t *testing.T) {
	t.Parallel()

	cols := []schema.Column{{Name: "model", Kind: schema.DecodedFromVin}}
	raw := []records.Record{{"Vin": 12345}}
	out := Apply(raw, cols)
	if got := out.Rows[0][0]; got != "" {
		t.Fatalf("model for numeric Vin = %q, want empty", got)
	}
}

/*
TestApplyIdempotent verifies the engine is a pure function: re-running the
transform on the same input yields a deeply equal result and does not mutate
the input records.
*/
func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	raw := []records.Record{
		{"Vin": "5YJSA1E2XNF000001", "OriginState": "california", "OriginZip": "1234"},
		{"Vin": "1C3CCCABXXX", "DestinationState": "ZZ", "DestinationZip": "123456"},
	}
	before := []records.Record{
		{"Vin": "5YJSA1E2XNF000001", "OriginState": "california", "OriginZip": "1234"},
		{"Vin": "1C3CCCABXXX", "DestinationState": "ZZ", "DestinationZip": "123456"},
	}

	first := Apply(raw, schema.Template())
	second := Apply(raw, schema.Template())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Apply differs:\n first: %#v\nsecond: %#v", first, second)
	}
	if !reflect.DeepEqual(raw, before) {
		t.Fatalf("Apply mutated its input:\n got: %#v\nwant: %#v", raw, before)
	}
}

/*
TestApplyEmptyInput verifies zero-row input produces a zero-row table that
still carries the full header set.
*/
func TestApplyEmptyInput(t *testing.T) {
	t.Parallel()

	out := Apply(nil, schema.Template())
	if len(out.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(out.Rows))
	}
	if len(out.Columns) != 19 {
		t.Fatalf("columns = %d, want 19", len(out.Columns))
	}
}
