// Package csvout serializes a transformed table as UTF-8, comma-delimited
// CSV: one header row with the schema column names in schema order, then one
// line per input row.
package csvout

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"dispatchcsv/internal/transform"
)

// Encode renders t as CSV bytes ready to stream as a download.
func Encode(t *transform.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
