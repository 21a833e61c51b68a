// Package csv parses uploaded CSV payloads into records. It is deliberately
// lenient about real-world exports: variable field counts and stray quotes
// are tolerated, a UTF-8 BOM on the first header is stripped, and legacy
// windows-1252 payloads are transcoded before parsing. Header names are
// otherwise taken verbatim from row 1 — no case or whitespace normalization,
// since the transform schema matches source headers exactly.
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"dispatchcsv/pkg/records"
)

// Options configures parsing. Zero values mean: comma delimiter.
type Options struct {
	// Comma is the field delimiter; ',' when zero.
	Comma rune
}

const utf8BOM = "\uFEFF"

// Parse decodes data into a verbatim header slice and one record per data
// row. Rows wider than the header are truncated; rows narrower leave the
// trailing fields absent from the record, so downstream consumers can tell
// a short row from an empty cell.
func Parse(data []byte, opt Options) ([]string, []records.Record, error) {
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err == nil {
			data = decoded
		}
	}

	r := csv.NewReader(bytes.NewReader(data))
	if opt.Comma != 0 {
		r.Comma = opt.Comma
	}
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	headers = stripHeaderBOM(headers)

	var out []records.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", len(out)+2, err)
		}
		rec := make(records.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		out = append(out, rec)
	}
	return headers, out, nil
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell if present.
func stripHeaderBOM(headers []string) []string {
	if len(headers) > 0 && strings.HasPrefix(headers[0], utf8BOM) {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}
	return headers
}
