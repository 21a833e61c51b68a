// Package xlsx parses uploaded Excel workbooks into records. Only the first
// sheet is read; row 1 supplies the headers verbatim.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"dispatchcsv/pkg/records"
)

// Parse reads the first sheet of an .xlsx payload. Cell values arrive as the
// formatted strings excelize produces, so numeric cells keep whatever the
// workbook displays. Short rows leave trailing fields absent from the record.
func Parse(data []byte) ([]string, []records.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := rows[0]
	out := make([]records.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
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
