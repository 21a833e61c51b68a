// Package xlsxout renders the "readable" cleanup result as an Excel workbook
// with the presentation dispatchers expect: a frozen header row, an
// autofilter over the used range, and a wider first column.
package xlsxout

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"dispatchcsv/internal/transform"
)

const (
	sheetName        = "Sheet1"
	firstColumnWidth = 25
	otherColumnWidth = 17
)

// Encode renders t as .xlsx bytes.
func Encode(t *transform.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, t.Columns); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	if len(t.Columns) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
		if err != nil {
			return nil, err
		}
		filterRange := fmt.Sprintf("A1:%s%d", lastCol, len(t.Rows)+1)
		if err := f.AutoFilter(sheetName, filterRange, nil); err != nil {
			return nil, fmt.Errorf("autofilter: %w", err)
		}
		if err := f.SetColWidth(sheetName, "A", "A", firstColumnWidth); err != nil {
			return nil, err
		}
		if len(t.Columns) > 1 {
			if err := f.SetColWidth(sheetName, "B", lastCol, otherColumnWidth); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	anyCells := make([]any, len(cells))
	for i, c := range cells {
		anyCells[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &anyCells)
}
