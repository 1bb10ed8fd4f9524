package pipeline

import (
	"fmt"
	"strings"

	"icptargets/internal/util"
)

// FindSheet returns the first sheet, in workbook order, whose name contains keyword.
func FindSheet(sheets []string, keyword string) (string, bool) {
	idx := util.IndexContaining(sheets, keyword)
	if idx < 0 {
		return "", false
	}
	return sheets[idx], true
}

// FindColumn returns the index of the first header cell containing keyword.
func FindColumn(header []string, keyword string) (int, bool) {
	idx := util.IndexContaining(header, keyword)
	return idx, idx >= 0
}

// ColumnValues returns the cells under the header row for column idx.
// Rows shorter than idx+1 contribute an empty value.
func ColumnValues(rows [][]string, idx int) []string {
	if len(rows) < 2 || idx < 0 {
		return nil
	}
	out := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx < len(row) {
			out = append(out, row[idx])
		} else {
			out = append(out, "")
		}
	}
	return out
}

func locateColumn(sheets []string, sheetKeyword, columnKeyword string, rowsOf func(string) ([][]string, error)) (string, []string, error) {
	sheet, ok := FindSheet(sheets, sheetKeyword)
	if !ok {
		return "", nil, fmt.Errorf("%w: no sheet name contains %q", ErrSheetNotFound, sheetKeyword)
	}

	rows, err := rowsOf(sheet)
	if err != nil {
		return sheet, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	rows = rows[headerRow(rows):]
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	col, ok := FindColumn(header, columnKeyword)
	if !ok {
		return sheet, nil, fmt.Errorf("%w: sheet %q has no header containing %q", ErrColumnNotFound, sheet, columnKeyword)
	}
	return sheet, ColumnValues(rows, col), nil
}

// headerRow returns the index of the first row with a non-blank cell.
// Leading blank rows are not headers.
func headerRow(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return i
			}
		}
	}
	return len(rows)
}
