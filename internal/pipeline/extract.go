package pipeline

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"icptargets/internal/util"
)

// missingMarker is how spreadsheet exports spell an absent value.
const missingMarker = "nan"

// ColumnExtract is the raw result of reading the domain column out of a workbook.
type ColumnExtract struct {
	Sheet  string
	Values []string
}

// ExtractDomainsAndIPs splits multi-line cells, drops blanks and missing markers,
// and dedupes across all cells keeping the first spelling seen.
func ExtractDomainsAndIPs(values []string) []string {
	tokens := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		for _, token := range util.SplitCellLines(value) {
			if token == "" || token == missingMarker {
				continue
			}
			tokens = append(tokens, token)
		}
	}
	return DedupeValues(tokens)
}

func parseXLSX(content []byte, sheetKeyword, columnKeyword string) (ColumnExtract, error) {
	return readWorkbook(bytes.NewReader(content), sheetKeyword, columnKeyword)
}

func readWorkbook(r io.Reader, sheetKeyword, columnKeyword string) (ColumnExtract, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ColumnExtract{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet, values, err := locateColumn(f.GetSheetList(), sheetKeyword, columnKeyword, func(name string) ([][]string, error) {
		return f.GetRows(name)
	})
	if err != nil {
		return ColumnExtract{Sheet: sheet}, err
	}
	return ColumnExtract{Sheet: sheet, Values: values}, nil
}
