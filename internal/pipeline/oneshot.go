package pipeline

import "os"

// ExtractFile reads one workbook from disk and returns the deduplicated
// domains/IPs of its ICP filing sheet.
func ExtractFile(path, sheetKeyword, columnKeyword string) (ColumnExtract, []string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return ColumnExtract{}, nil, err
	}
	col, err := parseXLSX(blob, sheetKeyword, columnKeyword)
	if err != nil {
		return col, nil, err
	}
	return col, ExtractDomainsAndIPs(col.Values), nil
}
