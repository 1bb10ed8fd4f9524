package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetData struct {
	name string
	rows [][]any
}

func mkXLSX(t *testing.T, sheets ...sheetData) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), sh.name))
		} else {
			_, err := f.NewSheet(sh.name)
			require.NoError(t, err)
		}
		for r, row := range sh.rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sh.name, cell, v))
			}
		}
	}

	buf := bytes.NewBuffer(nil)
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func writeXLSX(t *testing.T, dir, name string, sheets ...sheetData) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, mkXLSX(t, sheets...), 0o644))
	return path
}

func icpSheet(values ...any) sheetData {
	rows := [][]any{{"序号", "域名/IP", "备案号"}}
	for i, v := range values {
		rows = append(rows, []any{i + 1, v, "京ICP备00000000号"})
	}
	return sheetData{name: "2024年ICP备案信息", rows: rows}
}
