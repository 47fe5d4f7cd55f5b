package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/investor-registry/internal/table"
)

// ReadRaw reads the first usable table from an Excel workbook and returns
// it untouched as the raw snapshot. Sheets are scanned top to bottom;
// headerRow is the 1-based line holding column names. Fully empty rows and
// columns are dropped, values are not otherwise modified.
func ReadRaw(path string, headerRow int) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if headerRow < 1 {
		headerRow = 1
	}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if len(rows) <= headerRow-1 {
			continue
		}

		t, ok := buildTable(rows, headerRow-1)
		if ok {
			return t, nil
		}
	}

	return nil, fmt.Errorf("no valid table found in workbook %s", path)
}

// buildTable assembles a table from sheet rows given the header index.
func buildTable(rows [][]string, headerIdx int) (*table.Table, bool) {
	header := rows[headerIdx]

	// Keep only columns with a non-blank header.
	var columns []string
	var keep []int
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		columns = append(columns, name)
		keep = append(keep, i)
	}
	if len(columns) == 0 {
		return nil, false
	}

	t := table.New(columns)
	for _, record := range rows[headerIdx+1:] {
		row := make(table.Row, len(columns))
		empty := true
		for j, srcIdx := range keep {
			v := ""
			if srcIdx < len(record) {
				v = record[srcIdx]
			}
			row[columns[j]] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			t.Append(row)
		}
	}

	if t.Len() == 0 {
		return nil, false
	}
	return t, true
}
