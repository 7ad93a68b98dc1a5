package dataset

import (
	"github.com/xuri/excelize/v2"
)

// readWorkbook reads the first worksheet of an Excel workbook.
// The first row is the header; trailing empty rows are dropped.
func readWorkbook(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}

	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoHeader
	}

	header := rows[0]
	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		// excelize trims trailing empty cells; New pads short rows.
		records = append(records, row)
	}
	return header, records, nil
}

// isBlankRow reports whether every cell of row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
