// Package spreadsheet turns uploaded workbook bytes into row maps keyed by
// the first worksheet's header row.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/xuri/excelize/v2"
)

// Parse reads the first worksheet. The first row supplies the keys; each
// following non-empty row becomes one map. Cells past the header width are
// dropped, missing trailing cells are left out of the map.
func Parse(data []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weberrors.ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", weberrors.ErrParse)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weberrors.ErrParse, err)
	}
	if len(rows) == 0 {
		return []map[string]string{}, nil
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmpty(row) {
			continue
		}
		record := map[string]string{}
		for i, cell := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			record[headers[i]] = cell
		}
		records = append(records, record)
	}

	return records, nil
}

func isEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
