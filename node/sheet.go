package node

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	sheetChild = "item"
	sheetType  = "type"
)

// LoadSheet builds a chart node from a worksheet. The sheet starts with a
// block of key/value rows holding the chart attributes. After a blank row,
// a header row names the attributes of the children and each following row
// becomes one child.
//
// When sheet is empty, the first sheet of the workbook is used.
func LoadSheet(path, sheet string) (*Node, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()
	return ReadSheet(f, sheet)
}

func ReadSheet(f *excelize.File, sheet string) (*Node, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook has no sheet")
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sheet, err)
	}
	var (
		root = New(sheet)
		i    int
	)
	for ; i < len(rows) && !blankRow(rows[i]); i++ {
		row := rows[i]
		if len(row) < 2 {
			return nil, fmt.Errorf("%s: row %d: expected key and value", sheet, i+1)
		}
		key := strings.TrimSpace(row[0])
		root.Set(key, strings.TrimSpace(row[1]))
		if key == sheetType {
			root.Name = strings.TrimSpace(row[1])
		}
	}
	for i < len(rows) && blankRow(rows[i]) {
		i++
	}
	if i >= len(rows) {
		return root, nil
	}
	header := rows[i]
	for _, row := range rows[i+1:] {
		if blankRow(row) {
			continue
		}
		child := New(sheetChild)
		for j, value := range row {
			if j >= len(header) || value == "" {
				continue
			}
			child.Set(strings.TrimSpace(header[j]), strings.TrimSpace(value))
		}
		root.Append(child)
	}
	return root, nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
