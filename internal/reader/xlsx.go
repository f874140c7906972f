package reader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader handles .xlsx workbooks. Each row becomes one line of
// tab-joined cell values; sheets are walked in workbook order and rows whose
// joined text is entirely whitespace are skipped. Empty cells render as
// empty strings.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var lines []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		for _, row := range rows {
			line := strings.Join(row, "\t")
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
