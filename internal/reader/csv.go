package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSVReader handles CSV files. Rows follow the same rule as spreadsheets:
// tab-joined cell values, one line per row, whitespace-only rows skipped.
type CSVReader struct{}

func (r *CSVReader) Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}

	var lines []string
	for _, row := range records {
		line := strings.Join(row, "\t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
