// Package spreadsheet reads the HR and equipment workbooks and writes the
// weekly meter reading reports.
package spreadsheet

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readRows returns every row of the first sheet of the workbook at path.
func readRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", path, err)
	}
	return readRowsFrom(data)
}

func readRowsFrom(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	return rows, nil
}

// headerIndex maps each wanted field to its column, accepting any of the given aliases.
func headerIndex(header []string, aliases map[string][]string) (map[string]int, error) {
	normalized := make(map[string]int, len(header))
	for i, h := range header {
		normalized[normalizeHeader(h)] = i
	}

	index := make(map[string]int, len(aliases))
	for field, names := range aliases {
		idx := -1
		for _, name := range names {
			if i, ok := normalized[normalizeHeader(name)]; ok {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("missing column %q", names[0])
		}
		index[field] = idx
	}

	return index, nil
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
