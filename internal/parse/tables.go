package parse

import (
	"strings"
	"unicode"

	"github.com/keibalab/jvspec/internal/models"
)

// isTableLabel reports whether a cell looks like a numbered table title,
// e.g. "2001.競馬場コード".
func isTableLabel(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	return unicode.IsDigit(runes[0]) && strings.Contains(s, ".")
}

// ParseGenericTables reads the コード表 sheet. Each numbered label in
// column B opens a table. The first row underneath that mentions バイト数
// is the sheet's base column layout; the next row becomes the table
// header. Headers wider than the base keep the base's leading two columns
// so the code and value columns keep their names.
func ParseGenericTables(rows [][]string) []models.GenericTable {
	var tables []models.GenericTable
	var base []string
	cur := -1
	for _, row := range rows {
		if allEmpty(row) {
			continue
		}
		if label := cell(row, 1); isTableLabel(label) {
			tables = append(tables, models.GenericTable{Title: label})
			cur = len(tables) - 1
			base = nil
			continue
		}
		if cur < 0 {
			continue
		}
		cells := trimLeadingEmpty(row)
		if len(cells) == 0 {
			continue
		}
		if base == nil && containsByteCount(cells) {
			base = nonEmpty(cells)
			continue
		}
		if len(tables[cur].Header) == 0 {
			header := nonEmpty(cells)
			if len(header) == 0 {
				header = append([]string(nil), base...)
			}
			if len(header) == 0 {
				header = []string{"Column 1"}
			}
			if len(base) > 0 && len(header) > len(base) {
				spliced := append([]string(nil), base[:min(2, len(base))]...)
				header = append(spliced, header[2:]...)
			}
			tables[cur].Header = header
			continue
		}
		tables[cur].Rows = append(tables[cur].Rows, cells)
	}
	return tables
}

func containsByteCount(cells []string) bool {
	for _, c := range cells {
		if strings.Contains(c, "バイト数") {
			return true
		}
	}
	return false
}
