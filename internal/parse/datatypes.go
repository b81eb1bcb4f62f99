package parse

import (
	"strings"

	"github.com/keibalab/jvspec/internal/models"
)

var dataTypeKeys = []string{"蓄積系データ", "速報系データ", "リアルタイム系データ"}

var dataTypeHeader = []string{"名称", "データ種別ID", "フォーマットNo", "レコード名称", "レコード種別ID", "収録内容"}

// ParseDataTypeList reads the データ種別一覧 sheet. Numbered markers in
// column A switch between the three dataset families; the データ種別
// header row is replaced by a fixed six-column header. Sections come back
// in family order, empty families omitted.
func ParseDataTypeList(rows [][]string) []models.SheetSection {
	grouped := make(map[string][][]string)
	currentKey := dataTypeKeys[0]
	for _, row := range rows {
		if allEmpty(row) {
			continue
		}
		if key, ok := markerKey(cell(row, 0)); ok {
			currentKey = key
			continue
		}
		if strings.HasPrefix(cell(row, 1), "データ種別") && cell(row, 2) == "" {
			grouped[currentKey] = append(grouped[currentKey], append([]string(nil), dataTypeHeader...))
			continue
		}
		if cells := trimLeadingEmpty(row); len(cells) > 0 {
			grouped[currentKey] = append(grouped[currentKey], cells)
		}
	}
	var sections []models.SheetSection
	for _, key := range dataTypeKeys {
		if rows := grouped[key]; len(rows) > 0 {
			sections = append(sections, models.SheetSection{Key: key, Rows: rows})
		}
	}
	return sections
}

// markerKey maps the (1)/(2)/(3) family markers to their section names.
func markerKey(label string) (string, bool) {
	switch {
	case strings.HasPrefix(label, "(1)"):
		return dataTypeKeys[0], true
	case strings.HasPrefix(label, "(2)"):
		return dataTypeKeys[1], true
	case strings.HasPrefix(label, "(3)"):
		return dataTypeKeys[2], true
	}
	return "", false
}
