package parse

import (
	"strings"

	"github.com/keibalab/jvspec/internal/models"
)

var deliveryHeader = []string{"名称", "データ種別ID", "曜日", "時間", "備考", "提供単位", "提供期間"}

// ParseDeliverySchedule reads the データ提供タイミング･提供単位 sheet.
// Family markers in column B open a section with a fixed seven-column
// header; a repeated marker restarts the section in place. Data rows span
// columns B through H, and a row with an empty name column continues the
// previous entry, its cells appended on new lines.
func ParseDeliverySchedule(rows [][]string) []models.SheetSection {
	var sections []models.SheetSection
	index := make(map[string]int)
	cur := -1
	for _, row := range rows {
		if allEmpty(row) {
			continue
		}
		if key, ok := markerKey(cell(row, 1)); ok {
			if i, seen := index[key]; seen {
				sections[i].Rows = [][]string{append([]string(nil), deliveryHeader...)}
				cur = i
			} else {
				sections = append(sections, models.SheetSection{
					Key:  key,
					Rows: [][]string{append([]string(nil), deliveryHeader...)},
				})
				cur = len(sections) - 1
				index[key] = cur
			}
			continue
		}
		if cur < 0 {
			continue
		}
		data := make([]string, len(deliveryHeader))
		for i := range data {
			data[i] = cell(row, i+1)
		}
		if data[0] == "" && len(sections[cur].Rows) > 1 {
			last := sections[cur].Rows[len(sections[cur].Rows)-1]
			for i, value := range data {
				if value == "" {
					continue
				}
				if last[i] == "" {
					last[i] = value
				} else {
					last[i] = strings.TrimSpace(last[i] + "\n" + value)
				}
			}
			continue
		}
		sections[cur].Rows = append(sections[cur].Rows, data)
	}
	return sections
}
