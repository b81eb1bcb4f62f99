package parse

import (
	"regexp"
	"strings"

	"github.com/keibalab/jvspec/internal/models"
)

var recordTitle = regexp.MustCompile(`^(\d+)\.(.+)$`)

// splitRecordTitle splits a heading like "4.競走馬マスタ" into its number
// and name; headings without the numeric prefix keep number empty.
func splitRecordTitle(raw string) (number, title string) {
	if m := recordTitle.FindStringSubmatch(raw); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	return "", strings.TrimSpace(raw)
}

// ParseRecordFormats reads the フォーマット sheet. A row whose column B is
// set and whose column F reads レコード長 opens a record; 項番 rows are the
// repeated table header and are skipped. Field rows carry a number or a
// name; rows with neither extend the previous field's description.
func ParseRecordFormats(rows [][]string) []models.RecordFormat {
	var records []models.RecordFormat
	cur := -1
	for _, row := range rows {
		if allEmpty(row) {
			continue
		}
		titleCell := cell(row, 1)
		if titleCell != "" && len(row) > 6 && row[5] == "レコード長" {
			number, title := splitRecordTitle(titleCell)
			records = append(records, models.RecordFormat{
				Number:   number,
				Title:    title,
				RawTitle: titleCell,
				Length:   cell(row, 7),
			})
			cur = len(records) - 1
			continue
		}
		if strings.HasPrefix(titleCell, "項番") {
			continue
		}
		if cur < 0 {
			continue
		}
		no := cell(row, 1)
		name := cell(row, 4)
		if no != "" || name != "" {
			records[cur].Fields = append(records[cur].Fields, models.FieldEntry{
				No:          no,
				Key:         cell(row, 3),
				Name:        name,
				Position:    cell(row, 5),
				Repeat:      cell(row, 6),
				Bytes:       cell(row, 7),
				Total:       cell(row, 8),
				Default:     cell(row, 9),
				Description: cell(row, 10),
			})
			continue
		}
		if fields := records[cur].Fields; len(fields) > 0 {
			addition := joinNonEmpty(row[1:], " ")
			if addition != "" {
				last := &fields[len(fields)-1]
				last.Description = strings.TrimSpace(last.Description + "\n" + addition)
			}
		}
	}
	return records
}
