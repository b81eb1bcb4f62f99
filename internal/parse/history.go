package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/keibalab/jvspec/internal/models"
)

// ParseChangeHistory reads the 変更履歴 sheet. Rows before the 日付ヒヅケ
// header are skipped. The sheet leaves carried-over columns blank, so the
// parser keeps a rolling window of the six tracked columns and emits a
// snapshot whenever a row supplies a description.
func ParseChangeHistory(rows [][]string) []models.ChangeHistoryEntry {
	var entries []models.ChangeHistoryEntry
	headerFound := false
	var current [6]string
	for _, row := range rows {
		if !headerFound {
			if cell(row, 1) == "日付ヒヅケ" {
				headerFound = true
			}
			continue
		}
		if allEmpty(row) {
			continue
		}
		for idx := 1; idx <= 6; idx++ {
			if value := cell(row, idx); value != "" {
				current[idx-1] = strings.TrimSpace(strings.ReplaceAll(value, "\n", " "))
			}
		}
		if current[5] == "" {
			continue
		}
		entries = append(entries, models.ChangeHistoryEntry{
			Date:        excelSerialToDate(current[0]),
			Version:     current[1],
			Importance:  current[2],
			Item:        current[3],
			Page:        current[4],
			Description: current[5],
		})
	}
	return entries
}

var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// excelSerialToDate converts an Excel serial day count to an ISO date.
// Values that do not parse as numbers pass through unchanged.
func excelSerialToDate(value string) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return excelEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
}
