package parse

import "strings"

// ParseSpecialNotes flattens the 特記事項 sheet into paragraphs, one per
// populated row.
func ParseSpecialNotes(rows [][]string) []string {
	var paragraphs []string
	for _, row := range rows {
		if text := strings.TrimSpace(joinNonEmpty(row, " ")); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}
