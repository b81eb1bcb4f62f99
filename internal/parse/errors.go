package parse

import (
	"strings"

	"github.com/keibalab/jvspec/internal/markup"
	"github.com/keibalab/jvspec/internal/methods"
	"github.com/keibalab/jvspec/internal/models"
)

// ParseErrorCodes collects the return-code tables under the 3.コード表
// heading. Text between tables names the methods the following tables
// apply to; rows with no method context fall under "General". A cell may
// list several codes separated by 、, producing one entry per code, and
// rows carrying only prose fold into the previous entry's notes.
// Duplicate entries collapse, first occurrence wins.
func ParseErrorCodes(doc *markup.Document) []models.ErrorCodeEntry {
	var entries []models.ErrorCodeEntry
	var currentMethods []string
	within := false
	last := -1
	for _, block := range doc.Blocks() {
		if isHeadingTag(block.Tag, "h2", "h3", "h4") && strings.HasPrefix(block.Text, "3.コード表") {
			within = true
			continue
		}
		if within && isHeadingTag(block.Tag, "h1", "h2", "h3") && block.Text != "" && !strings.HasPrefix(block.Text, "3.コード表") {
			break
		}
		if !within {
			continue
		}
		if block.Tag != "table" {
			if found := methods.NamesInText(block.Text); len(found) > 0 {
				currentMethods = found
			}
			continue
		}
		if len(block.Rows) == 0 {
			continue
		}
		for _, raw := range block.Rows[1:] {
			cells := nonEmpty(raw)
			if len(cells) == 0 {
				continue
			}
			if len(cells) == 1 && last >= 0 {
				entries[last].Notes = strings.TrimSpace(joinNonEmpty([]string{entries[last].Notes, cells[0]}, " "))
				continue
			}
			codeCell := cells[0]
			meaning := cell(cells, 1)
			notes := ""
			if len(cells) > 2 {
				notes = strings.Join(cells[2:], " ")
			}
			codes := strings.Fields(strings.ReplaceAll(codeCell, "、", " "))
			if len(codes) == 0 {
				if last >= 0 {
					entries[last].Notes = joinNonEmpty([]string{entries[last].Notes, codeCell}, " ")
				}
				continue
			}
			applies := currentMethods
			if len(applies) == 0 {
				applies = []string{"General"}
			}
			for _, code := range codes {
				entries = append(entries, models.ErrorCodeEntry{
					Methods: append([]string(nil), applies...),
					Code:    code,
					Meaning: meaning,
					Notes:   notes,
				})
				last = len(entries) - 1
			}
		}
	}
	return dedupeEntries(entries)
}

type errorKey struct {
	methods string
	code    string
	meaning string
	notes   string
}

func dedupeEntries(entries []models.ErrorCodeEntry) []models.ErrorCodeEntry {
	seen := make(map[errorKey]bool)
	out := make([]models.ErrorCodeEntry, 0, len(entries))
	for _, e := range entries {
		key := errorKey{strings.Join(e.Methods, ", "), e.Code, e.Meaning, e.Notes}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
