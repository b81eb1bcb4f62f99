package parse

import (
	"strings"

	"github.com/keibalab/jvspec/internal/markup"
	"github.com/keibalab/jvspec/internal/models"
)

var (
	callbackHeader  = []string{"種類", "イベントメソッド名", "説明"}
	parameterHeader = []string{"イベントメソッド名", "パラメータ", "説明"}
)

// ParseEventTables finds the two JVWatchEvent tables anywhere in the
// document, recognized by their leading header cells. Wrapped rows are
// collapsed; parameter rows are anchored on cells starting with JVEvt
// because parameter names continue across physical rows. When a header
// repeats, the later table wins.
func ParseEventTables(doc *markup.Document) models.EventTables {
	var events models.EventTables
	for _, rows := range doc.Tables() {
		if len(rows) == 0 {
			continue
		}
		header := nonEmpty(rows[0])
		switch {
		case headerMatches(header, callbackHeader):
			events.Callbacks = CollapseRows(rows, nil)
		case headerMatches(header, parameterHeader):
			events.Parameters = CollapseRows(rows, func(r []string) bool {
				return len(r) > 0 && strings.HasPrefix(r[0], "JVEvt")
			})
		}
	}
	return events
}

func headerMatches(header, want []string) bool {
	if len(header) < len(want) {
		return false
	}
	for i, cell := range want {
		if header[i] != cell {
			return false
		}
	}
	return true
}
