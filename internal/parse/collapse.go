package parse

import "strings"

// RowPredicate reports whether a raw, unpadded row starts a new logical
// record.
type RowPredicate func(row []string) bool

// startsNonEmpty is the default predicate: a row opens a new record when
// its first cell is non-empty.
func startsNonEmpty(row []string) bool {
	return len(row) > 0 && row[0] != ""
}

type collapseState int

const (
	awaitingRecord collapseState = iota // header consumed, no record open
	inRecord                            // current record may absorb continuations
)

// CollapseRows merges continuation rows into their preceding record.
// Row 0 is the header. A row failing isNewRow (nil means startsNonEmpty)
// appends its non-empty cells column-wise onto the current record, space
// separated. Stored rows are padded or truncated to header width; a
// continuation arriving before any record is dropped.
func CollapseRows(rows [][]string, isNewRow RowPredicate) [][]string {
	if len(rows) == 0 {
		return rows
	}
	if isNewRow == nil {
		isNewRow = startsNonEmpty
	}
	header := rows[0]
	collapsed := [][]string{header}
	state := awaitingRecord
	var current []string
	for _, row := range rows[1:] {
		if isNewRow(row) {
			current = pad(row, len(header))
			collapsed = append(collapsed, current)
			state = inRecord
			continue
		}
		if state != inRecord {
			continue
		}
		padded := pad(row, len(header))
		for i, value := range padded {
			if value == "" {
				continue
			}
			if current[i] == "" {
				current[i] = value
			} else {
				current[i] = strings.TrimSpace(current[i] + " " + value)
			}
		}
	}
	return collapsed
}

// pad returns a copy of row sized exactly to width.
func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
