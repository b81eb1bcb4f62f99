// Package parse converts decoded sheet rows and reference-document blocks
// into the structured record families. Each parser is a small state machine
// tolerant of short rows and continuation rows; only the absence of whole
// documents or anchors is fatal, and that is handled upstream.
package parse

import "strings"

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func allEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

func nonEmpty(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// trimLeadingEmpty drops leading empty cells, keeping interior gaps.
func trimLeadingEmpty(cells []string) []string {
	idx := 0
	for idx < len(cells) && cells[idx] == "" {
		idx++
	}
	return cells[idx:]
}

func joinNonEmpty(parts []string, sep string) string {
	return strings.Join(nonEmpty(parts), sep)
}

func isHeadingTag(tag string, levels ...string) bool {
	for _, l := range levels {
		if tag == l {
			return true
		}
	}
	return false
}
