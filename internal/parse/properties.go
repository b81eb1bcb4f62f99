package parse

import (
	"strings"

	"github.com/keibalab/jvspec/internal/markup"
	"github.com/keibalab/jvspec/internal/models"
)

// ParseProperties collects the property tables under the 1.プロパティ
// heading. Rows with three or more populated cells carry type, name and
// description; two-cell rows pack type and name into the first cell.
// Re-listed properties merge their descriptions onto the first entry.
func ParseProperties(doc *markup.Document) []models.PropertyEntry {
	var props []models.PropertyEntry
	index := make(map[string]int)
	within := false
	for _, block := range doc.Blocks() {
		if isHeadingTag(block.Tag, "h2", "h3", "h4") && strings.HasPrefix(block.Text, "1.プロパティ") {
			within = true
			continue
		}
		if within && isHeadingTag(block.Tag, "h2", "h3") && block.Text != "" && !strings.HasPrefix(block.Text, "1.プロパティ") {
			break
		}
		if !within || block.Tag != "table" || len(block.Rows) == 0 {
			continue
		}
		for _, raw := range block.Rows[1:] {
			cells := nonEmpty(raw)
			var typeName, name, description string
			switch {
			case len(cells) >= 3:
				typeName, name = cells[0], cells[1]
				description = strings.Join(cells[2:], " ")
			case len(cells) == 2:
				parts := strings.SplitN(cells[0], " ", 2)
				if len(parts) == 2 {
					typeName, name = parts[0], parts[1]
				} else {
					name = cells[0]
				}
				description = cells[1]
			default:
				continue
			}
			if i, ok := index[name]; ok {
				props[i].Description = joinNonEmpty([]string{props[i].Description, description}, " ")
				continue
			}
			props = append(props, models.PropertyEntry{Type: typeName, Name: name, Description: description})
			index[name] = len(props) - 1
		}
	}
	return props
}
