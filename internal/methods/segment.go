package methods

import (
	"fmt"
	"strings"

	"github.com/keibalab/jvspec/internal/models"
	"github.com/keibalab/jvspec/internal/normalize"
)

const (
	sectionOpen  = "【"
	sectionClose = "】"
)

// segmentState tracks where the scanner is inside the detail section.
type segmentState int

const (
	seekingBoundary segmentState = iota // before the first method heading
	inMethodBody                        // collecting summary and sections
)

// Segment splits the flattened document lines into per-method definitions.
// The detail section starts at the second standalone occurrence of the
// first method name; the first is the table of contents. Method headings
// must appear in declared order. A heading may be followed by a one-line
// summary, then by 【..】-labeled sections whose bodies run until the next
// label or the next expected heading. Lines after the last method heading
// are ignored, so the final method carries only its summary.
func Segment(lines []string) ([]models.MethodDefinition, error) {
	detail, err := detailLines(MergeFragments(splitAndClean(lines)))
	if err != nil {
		return nil, err
	}

	var defs []models.MethodDefinition
	state := seekingBoundary
	cur := -1
	next := 0
	i := 0
	for i < len(detail) && next < len(Names) {
		line := detail[i]
		if line == Names[next] {
			defs = append(defs, models.MethodDefinition{Name: line})
			cur = len(defs) - 1
			state = inMethodBody
			next++
			i++
			if i < len(detail) && !IsName(detail[i]) && !strings.HasPrefix(detail[i], sectionOpen) {
				defs[cur].Summary = detail[i]
				i++
			}
			continue
		}
		if state == seekingBoundary {
			i++
			continue
		}
		if isSectionLabel(line) {
			key := strings.TrimSuffix(strings.TrimPrefix(line, sectionOpen), sectionClose)
			i++
			var body []string
			for i < len(detail) {
				nxt := detail[i]
				if isSectionLabel(nxt) {
					break
				}
				if next < len(Names) && nxt == Names[next] {
					break
				}
				body = append(body, nxt)
				i++
			}
			defs[cur].SetSection(key, strings.TrimSpace(strings.Join(body, "\n")))
			continue
		}
		i++
	}
	return defs, nil
}

// MergeFragments repairs method names split across adjacent lines: when two
// consecutive lines concatenate to a known name and the first alone is not
// one, the pair collapses into the full name.
func MergeFragments(lines []string) []string {
	merged := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) {
			combined := strings.TrimSpace(lines[i] + lines[i+1])
			if IsName(combined) && !IsName(lines[i]) {
				merged = append(merged, combined)
				i++
				continue
			}
		}
		merged = append(merged, lines[i])
	}
	return merged
}

// splitAndClean breaks multi-line cells apart and drops empty lines.
func splitAndClean(lines []string) []string {
	var out []string
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			if part = normalize.Text(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// detailLines locates the method detail section.
func detailLines(lines []string) ([]string, error) {
	count := 0
	for i, line := range lines {
		if line == Names[0] {
			count++
			if count == 2 {
				return lines[i:], nil
			}
		}
	}
	return nil, fmt.Errorf("method detail anchor %q not found twice", Names[0])
}

func isSectionLabel(line string) bool {
	return strings.HasPrefix(line, sectionOpen) && strings.HasSuffix(line, sectionClose)
}
