package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/keibalab/jvspec/internal/normalize"
)

// Record is one parsed row of the error-codes table, with its derived
// fields already normalized.
type Record struct {
	Methods       []string `json:"methods"`
	Code          int      `json:"code"`
	Category      string   `json:"category"`
	Meaning       string   `json:"meaning"`
	Notes         string   `json:"notes"`
	Documentation string   `json:"documentation"`
}

type rawRecord struct {
	methods []string
	code    int
	meaning string
	notes   string
}

// ReadRecordsFile reads the error-codes Markdown document at path.
func ReadRecordsFile(path string, rules *Rules) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open error table: %w", err)
	}
	defer f.Close()
	records, err := ReadRecords(f, rules)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses the pipe-table rows of the error-codes document.
// Header and separator rows are skipped. A row whose code cell holds no
// integer is a continuation: its meaning and notes text folds into the
// previous record's notes. Continuations before the first record drop.
func ReadRecords(r io.Reader, rules *Rules) ([]Record, error) {
	var raws []rawRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(row, "|") {
			continue
		}
		parts := splitTableRow(row)
		if len(parts) < 3 {
			continue
		}
		if strings.HasPrefix(parts[0], "Method") || parts[1] == "Code" || parts[1] == "コード" {
			continue
		}
		meaning := parts[2]
		notes := ""
		if len(parts) > 3 {
			notes = parts[3]
		}
		code, ok := ParseCode(parts[1])
		if !ok {
			if len(raws) > 0 {
				last := &raws[len(raws)-1]
				last.notes = joinText(last.notes, meaning, notes)
			}
			continue
		}
		raws = append(raws, rawRecord{
			methods: SplitMethods(parts[0]),
			code:    code,
			meaning: meaning,
			notes:   notes,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read error table: %w", err)
	}

	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Record{
			Methods:       raw.methods,
			Code:          raw.code,
			Category:      rules.InferCategory(raw.meaning + " " + raw.notes),
			Meaning:       normalize.Clean(raw.meaning),
			Notes:         normalize.Clean(raw.notes),
			Documentation: normalize.Clean(joinText(raw.meaning, raw.notes)),
		})
	}
	return records, nil
}

var (
	codePattern      = regexp.MustCompile(`-?\d+`)
	codeDashFolder   = strings.NewReplacer("―", "-", "−", "-")
	methodSeparators = regexp.MustCompile(`[,/]\s*|\s+and\s+|、|，`)
)

// ParseCode extracts the leading signed integer from a code cell. The
// source documents render minus signs with long-dash glyphs, which fold
// to ASCII first.
func ParseCode(raw string) (int, bool) {
	match := codePattern.FindString(codeDashFolder.Replace(raw))
	if match == "" {
		return 0, false
	}
	code, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return code, true
}

// SplitMethods splits a method-list cell on commas, slashes, "and", and
// the Japanese list separators. An empty cell names no method and maps
// to the unknown marker.
func SplitMethods(raw string) []string {
	var cleaned []string
	for _, part := range methodSeparators.Split(raw, -1) {
		if part = strings.TrimSpace(part); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	if len(cleaned) == 0 {
		return []string{"(Unknown)"}
	}
	return cleaned
}

func splitTableRow(row string) []string {
	cells := strings.Split(row, "|")
	if len(cells) < 3 {
		return nil
	}
	cells = cells[1 : len(cells)-1]
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func joinText(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
