package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Override carries per-method deviations from an entry's base fields.
// An empty string means the base value applies.
type Override struct {
	Category string `json:"category,omitempty"`
	Message  string `json:"message,omitempty"`
	Doc      string `json:"doc,omitempty"`
}

// Entry is one consolidated error code: the base fields taken from the
// first record that mentioned the code, the union of all methods that
// raise it, and the per-method overrides.
type Entry struct {
	Code          int                 `json:"code"`
	Category      string              `json:"category"`
	Message       string              `json:"message"`
	Documentation string              `json:"documentation"`
	Methods       []string            `json:"methods"`
	Overrides     map[string]Override `json:"overrides,omitempty"`
}

// Consolidate merges the table records into one entry per code. Every
// code must have a canonical English message in the rule set; a code
// without one aborts the build rather than shipping a hole in the
// catalog. Method names are upper-cased, entries come back sorted by
// code and methods sorted within each entry.
func Consolidate(records []Record, rules *Rules) ([]Entry, error) {
	byCode := make(map[int]*Entry)
	for _, rec := range records {
		message, ok := rules.BaseMessage(rec.Code)
		if !ok {
			return nil, fmt.Errorf("no canonical message for code %d", rec.Code)
		}
		entry := byCode[rec.Code]
		if entry == nil {
			entry = &Entry{
				Code:          rec.Code,
				Category:      rec.Category,
				Message:       message,
				Documentation: rec.Documentation,
				Overrides:     make(map[string]Override),
			}
			byCode[rec.Code] = entry
		}
		messageOverrides := rules.MessageOverrides(rec.Code)
		for _, raw := range rec.Methods {
			method := strings.ToUpper(raw)
			if !containsString(entry.Methods, method) {
				entry.Methods = append(entry.Methods, method)
			}
			ov := entry.Overrides[method]
			if rec.Category != entry.Category {
				ov.Category = rec.Category
			}
			if msg := messageOverrides[method]; msg != "" {
				ov.Message = msg
			}
			if rec.Documentation != "" && rec.Documentation != entry.Documentation {
				ov.Doc = rec.Documentation
			}
			entry.Overrides[method] = ov
		}
	}

	entries := make([]Entry, 0, len(byCode))
	for _, entry := range byCode {
		sort.Strings(entry.Methods)
		for method, ov := range entry.Overrides {
			if ov == (Override{}) {
				delete(entry.Overrides, method)
			}
		}
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries, nil
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
