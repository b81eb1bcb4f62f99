// Package models defines the structured records extracted from the JV-Link
// API reference and the JV-Data dictionary workbook.
package models

// Section is one bracket-labeled subsection of a method description,
// e.g. 構文 or 戻り値. Sections keep first-seen order so rendered output
// is stable across runs.
type Section struct {
	Key  string `json:"key"`
	Body string `json:"body"`
}

// MethodDefinition is a single API method parsed from the method detail
// chapter of the JV-Link specification.
type MethodDefinition struct {
	Name     string    `json:"name"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections,omitempty"`
}

// Section returns the body stored under key and whether it is present.
func (m *MethodDefinition) Section(key string) (string, bool) {
	for _, s := range m.Sections {
		if s.Key == key {
			return s.Body, true
		}
	}
	return "", false
}

// SetSection stores body under key, replacing an existing section in place
// or appending a new one.
func (m *MethodDefinition) SetSection(key, body string) {
	for i, s := range m.Sections {
		if s.Key == key {
			m.Sections[i].Body = body
			return
		}
	}
	m.Sections = append(m.Sections, Section{Key: key, Body: body})
}

// MethodSummary names one member of a method group.
type MethodSummary struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// MethodGroup is one or two related methods documented together, such as a
// base method and its WithType variant sharing the same sections.
type MethodGroup struct {
	Title    string          `json:"title"`
	Methods  []MethodSummary `json:"methods"`
	Sections []Section       `json:"sections,omitempty"`
}

// Section returns the merged body stored under key and whether it is present.
func (g *MethodGroup) Section(key string) (string, bool) {
	for _, s := range g.Sections {
		if s.Key == key {
			return s.Body, true
		}
	}
	return "", false
}
