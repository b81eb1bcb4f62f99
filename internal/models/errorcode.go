package models

// PropertyEntry is one control property from the JV-Link property table.
type PropertyEntry struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorCodeEntry is one raw error-code row before consolidation. The same
// code may appear several times under different methods with different
// wording; Methods defaults to ["General"] when the source table is not
// scoped to specific callers.
type ErrorCodeEntry struct {
	Methods []string `json:"methods"`
	Code    string   `json:"code"`
	Meaning string   `json:"meaning"`
	Notes   string   `json:"notes"`
}

// EventTables carries the JVWatchEvent callback and parameter grids.
// Row 0 of each grid is its header.
type EventTables struct {
	Callbacks  [][]string `json:"callbacks,omitempty"`
	Parameters [][]string `json:"parameters,omitempty"`
}
