// Package jvlink exposes the JV-Link error catalog generated from the
// reference documents: one entry per return code with the methods that
// raise it and per-method overrides for category, message, and
// documentation.
package jvlink

import "strings"

// ErrorCategory classifies a return code by its failure domain.
type ErrorCategory string

const (
	CategoryInput          ErrorCategory = "input"
	CategoryAuthentication ErrorCategory = "authentication"
	CategoryMaintenance    ErrorCategory = "maintenance"
	CategoryDownload       ErrorCategory = "download"
	CategoryInternal       ErrorCategory = "internal"
	CategoryState          ErrorCategory = "state"
	CategoryOther          ErrorCategory = "other"
)

// ErrorOverride replaces base fields for one method. An empty field
// means the base value applies.
type ErrorOverride struct {
	Category      ErrorCategory `json:"category,omitempty"`
	Message       string        `json:"message,omitempty"`
	Documentation string        `json:"documentation,omitempty"`
}

// ErrorBase holds the fields shared by every method that raises a code.
type ErrorBase struct {
	Code          int           `json:"code"`
	Category      ErrorCategory `json:"category"`
	Message       string        `json:"message"`
	Documentation string        `json:"documentation"`
}

// ErrorInfo is one catalog entry.
type ErrorInfo struct {
	ErrorBase
	Methods   []string                 `json:"methods"`
	Overrides map[string]ErrorOverride `json:"overrides,omitempty"`
}

type lookupKey struct {
	method string
	code   int
}

var index = buildIndex()

func buildIndex() map[lookupKey]*ErrorInfo {
	m := make(map[lookupKey]*ErrorInfo, len(entries))
	for i := range entries {
		for _, method := range entries[i].Methods {
			m[lookupKey{method: method, code: entries[i].Code}] = &entries[i]
		}
	}
	return m
}

// Find returns the catalog entry for a method and return code. A blank
// method name matches under the unknown marker, and a method that is
// not recorded for the code falls back to the first entry with that
// code.
func Find(method string, code int) (*ErrorInfo, bool) {
	name := strings.TrimSpace(method)
	if name == "" {
		name = "(UNKNOWN)"
	}
	if info, ok := index[lookupKey{method: strings.ToUpper(name), code: code}]; ok {
		return info, true
	}
	for i := range entries {
		if entries[i].Code == code {
			return &entries[i], true
		}
	}
	return nil, false
}

// Entries returns the catalog sorted by code.
func Entries() []ErrorInfo {
	out := make([]ErrorInfo, len(entries))
	copy(out, entries)
	return out
}

// MessageFor returns the message shown for method, falling back to the
// base message when no override applies.
func (e *ErrorInfo) MessageFor(method string) string {
	if ov, ok := e.override(method); ok && ov.Message != "" {
		return ov.Message
	}
	return e.Message
}

// CategoryFor returns the category for method.
func (e *ErrorInfo) CategoryFor(method string) ErrorCategory {
	if ov, ok := e.override(method); ok && ov.Category != "" {
		return ov.Category
	}
	return e.Category
}

// DocumentationFor returns the source documentation text for method.
func (e *ErrorInfo) DocumentationFor(method string) string {
	if ov, ok := e.override(method); ok && ov.Documentation != "" {
		return ov.Documentation
	}
	return e.Documentation
}

func (e *ErrorInfo) override(method string) (ErrorOverride, bool) {
	ov, ok := e.Overrides[strings.ToUpper(strings.TrimSpace(method))]
	return ov, ok
}
