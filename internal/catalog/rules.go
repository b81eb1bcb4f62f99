// Package catalog reads the extracted error-code table, consolidates it
// into one canonical entry per code with per-method overrides, and emits
// the generated lookup source. The canonical messages, category keywords
// and per-method message overrides are fixed data shipped with the
// binary, kept in rules.yaml so they can be validated independently of
// the parsing logic.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// CategoryRule is one keyword group. Groups are tested in order and the
// first group with a matching keyword names the category.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Rules bundles the fixed catalog data: ordered category keyword groups,
// the canonical English message per code, and per-code per-method message
// overrides.
type Rules struct {
	Categories []CategoryRule            `yaml:"categories"`
	Messages   map[int]string            `yaml:"messages"`
	Overrides  map[int]map[string]string `yaml:"overrides"`
}

// DefaultRules parses the embedded rule set.
func DefaultRules() (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(rulesYAML, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse catalog rules: %w", err)
	}
	return &rules, nil
}

// InferCategory names the first keyword group matching text, or "other".
// Matching is case-insensitive on the Latin keywords.
func (r *Rules) InferCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range r.Categories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Name
			}
		}
	}
	return "other"
}

// BaseMessage returns the canonical message for code.
func (r *Rules) BaseMessage(code int) (string, bool) {
	message, ok := r.Messages[code]
	return message, ok
}

// MessageOverrides returns the per-method message table for code, keyed
// by upper-cased method name.
func (r *Rules) MessageOverrides(code int) map[string]string {
	raw := r.Overrides[code]
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for method, message := range raw {
		out[strings.ToUpper(method)] = message
	}
	return out
}
