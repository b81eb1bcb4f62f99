package methods

import (
	"fmt"

	"github.com/keibalab/jvspec/internal/models"
)

const (
	sharedSummary  = "See shared details below."
	defaultSummary = "See details below."
)

// Group merges the documented method pairs into shared units and wraps
// every other method as a singleton. Groups come back in declared order,
// a pair sitting at its primary member's position. A pair only forms when
// both members were segmented; otherwise the survivors stay singletons.
func Group(defs []models.MethodDefinition) []models.MethodGroup {
	lookup := make(map[string]*models.MethodDefinition, len(defs))
	for i := range defs {
		lookup[defs[i].Name] = &defs[i]
	}

	paired := make(map[string]string, len(groupPairs))
	consumed := make(map[string]bool, len(groupPairs))
	for _, pair := range groupPairs {
		if lookup[pair[0]] != nil && lookup[pair[1]] != nil {
			paired[pair[0]] = pair[1]
			consumed[pair[1]] = true
		}
	}

	var groups []models.MethodGroup
	for _, name := range Names {
		if consumed[name] {
			continue
		}
		def := lookup[name]
		if def == nil {
			continue
		}
		if secondary, ok := paired[name]; ok {
			groups = append(groups, mergePair(def, lookup[secondary]))
			continue
		}
		groups = append(groups, models.MethodGroup{
			Title:    def.Name,
			Methods:  []models.MethodSummary{{Name: def.Name, Summary: orDefault(def.Summary, defaultSummary)}},
			Sections: def.Sections,
		})
	}
	return groups
}

// mergePair joins two methods documented as one unit. Sections keep the
// primary's order, secondary-only keys follow; per key the first non-empty
// body wins, primary first.
func mergePair(primary, secondary *models.MethodDefinition) models.MethodGroup {
	var sections []models.Section
	for _, s := range primary.Sections {
		body := s.Body
		if body == "" {
			if v, ok := secondary.Section(s.Key); ok {
				body = v
			}
		}
		sections = append(sections, models.Section{Key: s.Key, Body: body})
	}
	for _, s := range secondary.Sections {
		if _, ok := primary.Section(s.Key); !ok {
			sections = append(sections, s)
		}
	}
	return models.MethodGroup{
		Title: fmt.Sprintf("%s / %s", primary.Name, secondary.Name),
		Methods: []models.MethodSummary{
			{Name: primary.Name, Summary: orDefault(primary.Summary, sharedSummary)},
			{Name: secondary.Name, Summary: orDefault(secondary.Summary, sharedSummary)},
		},
		Sections: sections,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
