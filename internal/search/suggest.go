package search

import (
	"sort"
	"strings"

	"github.com/keibalab/jvspec/internal/methods"
)

// maxSuggestionDistance bounds how far a query may sit from a method
// name before the suggestion is dropped.
const maxSuggestionDistance = 3

// Suggest returns up to limit method names within edit distance of the
// query, nearest first, declared order on ties. Matching ignores case.
func Suggest(query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}
	type candidate struct {
		name string
		dist int
		pos  int
	}
	var candidates []candidate
	for i, name := range methods.Names {
		if d := levenshtein(query, strings.ToLower(name)); d <= maxSuggestionDistance {
			candidates = append(candidates, candidate{name: name, dist: d, pos: i})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].pos < candidates[j].pos
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// levenshtein computes the edit distance between a and b over runes,
// keeping only two matrix rows at a time.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	runesA := []rune(a)
	runesB := []rune(b)
	if len(runesA) == 0 {
		return len(runesB)
	}
	if len(runesB) == 0 {
		return len(runesA)
	}

	prev := make([]int, len(runesB)+1)
	curr := make([]int, len(runesB)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(runesA); i++ {
		curr[0] = i
		for j := 1; j <= len(runesB); j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(runesB)]
}
