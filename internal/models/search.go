package models

import "fmt"

// Search record kinds.
const (
	KindMethod   = "method"
	KindProperty = "property"
	KindError    = "error"
	KindRecord   = "record"
)

// SearchQuery represents a search request over the extracted records.
type SearchQuery struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
	Kind  string `json:"kind,omitempty"` // restrict hits to one record kind
}

// Validate ensures the query has valid fields and sets defaults.
// Returns an error if the query text is empty or the kind is unknown;
// otherwise normalizes the limit.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	switch q.Kind {
	case "", KindMethod, KindProperty, KindError, KindRecord:
	default:
		return fmt.Errorf("unknown kind %q", q.Kind)
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	return nil
}

// SearchResult represents a single search hit.
type SearchResult struct {
	Kind    string  `json:"kind"`
	Name    string  `json:"name"`
	Excerpt string  `json:"excerpt,omitempty"`
	Score   float64 `json:"score"`
	Rank    int     `json:"rank"`
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	QueryTime int64           `json:"query_time_ms"`
	Query     string          `json:"query"`
	// Suggestions contains "Did you mean?" method names when the query
	// resembles a known method but returned no hits.
	Suggestions []string `json:"suggestions,omitempty"`
}
