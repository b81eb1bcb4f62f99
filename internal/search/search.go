// Package search answers ranked queries over the extracted records
// through an in-memory Bleve index. Every record family is flattened
// into one searchable document per method, property, error code and
// record format.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	blevesearch "github.com/blevesearch/bleve/v2/search"
	blevequery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/keibalab/jvspec/internal/models"
	"github.com/keibalab/jvspec/pkg/utils"
)

const (
	excerptLength = 160
	fuzziness     = 2
	// suggestionCount bounds the "did you mean" list on zero hits.
	suggestionCount = 3
)

// Index is an in-memory search index over one extraction.
type Index struct {
	index bleve.Index
}

// document is the indexed form of one record.
type document struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// New builds the index from an extraction. The index lives in memory
// only; rebuilding after a pipeline run replaces it wholesale.
func New(ex *models.Extraction) (*Index, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so method
	// names like JVOpen match their exact lowercase form.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("name", textFieldMapping)
	docMapping.AddFieldMappingsAt("text", textFieldMapping)
	kindFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("kind", kindFieldMapping)
	im.AddDocumentMapping("record", docMapping)
	im.DefaultType = "record"
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	batch := index.NewBatch()
	for i, doc := range documents(ex) {
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return nil, fmt.Errorf("failed to index %s %q: %w", doc.Kind, doc.Name, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to index records: %w", err)
	}
	return &Index{index: index}, nil
}

// documents flattens the extraction into indexable records.
func documents(ex *models.Extraction) []document {
	var docs []document
	for _, group := range ex.Methods {
		text := groupText(group)
		for _, m := range group.Methods {
			docs = append(docs, document{
				Kind: models.KindMethod,
				Name: m.Name,
				Text: strings.TrimSpace(m.Summary + " " + text),
			})
		}
	}
	for _, p := range ex.Properties {
		docs = append(docs, document{
			Kind: models.KindProperty,
			Name: p.Name,
			Text: strings.TrimSpace(p.Type + " " + p.Description),
		})
	}
	for _, e := range ex.ErrorCodes {
		docs = append(docs, document{
			Kind: models.KindError,
			Name: e.Code,
			Text: strings.TrimSpace(strings.Join(e.Methods, " ") + " " + e.Meaning + " " + e.Notes),
		})
	}
	for _, r := range ex.Records {
		docs = append(docs, document{
			Kind: models.KindRecord,
			Name: recordName(r),
			Text: recordText(r),
		})
	}
	return docs
}

func groupText(group models.MethodGroup) string {
	var b strings.Builder
	for _, s := range group.Sections {
		b.WriteString(s.Body)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func recordName(r models.RecordFormat) string {
	if r.RawTitle != "" {
		return r.RawTitle
	}
	if r.Title != "" {
		return r.Title
	}
	return "Unnamed"
}

func recordText(r models.RecordFormat) string {
	parts := []string{r.Title}
	for _, f := range r.Fields {
		parts = append(parts, f.Name, f.Description)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Search runs the query and returns ranked hits. Zero-hit responses
// carry method-name suggestions when the query resembles one.
func (s *Index) Search(ctx context.Context, q *models.SearchQuery) (*models.SearchResponse, error) {
	start := time.Now()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequest(buildQuery(q.Query, q.Kind))
	req.Size = q.Limit
	req.Fields = []string{"*"}
	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]*models.SearchResult, 0, len(res.Hits))
	for i, hit := range res.Hits {
		results = append(results, &models.SearchResult{
			Kind:    fieldString(hit, "kind"),
			Name:    fieldString(hit, "name"),
			Excerpt: utils.Truncate(fieldString(hit, "text"), excerptLength),
			Score:   hit.Score,
			Rank:    i + 1,
		})
	}
	response := &models.SearchResponse{
		Results:   results,
		Total:     int(res.Total),
		QueryTime: time.Since(start).Milliseconds(),
		Query:     q.Query,
	}
	if response.Total == 0 {
		response.Suggestions = Suggest(q.Query, suggestionCount)
	}
	return response, nil
}

// buildQuery combines an analyzed match query with per-term fuzzy
// queries so typos still hit, optionally restricted to one record kind.
func buildQuery(text, kind string) blevequery.Query {
	queries := []blevequery.Query{bleve.NewMatchQuery(text)}
	for _, term := range strings.Fields(strings.ToLower(text)) {
		fq := bleve.NewFuzzyQuery(term)
		fq.SetFuzziness(fuzziness)
		queries = append(queries, fq)
	}
	base := bleve.NewDisjunctionQuery(queries...)
	if kind == "" {
		return base
	}
	kq := bleve.NewTermQuery(kind)
	kq.SetField("kind")
	return bleve.NewConjunctionQuery(base, kq)
}

func fieldString(hit *blevesearch.DocumentMatch, name string) string {
	if v, ok := hit.Fields[name].(string); ok {
		return v
	}
	return ""
}

// Count returns the number of indexed records.
func (s *Index) Count() (uint64, error) {
	return s.index.DocCount()
}

// Close releases the index.
func (s *Index) Close() error {
	return s.index.Close()
}
