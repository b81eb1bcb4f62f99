package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/keibalab/jvspec/internal/models"
)

func TestWriteSearchResults_JSON(t *testing.T) {
	response := &models.SearchResponse{
		Query:     "JVOpen",
		QueryTime: 42,
		Total:     1,
		Results: []*models.SearchResult{
			{
				Kind:    models.KindMethod,
				Name:    "JVOpen",
				Excerpt: "蓄積系データの読み込みを開始する。",
				Score:   0.9,
				Rank:    1,
			},
		},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputJSON); err != nil {
		t.Fatalf("WriteSearchResults(json): %v", err)
	}
	var decoded models.SearchResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != response.Query || decoded.QueryTime != response.QueryTime {
		t.Errorf("decoded query=%q query_time=%d, want query=%q query_time=%d",
			decoded.Query, decoded.QueryTime, response.Query, response.QueryTime)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Name != "JVOpen" {
		t.Errorf("decoded results: want one hit named JVOpen, got %+v", decoded.Results)
	}
}

func TestWriteSearchResults_Text(t *testing.T) {
	response := &models.SearchResponse{
		Query:     "レコード",
		QueryTime: 3,
		Total:     2,
		Results: []*models.SearchResult{
			{Kind: models.KindRecord, Name: "1.レース詳細", Excerpt: "レコード種別ID", Score: 1.2, Rank: 1},
			{Kind: models.KindMethod, Name: "JVRead", Score: 0.8, Rank: 2},
		},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteSearchResults(text): %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Found 2 results") {
		t.Errorf("missing result count:\n%s", out)
	}
	if !strings.Contains(out, "Rank: 1 | Score: 1.2000 | Kind: record") {
		t.Errorf("missing first hit line:\n%s", out)
	}
	if !strings.Contains(out, "Name: JVRead") {
		t.Errorf("missing second hit name:\n%s", out)
	}
	if !strings.Contains(out, "レコード種別ID") {
		t.Errorf("missing excerpt:\n%s", out)
	}
}

func TestWriteSearchResults_Text_suggestions(t *testing.T) {
	response := &models.SearchResponse{
		Query:       "JVOpppne",
		Total:       0,
		Suggestions: []string{"JVOpen"},
	}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteSearchResults(text): %v", err)
	}
	if !strings.Contains(buf.String(), "Did you mean: JVOpen?") {
		t.Errorf("missing suggestion line:\n%s", buf.String())
	}
}

func TestWriteSearchResults_Text_noHitsNoSuggestions(t *testing.T) {
	response := &models.SearchResponse{Query: "xyz", Total: 0}
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteSearchResults(text): %v", err)
	}
	if strings.Contains(buf.String(), "Did you mean") {
		t.Errorf("unexpected suggestion line:\n%s", buf.String())
	}
}
