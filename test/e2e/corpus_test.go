package e2e

import (
	"strings"
	"testing"

	"github.com/keibalab/jvspec/internal/catalog"
	"github.com/keibalab/jvspec/internal/methods"
)

func TestBuildCorpus_CoversEveryPublishedMethod(t *testing.T) {
	c := BuildCorpus()
	if c.TotalMethods != len(methods.Names) {
		t.Fatalf("corpus methods = %d, want %d", c.TotalMethods, len(methods.Names))
	}
	if len(c.Methods) != c.TotalMethods {
		t.Fatalf("len(Methods) = %d, want %d", len(c.Methods), c.TotalMethods)
	}
	for i, topic := range c.Methods {
		if topic.Name != methods.Names[i] {
			t.Errorf("corpus method %d = %q, want %q", i, topic.Name, methods.Names[i])
		}
	}
}

func TestBuildCorpus_QueryTestCasesExist(t *testing.T) {
	c := BuildCorpus()
	if c.TotalQueries == 0 {
		t.Fatal("expected at least one query test case")
	}
	if len(c.TestCases) != c.TotalQueries {
		t.Fatalf("len(TestCases) = %d, want %d", len(c.TestCases), c.TotalQueries)
	}
	for i, tc := range c.TestCases {
		if tc.Query == "" {
			t.Errorf("test case %d: empty query", i)
		}
		if len(tc.ExpectedNames) == 0 {
			t.Errorf("test case %d: no expected names", i)
		}
		if tc.Description == "" {
			t.Errorf("test case %d: empty description", i)
		}
	}
}

func TestBuildCorpus_ErrorRowsResolveAgainstRules(t *testing.T) {
	c := BuildCorpus()
	rules, err := catalog.DefaultRules()
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}
	for _, table := range c.ErrorTables {
		for _, row := range table.Rows {
			if row.Code == "" {
				// prose continuation row
				continue
			}
			for _, raw := range strings.Fields(strings.ReplaceAll(row.Code, "、", " ")) {
				code, ok := catalog.ParseCode(raw)
				if !ok {
					t.Errorf("table %q: cannot parse code %q", table.Context, raw)
					continue
				}
				if _, ok := rules.BaseMessage(code); !ok {
					t.Errorf("table %q: code %d has no base message", table.Context, code)
				}
			}
		}
	}
}

func TestBuildCorpus_EventGridsShareTheDocumentedShape(t *testing.T) {
	c := BuildCorpus()
	if len(c.EventCallbacks) < 2 {
		t.Fatalf("callback grid rows = %d", len(c.EventCallbacks))
	}
	if got := c.EventCallbacks[0]; len(got) < 3 || got[0] != "種類" {
		t.Errorf("callback header = %v", got)
	}
	if len(c.EventParameters) < 2 {
		t.Fatalf("parameter grid rows = %d", len(c.EventParameters))
	}
	if got := c.EventParameters[0]; len(got) < 3 || got[0] != "イベントメソッド名" {
		t.Errorf("parameter header = %v", got)
	}
}
