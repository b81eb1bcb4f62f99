package jvlink

import (
	"sort"
	"testing"
)

func TestEntriesSortedByCode(t *testing.T) {
	all := Entries()
	if len(all) != 37 {
		t.Fatalf("expected 37 catalog entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Errorf("entries out of order at %d: %d then %d", i, all[i-1].Code, all[i].Code)
		}
	}
}

func TestEntriesWellFormed(t *testing.T) {
	for _, entry := range Entries() {
		if entry.Message == "" {
			t.Errorf("code %d has no message", entry.Code)
		}
		if len(entry.Methods) == 0 {
			t.Errorf("code %d names no methods", entry.Code)
		}
		if !sort.StringsAreSorted(entry.Methods) {
			t.Errorf("code %d methods are not sorted: %v", entry.Code, entry.Methods)
		}
		for method := range entry.Overrides {
			found := false
			for _, m := range entry.Methods {
				if m == method {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("code %d has an override for %s, which is not in its method list", entry.Code, method)
			}
		}
	}
}

func TestFind(t *testing.T) {
	info, ok := Find("JVOpen", -1)
	if !ok {
		t.Fatal("expected a catalog entry for JVOpen/-1")
	}
	if info.Code != -1 {
		t.Fatalf("unexpected code: %d", info.Code)
	}
	if got := info.MessageFor("JVOpen"); got != "File boundary reached; continue reading." {
		t.Errorf("unexpected JVOpen message: %q", got)
	}
	if got := info.MessageFor("JVClose"); got != "File boundary reached; continue with the next file." {
		t.Errorf("unexpected JVClose message: %q", got)
	}
	if got := info.MessageFor("JVStatus"); got != "No matching data exists for the current parameters." {
		t.Errorf("method without an override should fall back to the base message, got %q", got)
	}
}

func TestFind_fallback(t *testing.T) {
	info, ok := Find("JVNoSuchMethod", -504)
	if !ok || info.Code != -504 {
		t.Fatalf("expected fallback to the first entry with code -504, got %+v (ok=%v)", info, ok)
	}

	info, ok = Find("", -301)
	if !ok || info.Code != -301 {
		t.Fatalf("blank method should still resolve by code, got %+v (ok=%v)", info, ok)
	}

	if _, ok := Find("JVInit", 12345); ok {
		t.Error("expected no entry for an unknown code")
	}
}

func TestOverrideAccessors(t *testing.T) {
	info, ok := Find("JVSetUIProperties", 0)
	if !ok {
		t.Fatal("expected a catalog entry for JVSetUIProperties/0")
	}
	if got := info.CategoryFor("JVSetUIProperties"); got != CategoryInternal {
		t.Errorf("expected the category override, got %q", got)
	}
	if got := info.CategoryFor("General"); got != CategoryOther {
		t.Errorf("expected the base category, got %q", got)
	}
	if got := info.MessageFor("jvsetuiproperties"); got != "Settings saved successfully." {
		t.Errorf("method lookup should be case-insensitive, got %q", got)
	}
	if got := info.DocumentationFor("JVOpen"); got != "正常(全ファイル読み込み終了)。" {
		t.Errorf("unexpected documentation override: %q", got)
	}
	if got := info.DocumentationFor("General"); got != "正常。" {
		t.Errorf("unexpected base documentation: %q", got)
	}
}
