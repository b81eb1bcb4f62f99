package models

import "testing"

func TestSetSection_keepsFirstSeenOrder(t *testing.T) {
	m := &MethodDefinition{Name: "JVOpen"}
	m.SetSection("構文", "long ret = JVOpen(...)")
	m.SetSection("戻り値", "0: 正常")
	m.SetSection("構文", "long ret = JVOpen(dataspec, fromtime)")

	if len(m.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(m.Sections))
	}
	if m.Sections[0].Key != "構文" || m.Sections[1].Key != "戻り値" {
		t.Errorf("section order = [%s, %s]", m.Sections[0].Key, m.Sections[1].Key)
	}
	body, ok := m.Section("構文")
	if !ok || body != "long ret = JVOpen(dataspec, fromtime)" {
		t.Errorf("Section(構文) = %q, %v", body, ok)
	}
}

func TestSection_missing(t *testing.T) {
	m := &MethodDefinition{Name: "JVClose"}
	if _, ok := m.Section("解説"); ok {
		t.Error("expected missing section")
	}
}
