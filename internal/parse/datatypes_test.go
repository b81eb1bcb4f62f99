package parse

import (
	"reflect"
	"testing"
)

func TestParseDataTypeList(t *testing.T) {
	rows := [][]string{
		{"(2)速報系データ"},
		{"", "データ種別", ""},
		{"", "成績速報", "0B12", "2", "レース詳細", "RA", "成績確定時"},
		{"(1)蓄積系データ"},
		{"", "データ種別", ""},
		{"", "特別登録馬", "TOKU", "1", "特別登録馬", "TK", "毎週"},
		{"", "", "続き", "値"},
	}

	sections := ParseDataTypeList(rows)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Key != "蓄積系データ" || sections[1].Key != "速報系データ" {
		t.Errorf("sections not in family order: %q, %q", sections[0].Key, sections[1].Key)
	}

	stored := sections[0]
	if !reflect.DeepEqual(stored.Rows[0], dataTypeHeader) {
		t.Errorf("expected fixed header, got %v", stored.Rows[0])
	}
	if len(stored.Rows) != 3 {
		t.Fatalf("expected 3 rows in 蓄積系データ, got %d", len(stored.Rows))
	}
	if stored.Rows[1][0] != "特別登録馬" {
		t.Errorf("unexpected data row %v", stored.Rows[1])
	}
	if !reflect.DeepEqual(stored.Rows[2], []string{"続き", "値"}) {
		t.Errorf("leading empties should be trimmed, got %v", stored.Rows[2])
	}

	realtime := ParseDataTypeList([][]string{{"(3)リアルタイム系データ"}})
	if len(realtime) != 0 {
		t.Errorf("marker without rows should produce no section, got %v", realtime)
	}
}

func TestParseDataTypeList_defaultFamily(t *testing.T) {
	rows := [][]string{
		{"", "前置きの行"},
	}
	sections := ParseDataTypeList(rows)
	if len(sections) != 1 || sections[0].Key != "蓄積系データ" {
		t.Fatalf("rows before any marker belong to 蓄積系データ, got %v", sections)
	}
}
