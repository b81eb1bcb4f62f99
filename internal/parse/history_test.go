package parse

import "testing"

func TestParseChangeHistory(t *testing.T) {
	rows := [][]string{
		{"", "変更履歴"},
		{"", "日付ヒヅケ", "バージョン", "重要度", "項番", "ページ", "変更内容"},
		{"", "45000", "Ver.4.9.0", "高", "1", "12", "フィールド追加"},
		{"", "", "", "", "2", "15", "説明\n修正"},
		{"", "", "", "", "", "", ""},
		{"", "未定", "", "", "", "", "次回更新"},
	}

	entries := ParseChangeHistory(rows)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Date != "2023-03-15" {
		t.Errorf("serial 45000 should convert, got %q", first.Date)
	}
	if first.Version != "Ver.4.9.0" || first.Description != "フィールド追加" {
		t.Errorf("unexpected first entry: %+v", first)
	}

	second := entries[1]
	if second.Date != "2023-03-15" || second.Version != "Ver.4.9.0" || second.Importance != "高" {
		t.Errorf("blank cells should carry over: %+v", second)
	}
	if second.Item != "2" || second.Page != "15" {
		t.Errorf("unexpected second entry: %+v", second)
	}
	if second.Description != "説明 修正" {
		t.Errorf("newlines should flatten to spaces, got %q", second.Description)
	}

	third := entries[2]
	if third.Date != "未定" {
		t.Errorf("non-numeric dates pass through, got %q", third.Date)
	}
	if third.Item != "2" || third.Description != "次回更新" {
		t.Errorf("unexpected third entry: %+v", third)
	}
}

func TestParseChangeHistory_noHeader(t *testing.T) {
	rows := [][]string{
		{"", "45000", "Ver.4.9.0", "高", "1", "12", "ヘッダなし"},
	}
	if entries := ParseChangeHistory(rows); len(entries) != 0 {
		t.Errorf("rows before the header anchor should be ignored, got %v", entries)
	}
}

func TestExcelSerialToDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"45000", "2023-03-15"},
		{"2", "1900-01-01"},
		{"45000.75", "2023-03-15"},
		{"2024年", "2024年"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := excelSerialToDate(tt.value); got != tt.want {
			t.Errorf("excelSerialToDate(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
