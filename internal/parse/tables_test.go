package parse

import (
	"reflect"
	"testing"
)

func TestParseGenericTables(t *testing.T) {
	rows := [][]string{
		{"", "コード表の説明"},
		{"", "2001.競馬場コード"},
		{"", "", "コード", "名称", "バイト数", "説明"},
		{"", "コード", "名称"},
		{"", "00", "未設定"},
		{"", "", "01", "", "札幌"},
		{"", "2002.性別コード"},
		{"", "", "コード", "名称", "バイト数"},
		{"", "区分", "値", "意味", "備考"},
		{"", "1", "牡", "オス", ""},
	}

	tables := ParseGenericTables(rows)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	first := tables[0]
	if first.Title != "2001.競馬場コード" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if !reflect.DeepEqual(first.Header, []string{"コード", "名称"}) {
		t.Errorf("unexpected header %v", first.Header)
	}
	wantRows := [][]string{
		{"00", "未設定"},
		{"01", "", "札幌"},
	}
	if !reflect.DeepEqual(first.Rows, wantRows) {
		t.Errorf("unexpected rows %v", first.Rows)
	}

	second := tables[1]
	if second.Title != "2002.性別コード" {
		t.Errorf("unexpected title %q", second.Title)
	}
	want := []string{"コード", "名称", "意味", "備考"}
	if !reflect.DeepEqual(second.Header, want) {
		t.Errorf("expected base columns spliced into wide header, got %v", second.Header)
	}
	if len(second.Rows) != 1 || second.Rows[0][0] != "1" {
		t.Errorf("unexpected rows %v", second.Rows)
	}
}

func TestIsTableLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"2001.競馬場コード", true},
		{"1.はじめに", true},
		{"コード", false},
		{"2001", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isTableLabel(tt.label); got != tt.want {
			t.Errorf("isTableLabel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
