package methods

import (
	"reflect"
	"testing"
)

func TestIndex(t *testing.T) {
	if got := Index("JVInit"); got != 0 {
		t.Errorf("expected JVInit first, got %d", got)
	}
	if got := Index("JVWatchEventClose"); got != len(Names)-1 {
		t.Errorf("expected JVWatchEventClose last, got %d", got)
	}
	if got := Index("JVUnknown"); got != len(Names) {
		t.Errorf("unknown names sort after known ones, got %d", got)
	}
	if !IsName("JVGets") || IsName("jvgets") {
		t.Errorf("IsName should match exact names only")
	}
}

func TestNamesInText(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"JVMVCheckWithTypeの呼び出し", []string{"JVMVCheck", "JVMVCheckWithType"}},
		{"JVMVPlay／JVMVPlayWithType", []string{"JVMVPlay", "JVMVPlayWithType"}},
		{"JVOpenとJVInitの順序", []string{"JVInit", "JVOpen"}},
		{"JVCourseFile2", []string{"JVCourseFile", "JVCourseFile2"}},
		{"該当するメソッドなし", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := NamesInText(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NamesInText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
