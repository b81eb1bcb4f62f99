package utils

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	if Truncate("hello", 10) != "hello" {
		t.Error("short string unchanged")
	}
	if Truncate("hello world", 5) != "hello..." {
		t.Errorf("got %s", Truncate("hello world", 5))
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
	if Truncate("競走馬マスタ", 3) != "競走馬..." {
		t.Errorf("got %s", Truncate("競走馬マスタ", 3))
	}
	if Truncate("競走馬", 3) != "競走馬" {
		t.Error("exact rune length unchanged")
	}
}
