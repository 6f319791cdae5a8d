package row

import "testing"

func TestPadShortText(t *testing.T) {
	got := Pad("abc", 6)
	if got != "abc   " {
		t.Fatalf("expected padded text, got %q", got)
	}
}

func TestPadTruncatesLongText(t *testing.T) {
	got := Pad("abcdefgh", 4)
	if got != "abcd" {
		t.Fatalf("expected truncated text, got %q", got)
	}
}

func TestPadZeroWidth(t *testing.T) {
	if got := Pad("abc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestTruncateLeavesShortTextAlone(t *testing.T) {
	if got := Truncate("ab", 5); got != "ab" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestCellsCountsWideRunes(t *testing.T) {
	if got := Cells("日本"); got != 4 {
		t.Fatalf("expected width 4 for wide runes, got %d", got)
	}
}

func TestJoinPadsToWidth(t *testing.T) {
	got := Join([]string{"a", "b"}, ":", 5)
	if got != "a:b  " {
		t.Fatalf("expected joined padded row, got %q", got)
	}
}
