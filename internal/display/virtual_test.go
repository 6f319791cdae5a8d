package display

import (
	"strings"
	"testing"
)

func TestDrawItemPlacesValueAfterSeparator(t *testing.T) {
	v := NewVirtual(16, 2)
	v.DrawItem(0, "Name", ':', "abc")
	line := v.Line(0)
	if !strings.HasPrefix(line, " Name:abc") {
		t.Fatalf("unexpected row contents %q", line)
	}
	if len([]rune(line)) != 16 {
		t.Fatalf("expected line width 16, got %d", len([]rune(line)))
	}
	// Value region must begin at column len(label)+2.
	if []rune(line)[6] != 'a' {
		t.Fatalf("expected value to start at column 6, got %q", line)
	}
}

func TestDrawRowBlanksPreviousContents(t *testing.T) {
	v := NewVirtual(12, 1)
	v.DrawRow(0, "long contents")
	v.DrawRow(0, "x")
	line := v.Line(0)
	if !strings.HasPrefix(line, " x ") {
		t.Fatalf("expected stale cells blanked, got %q", line)
	}
}

func TestDrawSelectorMovesGlyphAndCursorRow(t *testing.T) {
	v := NewVirtual(10, 3)
	v.DrawSelector(1, false)
	if v.CursorRow() != 1 {
		t.Fatalf("expected cursor row 1, got %d", v.CursorRow())
	}
	if []rune(v.Line(1))[0] != '>' {
		t.Fatalf("expected selector glyph on row 1, got %q", v.Line(1))
	}
	v.DrawSelector(2, true)
	if []rune(v.Line(1))[0] != ' ' {
		t.Fatalf("expected old selector erased, got %q", v.Line(1))
	}
	if []rune(v.Line(2))[0] != '*' {
		t.Fatalf("expected edit selector glyph, got %q", v.Line(2))
	}
}

func TestIndicators(t *testing.T) {
	v := NewVirtual(8, 3)
	v.DrawUpIndicator()
	v.DrawDownIndicator()
	if []rune(v.Line(0))[7] != '^' {
		t.Fatalf("expected up indicator, got %q", v.Line(0))
	}
	if []rune(v.Line(2))[7] != 'v' {
		t.Fatalf("expected down indicator, got %q", v.Line(2))
	}
}

func TestBlinkerClampAndVisibility(t *testing.T) {
	v := NewVirtual(10, 2)
	v.ResetBlinker(42)
	if v.BlinkerPosition() != 9 {
		t.Fatalf("expected blinker clamped to 9, got %d", v.BlinkerPosition())
	}
	v.ResetBlinker(-3)
	if v.BlinkerPosition() != 0 {
		t.Fatalf("expected blinker clamped to 0, got %d", v.BlinkerPosition())
	}
	if v.BlinkerVisible() {
		t.Fatalf("blinker should start hidden")
	}
	v.DrawBlinker()
	if !v.BlinkerVisible() {
		t.Fatalf("expected blinker visible after DrawBlinker")
	}
	v.ClearBlinker()
	if v.BlinkerVisible() {
		t.Fatalf("expected blinker hidden after ClearBlinker")
	}
}
