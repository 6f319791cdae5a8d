// Package item implements the menu entry kinds. Every entry is a variant of
// the Item interface, selected at construction time: the navigator feeds one
// command byte at a time into the focused item and falls back to its own
// handling when the item reports the command unhandled.
package item

import (
	"github.com/atomicstack/lcdmenu/internal/display"
)

// Item is the polymorphic contract shared by all menu entry kinds.
//
// Process interprets a single command byte and reports whether the item
// consumed it. Unhandled commands bubble up to the navigator, which may give
// them a different meaning (menu movement, leaving a submenu). Boundary
// conditions inside an item (cursor at either end, delete on empty) are
// deliberately no-op-but-handled rather than errors.
type Item interface {
	Text() string
	Process(d display.Surface, cmd byte) bool
	Draw(d display.Surface, row int)
}

// Callback receives the final value when an edit session commits.
type Callback func(value string)

// Base carries the display label shared by every item kind.
type Base struct {
	text string
}

// NewBase wraps a label for embedding in concrete items.
func NewBase(text string) Base {
	return Base{text: text}
}

func (b Base) Text() string { return b.text }

// Draw renders the bare label. Variants with a value column override this.
func (b Base) Draw(d display.Surface, row int) {
	d.DrawRow(row, b.text)
}

// Process reports every command unhandled. Variants override what they use.
func (b Base) Process(d display.Surface, cmd byte) bool {
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
