package item

import (
	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// Input is an editable text entry.
//
//	┌────────────────────────────┐
//	│ > L A B E L : V A L U E    │
//	└────────────────────────────┘
//
// While editing, three coupled positions are maintained: the logical cursor
// index into the value, the view offset of the first visible character, and
// the blinker column projected onto the display. The view offset slides by
// at most one column per single-character operation; only entering edit mode
// jumps it straight to the tail window.
type Input struct {
	Base
	value []rune

	// cursor is the index of the character to be edited, in [0, len(value)].
	// len(value) means "append at end".
	cursor int
	// view is the index of the first visible character. Zero whenever the
	// whole value fits the visible area.
	view int

	callback Callback
}

// NewInput constructs an editable item. The callback may be nil; it is
// invoked with the final value once per edit session, on exit.
func NewInput(text, value string, callback Callback) *Input {
	return &Input{Base: NewBase(text), value: []rune(value), callback: callback}
}

// Value returns the current text content.
func (it *Input) Value() string { return string(it.value) }

// SetValue replaces the content outside an edit session.
func (it *Input) SetValue(value string) {
	it.value = []rune(value)
}

// Cursor returns the logical cursor index.
func (it *Input) Cursor() int { return it.cursor }

// ViewOffset returns the index of the first visible character.
func (it *Input) ViewOffset() int { return it.view }

// viewSize is the number of visible value characters: the display width
// minus the label, the selector-and-separator gutter, and the indicator
// column. Derived on every call so display or label changes never leave a
// stale cached width.
func (it *Input) viewSize(d display.Surface) int {
	return d.Cols() - (len(it.Text()) + 2) - 1
}

// constrainBlinker clamps a blinker column so it can neither enter the label
// gutter nor escape past the end of the value or the right edge.
func (it *Input) constrainBlinker(d display.Surface, col int) int {
	lb := len(it.Text()) + 2
	ub := clamp(lb+len(it.value), lb, d.Cols()-2)
	return clamp(col, lb, ub)
}

func (it *Input) blinkerColumn() int {
	return len(it.Text()) + 2 + it.cursor - it.view
}

func (it *Input) Draw(d display.Surface, row int) {
	size := it.viewSize(d)
	if size < 0 {
		size = 0
	}
	// Re-derive the slice bounds defensively: the display width may have
	// changed since the view offset was last reconciled.
	start := clamp(it.view, 0, len(it.value))
	end := clamp(start+size, start, len(it.value))
	d.DrawItem(row, it.Text(), ':', string(it.value[start:end]))
}

func (it *Input) Process(d display.Surface, cmd byte) bool {
	if command.IsPrintable(cmd) {
		return it.typeChar(d, rune(cmd))
	}
	switch cmd {
	case command.Enter:
		return it.enter(d)
	case command.Back:
		return it.back(d)
	case command.Up, command.Down:
		// Swallowed while editing so the navigator cannot move away from
		// an open edit session.
		return d.EditMode()
	case command.Left:
		return it.left(d)
	case command.Right:
		return it.right(d)
	case command.Backspace:
		return it.backspace(d)
	case command.Clear:
		return it.clear(d)
	default:
		return false
	}
}

// enter starts an edit session with the cursor at the end of the value.
// Reported unhandled when already editing, letting an enclosing menu treat
// the same key as confirm-and-move-on.
func (it *Input) enter(d display.Surface) bool {
	if d.EditMode() {
		return false
	}
	it.cursor = len(it.value)
	if size := it.viewSize(d); it.cursor > size {
		// No window was established before entry, so jump straight to the
		// tail instead of scrolling one step at a time.
		it.view = len(it.value) - (size - 1)
	}
	it.Draw(d, d.CursorRow())
	d.SetEditMode(true)
	d.ResetBlinker(it.constrainBlinker(d, it.blinkerColumn()))
	d.DrawBlinker()
	events.Item.EnterEdit(it.Text(), string(it.value))
	return true
}

// back ends the edit session and commits the current value. The row is
// redrawn before the callback runs so any external side effect observes the
// final displayed state.
func (it *Input) back(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	d.ClearBlinker()
	d.SetEditMode(false)
	it.cursor = 0
	it.view = 0
	it.Draw(d, d.CursorRow())
	events.Item.ExitEdit(it.Text(), string(it.value))
	if it.callback != nil {
		it.callback(string(it.value))
	}
	return true
}

func (it *Input) left(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	if it.cursor == 0 {
		return true
	}
	it.cursor--
	if it.cursor < it.view {
		it.view--
	}
	it.Draw(d, d.CursorRow())
	d.ResetBlinker(it.constrainBlinker(d, it.blinkerColumn()))
	events.Item.Cursor(it.Text(), it.cursor, it.view)
	return true
}

func (it *Input) right(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	if it.cursor == len(it.value) {
		return true
	}
	it.cursor++
	it.reconcileView(d)
	it.Draw(d, d.CursorRow())
	d.ResetBlinker(it.constrainBlinker(d, it.blinkerColumn()))
	events.Item.Cursor(it.Text(), it.cursor, it.view)
	return true
}

// reconcileView pulls the window forward until the cursor is inside it, and
// pins it to the head whenever the whole value fits the visible area. Called
// after every cursor increase; decreases slide by one step in their handlers.
func (it *Input) reconcileView(d display.Surface) {
	size := it.viewSize(d)
	if it.cursor > it.view+size-1 {
		it.view = it.cursor - (size - 1)
	}
	if len(it.value) <= size {
		it.view = 0
	}
}

func (it *Input) backspace(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	if len(it.value) == 0 || it.cursor == 0 {
		return true
	}
	it.value = append(it.value[:it.cursor-1], it.value[it.cursor:]...)
	it.cursor--
	if it.cursor < it.view {
		it.view--
	}
	it.reconcileView(d)
	it.Draw(d, d.CursorRow())
	d.ResetBlinker(it.constrainBlinker(d, it.blinkerColumn()))
	events.Item.Backspace(it.Text(), string(it.value))
	return true
}

func (it *Input) typeChar(d display.Surface, ch rune) bool {
	if !d.EditMode() {
		return false
	}
	next := make([]rune, 0, len(it.value)+1)
	next = append(next, it.value[:it.cursor]...)
	next = append(next, ch)
	next = append(next, it.value[it.cursor:]...)
	it.value = next
	it.cursor++
	it.reconcileView(d)
	it.Draw(d, d.CursorRow())
	d.ResetBlinker(it.constrainBlinker(d, it.blinkerColumn()))
	events.Item.TypeChar(it.Text(), ch)
	return true
}

func (it *Input) clear(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	it.value = nil
	it.cursor = 0
	it.view = 0
	it.Draw(d, d.CursorRow())
	d.ResetBlinker(it.constrainBlinker(d, len(it.Text())+2))
	events.Item.Clear(it.Text())
	return true
}
