package item

import (
	"strconv"

	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// MaxProgress is the inclusive upper bound of a Progress value.
const MaxProgress = 1000

// Progress holds a numeric value stepped with left/right while editing.
// An optional mapping function turns the raw value into display text
// (units, percentages, lookup tables).
type Progress struct {
	Base
	value    uint16
	step     uint16
	mapping  func(uint16) string
	callback func(uint16)
}

func NewProgress(text string, step uint16, callback func(uint16)) *Progress {
	if step == 0 {
		step = 1
	}
	return &Progress{Base: NewBase(text), step: step, callback: callback}
}

// SetMapping installs a display transform for the raw value.
func (it *Progress) SetMapping(mapping func(uint16) string) {
	it.mapping = mapping
}

// Value returns the raw progress value.
func (it *Progress) Value() uint16 { return it.value }

// SetValue sets the raw value, clamped to [0, MaxProgress].
func (it *Progress) SetValue(value uint16) {
	if value > MaxProgress {
		value = MaxProgress
	}
	it.value = value
}

func (it *Progress) valueText() string {
	if it.mapping != nil {
		return it.mapping(it.value)
	}
	return strconv.Itoa(int(it.value))
}

func (it *Progress) Draw(d display.Surface, row int) {
	d.DrawItem(row, it.Text(), ':', it.valueText())
}

func (it *Progress) Process(d display.Surface, cmd byte) bool {
	switch cmd {
	case command.Enter:
		return it.enter(d)
	case command.Back:
		return it.back(d)
	case command.Up, command.Down:
		return d.EditMode()
	case command.Left:
		return it.adjust(d, false)
	case command.Right:
		return it.adjust(d, true)
	default:
		return false
	}
}

func (it *Progress) enter(d display.Surface) bool {
	if d.EditMode() {
		return false
	}
	it.Draw(d, d.CursorRow())
	d.SetEditMode(true)
	d.ResetBlinker(len(it.Text()) + 2)
	d.DrawBlinker()
	events.Item.EnterEdit(it.Text(), it.valueText())
	return true
}

func (it *Progress) back(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	d.ClearBlinker()
	d.SetEditMode(false)
	it.Draw(d, d.CursorRow())
	events.Item.ExitEdit(it.Text(), it.valueText())
	if it.callback != nil {
		it.callback(it.value)
	}
	return true
}

// adjust moves the value by one step, clamped. Hitting a bound is a no-op
// that still counts as handled.
func (it *Progress) adjust(d display.Surface, up bool) bool {
	if !d.EditMode() {
		return false
	}
	next := int(it.value)
	if up {
		next += int(it.step)
	} else {
		next -= int(it.step)
	}
	it.value = uint16(clamp(next, 0, MaxProgress))
	it.Draw(d, d.CursorRow())
	events.Item.Progress(it.Text(), it.value)
	return true
}
