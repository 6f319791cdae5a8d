package item

import (
	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// Toggle flips between two states on enter and reports the new state to its
// callback. There is no edit session; the flip is immediate.
type Toggle struct {
	Base
	on       bool
	textOn   string
	textOff  string
	callback func(on bool)
}

func NewToggle(text string, callback func(bool)) *Toggle {
	return NewToggleWithText(text, "ON", "OFF", callback)
}

func NewToggleWithText(text, textOn, textOff string, callback func(bool)) *Toggle {
	return &Toggle{
		Base:     NewBase(text),
		textOn:   textOn,
		textOff:  textOff,
		callback: callback,
	}
}

// On reports the current state.
func (it *Toggle) On() bool { return it.on }

// SetOn sets the state without invoking the callback.
func (it *Toggle) SetOn(on bool) { it.on = on }

func (it *Toggle) stateText() string {
	if it.on {
		return it.textOn
	}
	return it.textOff
}

func (it *Toggle) Draw(d display.Surface, row int) {
	d.DrawItem(row, it.Text(), ':', it.stateText())
}

func (it *Toggle) Process(d display.Surface, cmd byte) bool {
	if cmd != command.Enter {
		return false
	}
	it.on = !it.on
	it.Draw(d, d.CursorRow())
	events.Item.Toggle(it.Text(), it.on)
	if it.callback != nil {
		it.callback(it.on)
	}
	return true
}
