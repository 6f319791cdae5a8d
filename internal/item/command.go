package item

import (
	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// Command invokes a niladic callback when entered. It renders as a bare
// label and leaves every other command to the navigator.
type Command struct {
	Base
	callback func()
}

func NewCommand(text string, callback func()) *Command {
	return &Command{Base: NewBase(text), callback: callback}
}

// SetCallback replaces the action bound to this item.
func (it *Command) SetCallback(callback func()) {
	it.callback = callback
}

func (it *Command) Process(d display.Surface, cmd byte) bool {
	if cmd != command.Enter {
		return false
	}
	if it.callback != nil {
		it.callback()
	}
	events.Item.Command(it.Text())
	return true
}
