package ui

import (
	"github.com/atomicstack/lcdmenu/internal/command"
	tea "github.com/charmbracelet/bubbletea"
)

// commandForKey maps a terminal key press onto the single-byte command set.
// Keys without a mapping are ignored by the model.
func commandForKey(msg tea.KeyMsg) (byte, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return command.Enter, true
	case tea.KeyEsc:
		return command.Back, true
	case tea.KeyUp:
		return command.Up, true
	case tea.KeyDown:
		return command.Down, true
	case tea.KeyLeft:
		return command.Left, true
	case tea.KeyRight:
		return command.Right, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return command.Backspace, true
	case tea.KeyCtrlU:
		return command.Clear, true
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return 0, false
		}
		r := msg.Runes[0]
		if r < 0x20 || r > 0x7e {
			return 0, false
		}
		return byte(r), true
	}
	return 0, false
}
