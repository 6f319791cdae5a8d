package ui

import (
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/atomicstack/lcdmenu/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// Model implements the Bubble Tea model for the character display menu.
type Model struct {
	surface *display.Virtual
	menu    *menu.Menu

	blink      cursor.Model
	blinkDirty bool

	width      int
	height     int
	showFooter bool
}

// NewModel wires a virtual surface and its navigator into a Bubble Tea model.
func NewModel(surface *display.Virtual, m *menu.Menu, showFooter bool) *Model {
	c := cursor.New()
	if styles.Blinker != nil {
		c.Style = *styles.Blinker
	}
	if styles.Row != nil {
		c.TextStyle = *styles.Row
	}
	c.SetChar(" ")
	return &Model{
		surface:    surface,
		menu:       m,
		blink:      c,
		showFooter: showFooter,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.blink.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var blinkCmd tea.Cmd
	m.blink, blinkCmd = m.blink.Update(msg)
	if blinkCmd != nil {
		cmds = append(cmds, blinkCmd)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		events.App.Quit()
		return tea.Quit
	}
	code, ok := commandForKey(msg)
	if !ok {
		return nil
	}
	m.menu.Process(code)
	if m.surface.EditMode() {
		m.blinkDirty = true
	}
	return nil
}

// finishUpdate holds the blinker solid for a beat after each keystroke so
// the caret is visible right where the edit landed.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.blinkDirty {
		m.blinkDirty = false
		m.blink.Blink = false
		if cmd := m.blink.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
