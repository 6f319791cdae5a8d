package ui

import (
	"strings"

	"github.com/atomicstack/lcdmenu/internal/format/row"
	"github.com/charmbracelet/lipgloss"
)

const footerHint = "enter edit · arrows move · esc commit · ctrl+c quit"

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.surface.Rows())
	for r := 0; r < m.surface.Rows(); r++ {
		lines = append(lines, m.renderRow(r))
	}
	screen := strings.Join(lines, "\n")
	if styles.Frame != nil {
		screen = styles.Frame.Render(screen)
	}
	if m.showFooter {
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, m.footer())
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
	}
	return screen
}

// renderRow styles one grid line, splicing the blink cursor into the
// blinker cell while an edit session is open.
func (m *Model) renderRow(r int) string {
	line := m.surface.Line(r)
	style := styles.Row
	if !m.surface.BlinkerVisible() || r != m.surface.BlinkerRow() {
		return renderWith(style, line)
	}
	runes := []rune(line)
	col := m.surface.BlinkerPosition()
	if col < 0 || col >= len(runes) {
		return renderWith(style, line)
	}
	m.blink.SetChar(string(runes[col]))
	before := renderWith(style, string(runes[:col]))
	after := renderWith(style, string(runes[col+1:]))
	return before + m.blink.View() + after
}

func (m *Model) footer() string {
	hint := row.Truncate(footerHint, m.surface.Cols()+2)
	if m.surface.EditMode() {
		return renderWith(styles.EditMode, hint)
	}
	return renderWith(styles.Footer, hint)
}

func renderWith(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
