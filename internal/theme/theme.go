package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Screen   *lipgloss.Style
	Frame    *lipgloss.Style
	Row      *lipgloss.Style
	Blinker  *lipgloss.Style
	Header   *lipgloss.Style
	Footer   *lipgloss.Style
	EditMode *lipgloss.Style
}

var defaultStyles = Styles{
	Screen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("156")).Background(lipgloss.Color("22")),
	),
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("28")),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("156")),
	),
	Blinker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("156")).Blink(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	EditMode: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
