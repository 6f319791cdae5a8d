package ui

import (
	"testing"

	"github.com/atomicstack/lcdmenu/internal/command"
	tea "github.com/charmbracelet/bubbletea"
)

func TestCommandForKeyMapsNavigation(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want byte
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, command.Enter},
		{tea.KeyMsg{Type: tea.KeyEsc}, command.Back},
		{tea.KeyMsg{Type: tea.KeyUp}, command.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, command.Down},
		{tea.KeyMsg{Type: tea.KeyLeft}, command.Left},
		{tea.KeyMsg{Type: tea.KeyRight}, command.Right},
		{tea.KeyMsg{Type: tea.KeyBackspace}, command.Backspace},
		{tea.KeyMsg{Type: tea.KeyCtrlH}, command.Backspace},
		{tea.KeyMsg{Type: tea.KeyCtrlU}, command.Clear},
		{tea.KeyMsg{Type: tea.KeySpace}, ' '},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, 'a'},
	}
	for _, tc := range cases {
		got, ok := commandForKey(tc.msg)
		if !ok {
			t.Fatalf("expected mapping for %v", tc.msg)
		}
		if got != tc.want {
			t.Fatalf("key %v mapped to %d, want %d", tc.msg, got, tc.want)
		}
	}
}

func TestCommandForKeyRejectsUnmappedInput(t *testing.T) {
	unmapped := []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyRunes, Runes: []rune{'a', 'b'}},
		{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true},
		{Type: tea.KeyRunes, Runes: []rune{'é'}},
	}
	for _, msg := range unmapped {
		if _, ok := commandForKey(msg); ok {
			t.Fatalf("expected no mapping for %v", msg)
		}
	}
}
