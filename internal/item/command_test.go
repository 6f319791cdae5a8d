package item

import (
	"testing"

	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
)

func TestCommandEnterInvokesCallback(t *testing.T) {
	d := display.NewVirtual(16, 2)
	calls := 0
	it := NewCommand("Reboot", func() { calls++ })
	if !it.Process(d, command.Enter) {
		t.Fatalf("expected enter handled")
	}
	if calls != 1 {
		t.Fatalf("expected one callback invocation, got %d", calls)
	}
}

func TestCommandEnterWithoutCallbackStillHandled(t *testing.T) {
	d := display.NewVirtual(16, 2)
	it := NewCommand("Reboot", nil)
	if !it.Process(d, command.Enter) {
		t.Fatalf("expected enter handled even without callback")
	}
}

func TestCommandIgnoresOtherCommands(t *testing.T) {
	d := display.NewVirtual(16, 2)
	it := NewCommand("Reboot", func() { t.Fatalf("callback must not fire") })
	for _, code := range []byte{command.Up, command.Down, command.Left, command.Right, command.Back, command.Backspace, command.Clear, 'x'} {
		if it.Process(d, code) {
			t.Fatalf("expected code %d unhandled", code)
		}
	}
}

func TestCommandDrawsBareLabel(t *testing.T) {
	d := display.NewVirtual(16, 2)
	it := NewCommand("Reboot", nil)
	it.Draw(d, 0)
	if got := d.Line(0); got[1:7] != "Reboot" {
		t.Fatalf("expected label on row, got %q", got)
	}
}
