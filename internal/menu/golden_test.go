package menu

import (
	"testing"

	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/item"
	"github.com/atomicstack/lcdmenu/internal/testutil"
)

func TestRenderGolden(t *testing.T) {
	d := display.NewVirtual(16, 4)
	m := New(d, []item.Item{
		item.NewInput("Name", "alice", nil),
		item.NewToggle("WiFi", nil),
		item.NewCommand("Reboot", nil),
	})

	testutil.AssertGolden(t, "menu_home.golden", d.String()+"\n")

	if !m.Process(command.Down) {
		t.Fatalf("expected down to be handled")
	}
	testutil.AssertGolden(t, "menu_home_down.golden", d.String()+"\n")
}

func TestRenderGoldenScrolled(t *testing.T) {
	d := display.NewVirtual(12, 2)
	m := New(d, []item.Item{
		item.NewCommand("One", nil),
		item.NewCommand("Two", nil),
		item.NewCommand("Three", nil),
		item.NewCommand("Four", nil),
		item.NewCommand("Five", nil),
	})

	m.Process(command.Down)
	m.Process(command.Down)

	testutil.AssertGolden(t, "menu_scroll.golden", d.String()+"\n")
}
