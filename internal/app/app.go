package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/item"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/atomicstack/lcdmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Cols       int
	Rows       int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if cfg.Verbose {
		logging.SetTraceEnabled(true)
	}
	surface := display.NewVirtual(cfg.Cols, cfg.Rows)
	nav := menu.New(surface, demoItems())
	model := ui.NewModel(surface, nav, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// demoItems builds a menu tree exercising every item kind. Callbacks only
// emit trace events; a real integration would hook hardware here.
func demoItems() []item.Item {
	network := []item.Item{
		item.NewInput("SSID", "", func(v string) {
			events.Item.Commit("SSID", []string{v})
		}),
		item.NewInput("Pass", "", func(v string) {
			events.Item.Commit("Pass", []string{v})
		}),
		item.NewToggle("DHCP", nil),
	}
	clock := item.NewWidgetItem("Time", []item.Widget{
		item.NewIntWidget(12, 0, 23, 1, "%02d"),
		item.NewIntWidget(0, 0, 59, 1, "%02d"),
	}, func(values []string) {
		events.Item.Commit("Time", values)
	})
	settings := []item.Item{
		item.NewToggle("Backlight", nil),
		item.NewList("Color", []string{"Red", "Green", "Blue", "White"}, nil),
		item.NewProgress("Contrast", 50, nil),
		clock,
	}
	contrast := settings[2].(*item.Progress)
	contrast.SetMapping(func(v uint16) string {
		return fmt.Sprintf("%d%%", int(v)/10)
	})
	return []item.Item{
		item.NewInput("Name", "", func(v string) {
			events.Item.Commit("Name", []string{v})
		}),
		item.NewSubmenu("Network", network),
		item.NewSubmenu("Settings", settings),
		item.NewCommand("Reboot", func() {
			events.Item.Command("Reboot")
		}),
	}
}
