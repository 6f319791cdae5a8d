package events

import "github.com/atomicstack/lcdmenu/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Cursor(position int) {
	logging.Trace("menu.cursor", map[string]interface{}{"position": position})
}

func (MenuTracer) Scroll(top int) {
	logging.Trace("menu.scroll", map[string]interface{}{"top": top})
}

func (MenuTracer) Enter(label string) {
	logging.Trace("menu.enter", map[string]interface{}{"label": label})
}

func (MenuTracer) Back(depth int) {
	logging.Trace("menu.back", map[string]interface{}{"depth": depth})
}

func (MenuTracer) Command(name string, handled bool) {
	logging.Trace("menu.command", map[string]interface{}{"command": name, "handled": handled})
}
