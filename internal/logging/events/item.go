package events

import "github.com/atomicstack/lcdmenu/internal/logging"

type ItemTracer struct{}

var Item = ItemTracer{}

func (ItemTracer) EnterEdit(label, value string) {
	logging.Trace("item.edit.enter", map[string]interface{}{"label": label, "value": value})
}

func (ItemTracer) ExitEdit(label, value string) {
	logging.Trace("item.edit.exit", map[string]interface{}{"label": label, "value": value})
}

func (ItemTracer) TypeChar(label string, ch rune) {
	logging.Trace("item.edit.type", map[string]interface{}{"label": label, "char": string(ch)})
}

func (ItemTracer) Backspace(label, value string) {
	logging.Trace("item.edit.backspace", map[string]interface{}{"label": label, "value": value})
}

func (ItemTracer) Clear(label string) {
	logging.Trace("item.edit.clear", map[string]interface{}{"label": label})
}

func (ItemTracer) Cursor(label string, cursor, view int) {
	logging.Trace("item.edit.cursor", map[string]interface{}{"label": label, "cursor": cursor, "view": view})
}

func (ItemTracer) Command(label string) {
	logging.Trace("item.command", map[string]interface{}{"label": label})
}

func (ItemTracer) Toggle(label string, on bool) {
	logging.Trace("item.toggle", map[string]interface{}{"label": label, "on": on})
}

func (ItemTracer) Select(label, choice string, index int) {
	logging.Trace("item.select", map[string]interface{}{"label": label, "choice": choice, "index": index})
}

func (ItemTracer) Progress(label string, value uint16) {
	logging.Trace("item.progress", map[string]interface{}{"label": label, "value": value})
}

func (ItemTracer) Commit(label string, values []string) {
	logging.Trace("item.commit", map[string]interface{}{"label": label, "values": values})
}
