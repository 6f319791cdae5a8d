package item

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// Widget is one value-holding segment of a multi-widget item. Up and Down
// adjust the value and report whether anything changed.
type Widget interface {
	Value() string
	Render() string
	Up() bool
	Down() bool
}

// WidgetItem lines up several widgets in one row. While editing, left/right
// select the active widget, up/down adjust it, and back commits the
// materialized values in widget order.
type WidgetItem struct {
	Base
	widgets  []Widget
	active   int
	callback func(values []string)
}

func NewWidgetItem(text string, widgets []Widget, callback func([]string)) *WidgetItem {
	return &WidgetItem{Base: NewBase(text), widgets: widgets, callback: callback}
}

// Values materializes every widget value in order.
func (it *WidgetItem) Values() []string {
	values := make([]string, len(it.widgets))
	for i, w := range it.widgets {
		values[i] = w.Value()
	}
	return values
}

func (it *WidgetItem) Draw(d display.Surface, row int) {
	segments := make([]string, len(it.widgets))
	for i, w := range it.widgets {
		segments[i] = w.Render()
	}
	d.DrawItem(row, it.Text(), ':', strings.Join(segments, " "))
}

func (it *WidgetItem) Process(d display.Surface, cmd byte) bool {
	switch cmd {
	case command.Enter:
		return it.enter(d)
	case command.Back:
		return it.back(d)
	case command.Left:
		return it.move(d, -1)
	case command.Right:
		return it.move(d, 1)
	case command.Up:
		return it.adjust(d, true)
	case command.Down:
		return it.adjust(d, false)
	default:
		return false
	}
}

func (it *WidgetItem) enter(d display.Surface) bool {
	if d.EditMode() || len(it.widgets) == 0 {
		return false
	}
	it.active = 0
	it.Draw(d, d.CursorRow())
	d.SetEditMode(true)
	d.ResetBlinker(it.activeColumn(d))
	d.DrawBlinker()
	events.Item.EnterEdit(it.Text(), strings.Join(it.Values(), " "))
	return true
}

func (it *WidgetItem) back(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	d.ClearBlinker()
	d.SetEditMode(false)
	it.active = 0
	it.Draw(d, d.CursorRow())
	values := it.Values()
	events.Item.Commit(it.Text(), values)
	if it.callback != nil {
		it.callback(values)
	}
	return true
}

// move selects a neighbouring widget, clamped to the ends.
func (it *WidgetItem) move(d display.Surface, delta int) bool {
	if !d.EditMode() {
		return false
	}
	it.active = clamp(it.active+delta, 0, len(it.widgets)-1)
	d.ResetBlinker(it.activeColumn(d))
	return true
}

func (it *WidgetItem) adjust(d display.Surface, up bool) bool {
	if !d.EditMode() {
		return false
	}
	w := it.widgets[it.active]
	changed := false
	if up {
		changed = w.Up()
	} else {
		changed = w.Down()
	}
	if changed {
		it.Draw(d, d.CursorRow())
	}
	return true
}

// activeColumn projects the start of the active widget segment onto the
// display, clamped to the drawable area.
func (it *WidgetItem) activeColumn(d display.Surface) int {
	col := len(it.Text()) + 2
	for i := 0; i < it.active; i++ {
		col += len([]rune(it.widgets[i].Render())) + 1
	}
	return clamp(col, len(it.Text())+2, d.Cols()-2)
}

// IntWidget steps an integer through [min, max].
type IntWidget struct {
	value, min, max, step int
	format                string
}

func NewIntWidget(value, min, max, step int, format string) *IntWidget {
	if format == "" {
		format = "%d"
	}
	if step <= 0 {
		step = 1
	}
	return &IntWidget{value: value, min: min, max: max, step: step, format: format}
}

func (w *IntWidget) Value() string { return fmt.Sprintf("%d", w.value) }

func (w *IntWidget) Render() string { return fmt.Sprintf(w.format, w.value) }

func (w *IntWidget) Up() bool {
	next := w.value + w.step
	if next > w.max {
		next = w.max
	}
	changed := next != w.value
	w.value = next
	return changed
}

func (w *IntWidget) Down() bool {
	next := w.value - w.step
	if next < w.min {
		next = w.min
	}
	changed := next != w.value
	w.value = next
	return changed
}

// ChoiceWidget cycles through a fixed set of options.
type ChoiceWidget struct {
	choices []string
	index   int
}

func NewChoiceWidget(choices []string) *ChoiceWidget {
	return &ChoiceWidget{choices: choices}
}

func (w *ChoiceWidget) Value() string {
	if len(w.choices) == 0 {
		return ""
	}
	return w.choices[w.index]
}

func (w *ChoiceWidget) Render() string { return w.Value() }

func (w *ChoiceWidget) Up() bool {
	if len(w.choices) < 2 {
		return false
	}
	w.index = (w.index + 1) % len(w.choices)
	return true
}

func (w *ChoiceWidget) Down() bool {
	if len(w.choices) < 2 {
		return false
	}
	w.index = (w.index - 1 + len(w.choices)) % len(w.choices)
	return true
}
