// Package menu drives a stack of item lists over a display surface. One
// command byte is processed at a time: the focused item gets first refusal,
// and only commands it reports unhandled fall through to navigation.
package menu

import (
	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/item"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// submenuProvider is the capability an item exposes to let the navigator
// descend into it.
type submenuProvider interface {
	Items() []item.Item
}

// frame preserves the cursor and scroll position of one menu level so
// leaving a submenu restores the parent exactly as it was.
type frame struct {
	items  []item.Item
	cursor int
	top    int
}

// Menu is the navigation layer over a display surface.
type Menu struct {
	d     display.Surface
	stack []*frame
}

// New builds a menu over the given root items and draws the first screen.
func New(d display.Surface, items []item.Item) *Menu {
	m := &Menu{d: d, stack: []*frame{{items: items}}}
	m.Update()
	return m
}

func (m *Menu) current() *frame { return m.stack[len(m.stack)-1] }

// CurrentItem returns the focused item, or nil for an empty level.
func (m *Menu) CurrentItem() item.Item {
	f := m.current()
	if len(f.items) == 0 {
		return nil
	}
	return f.items[f.cursor]
}

// Depth returns how many levels deep the navigator currently is.
func (m *Menu) Depth() int { return len(m.stack) }

// Cursor returns the focused index within the current level.
func (m *Menu) Cursor() int { return m.current().cursor }

// Process routes one command byte. The focused item sees it first; commands
// it leaves unhandled become navigation. The return value reports whether
// anything consumed the command.
func (m *Menu) Process(cmd byte) bool {
	handled := false
	if it := m.CurrentItem(); it != nil {
		handled = it.Process(m.d, cmd)
	}
	if !handled {
		switch cmd {
		case command.Up:
			handled = m.up()
		case command.Down:
			handled = m.down()
		case command.Enter:
			handled = m.enter()
		case command.Back:
			handled = m.back()
		}
	}
	events.Menu.Command(command.Name(cmd), handled)
	return handled
}

// up moves the selection one row up, scrolling the window by one when the
// selection crosses its top edge. At the first item it is a handled no-op.
func (m *Menu) up() bool {
	f := m.current()
	if len(f.items) == 0 {
		return false
	}
	if f.cursor == 0 {
		return true
	}
	f.cursor--
	if f.cursor < f.top {
		f.top--
		events.Menu.Scroll(f.top)
	}
	m.Update()
	events.Menu.Cursor(f.cursor)
	return true
}

func (m *Menu) down() bool {
	f := m.current()
	if len(f.items) == 0 {
		return false
	}
	if f.cursor == len(f.items)-1 {
		return true
	}
	f.cursor++
	if f.cursor > f.top+m.d.Rows()-1 {
		f.top++
		events.Menu.Scroll(f.top)
	}
	m.Update()
	events.Menu.Cursor(f.cursor)
	return true
}

// enter descends into the focused item when it carries a submenu.
func (m *Menu) enter() bool {
	it := m.CurrentItem()
	if it == nil {
		return false
	}
	sub, ok := it.(submenuProvider)
	if !ok || len(sub.Items()) == 0 {
		return false
	}
	m.stack = append(m.stack, &frame{items: sub.Items()})
	m.Update()
	events.Menu.Enter(it.Text())
	return true
}

// back pops to the parent level. At the root it is unhandled so the caller
// can decide what leaving the whole menu means.
func (m *Menu) back() bool {
	if len(m.stack) == 1 {
		return false
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.Update()
	events.Menu.Back(len(m.stack))
	return true
}

// Update repaints the visible window: rows, selection glyph, and the scroll
// indicators in the last column.
func (m *Menu) Update() {
	f := m.current()
	rows := m.d.Rows()
	m.d.Clear()
	for r := 0; r < rows; r++ {
		idx := f.top + r
		if idx >= len(f.items) {
			break
		}
		f.items[idx].Draw(m.d, r)
	}
	m.d.DrawSelector(f.cursor-f.top, m.d.EditMode())
	if f.top > 0 {
		m.d.DrawUpIndicator()
	}
	if f.top+rows < len(f.items) {
		m.d.DrawDownIndicator()
	}
}
