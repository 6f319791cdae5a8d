package item

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/lcdmenu/internal/command"
	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// List selects one of a fixed set of choices. While editing, left/right
// cycle through the choices and typed characters jump to the best fuzzy
// match; back commits the selection.
type List struct {
	Base
	choices  []string
	index    int
	query    []rune
	callback func(index int, choice string)
}

func NewList(text string, choices []string, callback func(int, string)) *List {
	return &List{Base: NewBase(text), choices: choices, callback: callback}
}

// Index returns the selected choice index.
func (it *List) Index() int { return it.index }

// Choice returns the selected choice text.
func (it *List) Choice() string {
	if len(it.choices) == 0 {
		return ""
	}
	return it.choices[it.index]
}

// SetIndex selects a choice without invoking the callback.
func (it *List) SetIndex(index int) {
	if len(it.choices) == 0 {
		return
	}
	it.index = clamp(index, 0, len(it.choices)-1)
}

func (it *List) Draw(d display.Surface, row int) {
	d.DrawItem(row, it.Text(), ':', it.Choice())
}

func (it *List) Process(d display.Surface, cmd byte) bool {
	if command.IsPrintable(cmd) {
		return it.search(d, rune(cmd))
	}
	switch cmd {
	case command.Enter:
		return it.enter(d)
	case command.Back:
		return it.back(d)
	case command.Up, command.Down:
		return d.EditMode()
	case command.Left:
		return it.cycle(d, -1)
	case command.Right:
		return it.cycle(d, 1)
	case command.Backspace:
		return it.trimQuery(d)
	case command.Clear:
		return it.clearQuery(d)
	default:
		return false
	}
}

func (it *List) enter(d display.Surface) bool {
	if d.EditMode() {
		return false
	}
	it.query = nil
	it.Draw(d, d.CursorRow())
	d.SetEditMode(true)
	d.ResetBlinker(len(it.Text()) + 2)
	d.DrawBlinker()
	events.Item.EnterEdit(it.Text(), it.Choice())
	return true
}

func (it *List) back(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	d.ClearBlinker()
	d.SetEditMode(false)
	it.query = nil
	it.Draw(d, d.CursorRow())
	events.Item.ExitEdit(it.Text(), it.Choice())
	if it.callback != nil {
		it.callback(it.index, it.Choice())
	}
	return true
}

func (it *List) cycle(d display.Surface, delta int) bool {
	if !d.EditMode() {
		return false
	}
	if len(it.choices) == 0 {
		return true
	}
	it.index = (it.index + delta + len(it.choices)) % len(it.choices)
	it.query = nil
	it.Draw(d, d.CursorRow())
	events.Item.Select(it.Text(), it.Choice(), it.index)
	return true
}

// search accumulates typed characters and jumps to the best fuzzy match.
// An unmatched query keeps the current selection.
func (it *List) search(d display.Surface, ch rune) bool {
	if !d.EditMode() {
		return false
	}
	it.query = append(it.query, ch)
	it.applyQuery(d)
	return true
}

func (it *List) trimQuery(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	if len(it.query) == 0 {
		return true
	}
	it.query = it.query[:len(it.query)-1]
	if len(it.query) > 0 {
		it.applyQuery(d)
	}
	return true
}

func (it *List) clearQuery(d display.Surface) bool {
	if !d.EditMode() {
		return false
	}
	it.query = nil
	return true
}

func (it *List) applyQuery(d display.Surface) {
	if idx := bestMatchIndex(it.choices, string(it.query)); idx >= 0 && idx != it.index {
		it.index = idx
		it.Draw(d, d.CursorRow())
		events.Item.Select(it.Text(), it.Choice(), it.index)
	}
}

func bestMatchIndex(choices []string, query string) int {
	if query == "" || len(choices) == 0 {
		return -1
	}
	ranks := fuzzy.RankFindNormalizedFold(query, choices)
	best := -1
	bestDistance := 0
	for _, rank := range ranks {
		if best == -1 || rank.Distance < bestDistance {
			best = rank.OriginalIndex
			bestDistance = rank.Distance
		}
	}
	return best
}
