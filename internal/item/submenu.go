package item

// Submenu groups child items. The navigator recognises it through the
// Items capability and descends on enter; the item itself handles nothing.
type Submenu struct {
	Base
	items []Item
}

func NewSubmenu(text string, items []Item) *Submenu {
	return &Submenu{Base: NewBase(text), items: items}
}

// Items returns the child entries.
func (it *Submenu) Items() []Item { return it.items }
