package tui

import "github.com/charmbracelet/bubbles/key"

type galleryKeys struct {
	Add, Edit, Open, Delete, Favorites key.Binding
	NextGroup, PrevGroup               key.Binding
	ChipLeft, ChipRight, ChipToggle    key.Binding
	Clear, Quit                        key.Binding
}

func newGalleryKeys() galleryKeys {
	return galleryKeys{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Favorites:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites")),
		NextGroup:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "group")),
		PrevGroup:  key.NewBinding(key.WithKeys("shift+tab")),
		ChipLeft:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "chip")),
		ChipRight:  key.NewBinding(key.WithKeys("right", "l")),
		ChipToggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "filter")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k galleryKeys) short() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Favorites, k.NextGroup, k.ChipLeft, k.ChipToggle, k.Clear}
}

type editorKeys struct {
	Next, Prev, Save, Delete, Cancel, Cycle, Toggle, Pick key.Binding
}

func newEditorKeys() editorKeys {
	return editorKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Cycle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "option")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "browse")),
	}
}

func helpLine(bindings ...key.Binding) string {
	var out string
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += h.Key + " " + h.Desc
	}
	return helpStyle.Render(out)
}
