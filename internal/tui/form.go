package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/wardrobe/internal/editor"
	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
	"github.com/idilsaglam/wardrobe/internal/thumb"
)

type field int

const (
	fieldImage field = iota
	fieldName
	fieldType
	fieldSeason
	fieldStyle
	fieldColor
	fieldFavorite
	fieldCount
)

const (
	previewCols = 24
	previewRows = 8
)

func (f field) group() (model.Group, bool) {
	switch f {
	case fieldType:
		return model.GroupType, true
	case fieldSeason:
		return model.GroupSeason, true
	case fieldStyle:
		return model.GroupStyle, true
	case fieldColor:
		return model.GroupColor, true
	}
	return "", false
}

func (f field) label() string {
	if g, ok := f.group(); ok {
		return groupTitle(g)
	}
	switch f {
	case fieldImage:
		return "Image"
	case fieldName:
		return "Name"
	}
	return "Favorite"
}

// form is the modal's widget state. Values live in the inputs until synced into
// the editor controller on save.
type form struct {
	catalog  gallery.Catalog
	inputs   []textinput.Model // one per field before fieldFavorite
	favorite bool
	focus    field
	err      string
}

func newForm(catalog gallery.Catalog) form {
	f := form{catalog: catalog, inputs: make([]textinput.Model, fieldFavorite)}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 200
		f.inputs[i] = ti
	}
	f.inputs[fieldImage].Placeholder = "path to photo (enter to browse)"
	f.inputs[fieldName].Placeholder = "optional"
	for fl := fieldType; fl <= fieldColor; fl++ {
		if catalog.Variant == gallery.VariantFixed {
			f.inputs[fl].Placeholder = "←/→ to choose"
		} else {
			f.inputs[fl].Placeholder = "free text"
		}
	}
	return f
}

// load copies the controller's form into the widgets and focuses the first field.
func (f *form) load(c *editor.Controller) {
	f.inputs[fieldImage].SetValue(c.PendingFile())
	f.inputs[fieldName].SetValue(c.Form.Name)
	f.inputs[fieldType].SetValue(c.Form.Type)
	f.inputs[fieldSeason].SetValue(c.Form.Season)
	f.inputs[fieldStyle].SetValue(c.Form.Style)
	f.inputs[fieldColor].SetValue(c.Form.Color)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	f.favorite = c.Form.Favorite
	f.err = ""
	f.setFocus(fieldImage)
}

// sync writes the widget values back into the controller.
func (f form) sync(c *editor.Controller) {
	c.Form = editor.Form{
		Name:     f.inputs[fieldName].Value(),
		Type:     strings.TrimSpace(f.inputs[fieldType].Value()),
		Season:   strings.TrimSpace(f.inputs[fieldSeason].Value()),
		Style:    strings.TrimSpace(f.inputs[fieldStyle].Value()),
		Color:    strings.TrimSpace(f.inputs[fieldColor].Value()),
		Favorite: f.favorite,
	}
}

func (f form) imagePath() string { return strings.TrimSpace(f.inputs[fieldImage].Value()) }

func (f *form) setFocus(to field) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = (to%fieldCount + fieldCount) % fieldCount
	if f.focus < fieldFavorite {
		f.inputs[f.focus].Focus()
	}
}

// fixedTag reports whether the focused field is an option cycler rather than a text input.
func (f form) fixedTag() bool {
	_, ok := f.focus.group()
	return ok && f.catalog.Variant == gallery.VariantFixed
}

// cycle steps the focused fixed-option field through "" and the option list.
func (f *form) cycle(delta int) {
	g, ok := f.focus.group()
	if !ok {
		return
	}
	opts := append([]string{""}, f.catalog.Options[g]...)
	cur := slices.Index(opts, f.inputs[f.focus].Value())
	if cur < 0 {
		cur = 0
	}
	next := ((cur+delta)%len(opts) + len(opts)) % len(opts)
	f.inputs[f.focus].SetValue(opts[next])
}

func (f *form) updateInput(msg tea.Msg) tea.Cmd {
	if f.focus >= fieldFavorite || f.fixedTag() {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view(c *editor.Controller, saving bool, width int) string {
	title := "Add Item"
	if c.State() == editor.Editing {
		title = "Edit Item"
	}

	var rows []string
	rows = append(rows, titleStyle.Render(title), "")

	preview := thumb.Placeholder(previewCols, previewRows)
	if p := c.Preview(); p != "" {
		preview = thumb.Render(p, previewCols, previewRows)
	}
	rows = append(rows, preview, "")

	for fl := field(0); fl < fieldCount; fl++ {
		lbl := labelStyle.Render(fl.label())
		if fl == f.focus {
			lbl = labelFocusedStyle.Render(fl.label())
		}
		var val string
		switch {
		case fl == fieldFavorite:
			val = mutedStyle.Render(heartEmpty + " no")
			if f.favorite {
				val = favStyle.Render(heart + " yes")
			}
		case f.catalog.Variant == gallery.VariantFixed && fl >= fieldType && fl <= fieldColor:
			v := f.inputs[fl].Value()
			if v == "" {
				v = mutedStyle.Render("(none)")
			}
			val = "‹ " + v + " ›"
		default:
			val = f.inputs[fl].View()
		}
		rows = append(rows, lbl+val)
	}

	rows = append(rows, "")
	switch {
	case saving:
		rows = append(rows, mutedStyle.Render("Saving…"))
	case f.err != "":
		rows = append(rows, errorStyle.Render(f.err))
	}

	k := newEditorKeys()
	help := []key.Binding{k.Next, k.Save, k.Cancel}
	if f.focus == fieldImage {
		help = append(help, k.Pick)
	}
	if f.fixedTag() {
		help = append(help, k.Cycle)
	}
	if f.focus == fieldFavorite {
		help = append(help, k.Toggle)
	}
	if c.ShowDelete() {
		help = append(help, k.Delete)
	}
	rows = append(rows, helpLine(help...))

	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return modalStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
