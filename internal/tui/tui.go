package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/wardrobe/internal/app"
	"github.com/idilsaglam/wardrobe/internal/editor"
	"github.com/idilsaglam/wardrobe/internal/gallery"
)

// previewMsg carries a chosen file read for the live preview.
type previewMsg struct {
	session int
	path    string
	dataURL string
	err     error
}

// imageReadMsg carries the save-time read of the chosen file.
type imageReadMsg struct {
	session int
	path    string
	dataURL string
	err     error
}

// pendingDelete is the target of an open confirm dialog.
type pendingDelete struct {
	id         string
	fromEditor bool
}

type modelTUI struct {
	ctx    context.Context
	st     *app.State
	reader editor.ImageReader

	list  list.Model
	chips chipBar
	keys  galleryKeys
	ekeys editorKeys

	form    form
	session int // bumped on every open and close of the editor
	saving  bool
	picking bool
	picker  filepicker.Model
	confirm *pendingDelete

	status    string
	statusErr bool

	width, height int
}

func newModel(ctx context.Context, st *app.State, reader editor.ImageReader) modelTUI {
	l := list.New(nil, cardDelegate{}, 0, 0)
	l.SetShowTitle(true)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.KeyMap.Quit.SetEnabled(false)

	keys := newGalleryKeys()
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.short

	fp := filepicker.New()
	fp.AllowedTypes = []string{".png", ".jpg", ".jpeg", ".gif"}
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	m := modelTUI{
		ctx:    ctx,
		st:     st,
		reader: reader,
		list:   l,
		chips:  newChipBar(st.Catalog.ChipMode),
		keys:   keys,
		ekeys:  newEditorKeys(),
		form:   newForm(st.Catalog),
		picker: fp,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run starts the gallery and blocks until the user quits.
func Run(ctx context.Context, st *app.State, reader editor.ImageReader) error {
	p := tea.NewProgram(newModel(ctx, st, reader), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd { return nil }

// refresh re-derives the visible cards from the store and filters.
func (m *modelTUI) refresh() {
	v := m.st.View()
	items := make([]list.Item, 0, len(v.Cards))
	for _, c := range v.Cards {
		items = append(items, cardItem{card: c})
	}
	m.list.SetItems(items)
	m.list.Title = m.header(v)
}

func (m modelTUI) header(v gallery.View) string {
	favs := 0
	for _, c := range v.Cards {
		if c.Favorite {
			favs++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Wardrobe"),
		favStyle.Render(heart), favs,
		accentStyle.Render("Shown"), len(v.Cards),
		mutedStyle.Render("Total"), v.Total,
	)
}

func (m *modelTUI) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m modelTUI) selectedID() (string, bool) {
	it, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		return "", false
	}
	return it.card.ID, true
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case previewMsg:
		return m.onPreview(msg), nil
	case imageReadMsg:
		return m.onImageRead(msg), nil
	case tea.MouseMsg:
		return m.onMouse(msg), nil
	}

	if m.confirm != nil {
		if km, ok := msg.(tea.KeyMsg); ok {
			return m.updateConfirm(km)
		}
		return m, nil
	}
	if m.picking {
		return m.updatePicker(msg)
	}
	if m.st.Editor.Open() {
		if km, ok := msg.(tea.KeyMsg); ok {
			return m.updateEditor(km)
		}
		return m, m.form.updateInput(msg)
	}
	return m.updateGallery(msg)
}

func (m modelTUI) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	if km.String() == "esc" {
		m.setStatus("", false)
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Add):
		m.st.Editor.OpenAdd()
		m.session++
		m.form.load(m.st.Editor)
		m.setStatus("", false)
		return m, nil
	case key.Matches(km, m.keys.Open), key.Matches(km, m.keys.Edit):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		if err := m.st.Editor.OpenEdit(id); err != nil {
			m.setStatus(editor.Alert(err), true)
			m.refresh()
			return m, nil
		}
		m.session++
		m.form.load(m.st.Editor)
		m.setStatus("", false)
		return m, nil
	case key.Matches(km, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.confirm = &pendingDelete{id: id}
		}
		return m, nil
	case key.Matches(km, m.keys.Favorites):
		m.st.Filters.ToggleFavoriteOnly()
		m.refresh()
		return m, nil
	case key.Matches(km, m.keys.NextGroup):
		m.chips.nextGroup(1)
		return m, nil
	case key.Matches(km, m.keys.PrevGroup):
		m.chips.nextGroup(-1)
		return m, nil
	case key.Matches(km, m.keys.ChipLeft):
		m.chips.move(-1, m.st.Chips(m.chips.focused()))
		return m, nil
	case key.Matches(km, m.keys.ChipRight):
		m.chips.move(1, m.st.Chips(m.chips.focused()))
		return m, nil
	case key.Matches(km, m.keys.ChipToggle):
		if v, ok := m.chips.current(m.st.Chips(m.chips.focused())); ok {
			m.st.Filters.Select(m.chips.focused(), v)
			m.refresh()
		}
		return m, nil
	case key.Matches(km, m.keys.Clear):
		m.st.Filters.Clear()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateEditor(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		// Only cancel is honoured while the image is being read.
		if key.Matches(km, m.ekeys.Cancel) {
			m.closeEditor()
		}
		return m, nil
	}

	switch {
	case key.Matches(km, m.ekeys.Cancel):
		m.closeEditor()
		return m, nil
	case key.Matches(km, m.ekeys.Save):
		return m.save()
	case key.Matches(km, m.ekeys.Delete):
		if m.st.Editor.ShowDelete() {
			m.confirm = &pendingDelete{id: m.st.Editor.EditingID(), fromEditor: true}
		}
		return m, nil
	case key.Matches(km, m.ekeys.Next), key.Matches(km, m.ekeys.Prev):
		leaving := m.form.focus
		if key.Matches(km, m.ekeys.Next) {
			m.form.setFocus(m.form.focus + 1)
		} else {
			m.form.setFocus(m.form.focus - 1)
		}
		if leaving == fieldImage {
			return m, m.chooseImage()
		}
		return m, nil
	}

	switch m.form.focus {
	case fieldImage:
		if key.Matches(km, m.ekeys.Pick) {
			if m.form.imagePath() != "" {
				return m, m.chooseImage()
			}
			m.picking = true
			return m, m.picker.Init()
		}
	case fieldFavorite:
		if key.Matches(km, m.ekeys.Toggle) {
			m.form.favorite = !m.form.favorite
		}
		return m, nil
	}
	if m.form.fixedTag() {
		switch km.String() {
		case "left":
			m.form.cycle(-1)
		case "right":
			m.form.cycle(1)
		}
		return m, nil
	}
	return m, m.form.updateInput(km)
}

func (m *modelTUI) closeEditor() {
	m.st.Editor.Close()
	m.session++
	m.saving = false
	m.picking = false
	m.form.err = ""
}

// chooseImage records the typed path and starts reading it for the preview.
func (m *modelTUI) chooseImage() tea.Cmd {
	path := m.form.imagePath()
	if path == "" || path == m.st.Editor.PendingFile() {
		return nil
	}
	m.st.Editor.ChooseFile(path)
	return readPreview(m.ctx, m.reader, m.session, path)
}

func readPreview(ctx context.Context, r editor.ImageReader, session int, path string) tea.Cmd {
	return func() tea.Msg {
		s, err := r.ReadDataURL(ctx, path)
		return previewMsg{session: session, path: path, dataURL: s, err: err}
	}
}

func readImage(ctx context.Context, r editor.ImageReader, session int, path string) tea.Cmd {
	return func() tea.Msg {
		s, err := r.ReadDataURL(ctx, path)
		return imageReadMsg{session: session, path: path, dataURL: s, err: err}
	}
}

func (m modelTUI) onPreview(msg previewMsg) modelTUI {
	if !m.st.Editor.Open() || msg.session != m.session || msg.path != m.st.Editor.PendingFile() {
		return m
	}
	if msg.err != nil {
		m.st.Log.Warn("preview read failed", zap.String("file", msg.path), zap.Error(msg.err))
		m.form.err = "Could not read image."
		return m
	}
	m.form.err = ""
	m.st.Editor.SetPreview(msg.dataURL)
	return m
}

// save syncs the form and either commits now or reads the chosen file first.
func (m modelTUI) save() (tea.Model, tea.Cmd) {
	if p := m.form.imagePath(); p != "" && p != m.st.Editor.PendingFile() {
		m.st.Editor.ChooseFile(p)
	}
	m.form.sync(m.st.Editor)
	if p := m.st.Editor.PendingFile(); p != "" {
		m.saving = true
		m.form.err = ""
		return m, readImage(m.ctx, m.reader, m.session, p)
	}
	return m.commit("", nil), nil
}

func (m modelTUI) onImageRead(msg imageReadMsg) modelTUI {
	// Reads from an earlier editor session, or of a file no longer chosen, are dropped.
	if !m.saving || !m.st.Editor.Open() || msg.session != m.session || msg.path != m.st.Editor.PendingFile() {
		return m
	}
	m.saving = false
	return m.commit(msg.dataURL, msg.err)
}

func (m modelTUI) commit(dataURL string, readErr error) modelTUI {
	adding := m.st.Editor.State() == editor.Adding
	if _, err := m.st.Editor.Commit(m.ctx, dataURL, readErr); err != nil {
		m.form.err = editor.Alert(err)
		return m
	}
	m.form.err = ""
	if adding {
		m.setStatus("added", false)
	} else {
		m.setStatus("saved", false)
	}
	m.refresh()
	if adding {
		m.list.Select(0)
	}
	return m
}

func (m modelTUI) updateConfirm(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "y", "Y", "enter":
		pd := *m.confirm
		m.confirm = nil
		yes := func(string) bool { return true }
		var err error
		if pd.fromEditor {
			_, err = m.st.Editor.Delete(m.ctx, yes)
		} else {
			_, err = m.st.Editor.DeleteItem(m.ctx, pd.id, yes)
		}
		if err != nil {
			m.setStatus("Could not delete item.", true)
			return m, nil
		}
		m.setStatus("deleted", false)
		m.refresh()
	case "n", "N", "esc", "q":
		m.confirm = nil
	}
	return m, nil
}

func (m modelTUI) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		m.picking = false
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.form.inputs[fieldImage].SetValue(path)
		return m, tea.Batch(cmd, m.chooseImage())
	}
	return m, cmd
}

// onMouse closes the editor on a click outside the modal.
func (m modelTUI) onMouse(msg tea.MouseMsg) modelTUI {
	if !m.st.Editor.Open() || m.confirm != nil || m.picking {
		return m
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	box := m.form.view(m.st.Editor, m.saving, m.width)
	x0, y0, w, h := centered(m.width, m.height, box)
	if msg.X < x0 || msg.X >= x0+w || msg.Y < y0 || msg.Y >= y0+h {
		m.closeEditor()
	}
	return m
}

// centered returns the top-left corner and size of box placed in the middle of a w x h screen.
func centered(w, h int, box string) (x, y, bw, bh int) {
	bw, bh = lipgloss.Width(box), lipgloss.Height(box)
	x, y = (w-bw)/2, (h-bh)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, bw, bh
}

func (m *modelTUI) resize() {
	chrome := lipgloss.Height(m.chips.view(m.st)) + 4
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m modelTUI) View() string {
	if m.confirm != nil {
		body := titleStyle.Render(editor.DeletePrompt) + "\n\n" + helpStyle.Render("y/enter: delete   n/esc: keep")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(body))
	}
	if m.picking {
		body := titleStyle.Render("Choose an image") + "\n" +
			mutedStyle.Render(m.picker.CurrentDirectory) + "\n\n" +
			m.picker.View() + "\n" + helpStyle.Render("enter: select   esc: back to form")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(body))
	}
	if m.st.Editor.Open() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.form.view(m.st.Editor, m.saving, m.width))
	}

	var b strings.Builder
	b.WriteString(m.chips.view(m.st))
	b.WriteString("\n\n")

	v := m.st.View()
	if v.Empty != gallery.EmptyNone {
		b.WriteString(m.list.Title + "\n\n")
		b.WriteString(mutedStyle.Render(v.Empty.Message()) + "\n\n")
		b.WriteString(helpLine(m.keys.short()...))
	} else {
		b.WriteString(m.list.View())
	}
	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render("✖ " + m.status))
		} else {
			b.WriteString(successStyle.Render("✔ " + m.status))
		}
	}
	return panelString(b.String())
}
