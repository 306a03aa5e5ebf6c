package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/thumb"
)

const (
	thumbCols = 8
	thumbRows = 2
)

// cardItem adapts a gallery.Card to bubbles/list.Item
type cardItem struct {
	card gallery.Card
}

func (i cardItem) Title() string       { return i.card.Label }
func (i cardItem) Description() string { return strings.Join(i.card.Badges, " ") }
func (i cardItem) FilterValue() string { return i.card.Label }

// cardDelegate draws a thumbnail beside the label and badges.
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return thumbRows }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cardItem)
	if !ok {
		return
	}
	c := it.card

	pin := " "
	if c.Favorite {
		pin = favStyle.Render(heart)
	}
	label := c.Label
	if limit := m.Width() - thumbCols - 8; limit > 0 && xansi.StringWidth(label) > limit {
		label = xansi.Truncate(label, limit, "…")
	}
	if index == m.Index() {
		label = selectedStyle.Render(label)
	} else {
		label = titleStyle.Render(label)
	}
	badges := make([]string, 0, len(c.Badges))
	for _, b := range c.Badges {
		badges = append(badges, badgeStyle.Render(b))
	}
	text := pin + " " + label + "\n  " + strings.Join(badges, " ")

	prefix := "  \n  "
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " \n  "
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		prefix,
		thumb.Render(c.Thumbnail, thumbCols, thumbRows),
		" ",
		text,
	)
	fmt.Fprint(w, row)
}
