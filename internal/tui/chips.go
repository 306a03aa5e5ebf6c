package tui

import (
	"strings"

	"github.com/idilsaglam/wardrobe/internal/app"
	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
)

// chipBar tracks which group has keyboard focus and the cursor within each row.
// In active-group mode only the focused group's row is drawn.
type chipBar struct {
	mode   gallery.ChipMode
	group  int
	cursor map[model.Group]int
}

func newChipBar(mode gallery.ChipMode) chipBar {
	return chipBar{mode: mode, cursor: map[model.Group]int{}}
}

func (c chipBar) focused() model.Group { return model.Groups[c.group] }

func (c *chipBar) nextGroup(delta int) {
	n := len(model.Groups)
	c.group = ((c.group+delta)%n + n) % n
}

func (c *chipBar) move(delta int, chips []string) {
	if len(chips) == 0 {
		return
	}
	g := c.focused()
	i := c.cursor[g] + delta
	if i < 0 {
		i = len(chips) - 1
	}
	if i >= len(chips) {
		i = 0
	}
	c.cursor[g] = i
}

// current returns the chip under the cursor in the focused group.
func (c chipBar) current(chips []string) (string, bool) {
	if len(chips) == 0 {
		return "", false
	}
	i := c.cursor[c.focused()]
	if i >= len(chips) {
		i = len(chips) - 1
	}
	return chips[i], true
}

func groupTitle(g model.Group) string {
	s := string(g)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c chipBar) view(st *app.State) string {
	favs := mutedStyle.Render(heartEmpty + " favorites")
	if st.Filters.FavoriteOnly {
		favs = favStyle.Render(heart + " favorites")
	}

	var lines []string
	if c.mode == gallery.ChipActiveGroup {
		tabs := make([]string, 0, len(model.Groups))
		for i, g := range model.Groups {
			t := groupTitle(g)
			if v := st.Filters.Value(g); v != "" {
				t += ": " + v
			}
			if i == c.group {
				tabs = append(tabs, chipActiveStyle.Render(t))
			} else {
				tabs = append(tabs, chipStyle.Render(t))
			}
		}
		lines = append(lines, strings.Join(tabs, "")+"  "+favs)
		lines = append(lines, c.row(st, c.focused(), true))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, favs)
	for i, g := range model.Groups {
		lines = append(lines, c.row(st, g, i == c.group))
	}
	return strings.Join(lines, "\n")
}

func (c chipBar) row(st *app.State, g model.Group, focused bool) string {
	name := labelStyle.Render(groupTitle(g))
	if focused {
		name = labelFocusedStyle.Render(groupTitle(g))
	}
	chips := st.Chips(g)
	selected := st.Filters.Value(g)
	parts := make([]string, 0, len(chips))
	for i, v := range chips {
		switch {
		case v == selected:
			parts = append(parts, chipActiveStyle.Render(v))
		case focused && i == c.cursor[g]:
			parts = append(parts, chipCursorStyle.Render(v))
		default:
			parts = append(parts, chipStyle.Render(v))
		}
	}
	return name + strings.Join(parts, "")
}
