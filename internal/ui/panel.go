package ui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/wardrobe/internal/gallery"
)

// Meter renders a Unicode bar for shown/total with a count.
func Meter(shown, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = shown * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, shown, total)
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := xansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(Stdout, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(Stdout, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(Stdout, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// CardLine renders one gallery card as a single line: index, heart, label, badges.
func CardLine(i int, c gallery.Card, maxLabel int) string {
	t := Current()
	heart := C(t.Muted, t.HeartEmpty)
	if c.Favorite {
		heart = C(t.Favorite, t.Heart)
	}
	label := c.Label
	if maxLabel > 0 && xansi.StringWidth(label) > maxLabel {
		label = xansi.Truncate(label, maxLabel, "…")
	}
	var badges []string
	for _, b := range c.Badges {
		badges = append(badges, C(t.Accent, t.BadgeOpen+b+t.BadgeClose))
	}
	line := fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%2d.", i+1)), heart, label)
	if len(badges) > 0 {
		line += "  " + strings.Join(badges, " ")
	}
	return line + "  " + C(t.Muted, shortID(c.ID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
