package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Favorite string
	Heart, HeartEmpty                              string
	BadgeOpen, BadgeClose                          string
	CornerTL, CornerTR, CornerBL, CornerBR         string
	H, V                                           string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Favorite: "\033[91m",
			Heart: "♥", HeartEmpty: "♡",
			BadgeOpen: "‹", BadgeClose: "›",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Heart: "*", HeartEmpty: "-",
			BadgeOpen: "[", BadgeClose: "]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Favorite: fgMagenta,
			Heart: "♥", HeartEmpty: "♡",
			BadgeOpen: "[", BadgeClose: "]",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
