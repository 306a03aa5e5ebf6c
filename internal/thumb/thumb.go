// Package thumb paints embedded images as terminal cells.
//
// Each cell is an upper half block: the foreground carries the top pixel and the
// background the bottom one, so a cols x rows thumbnail samples cols x 2*rows pixels.
package thumb

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/wardrobe/internal/dataurl"
)

const halfBlock = "▀"

var placeholderStyle = lipgloss.NewStyle().Faint(true)

// cacheKey holds a digest of the source so cached entries don't pin whole images.
type cacheKey struct {
	sum        [sha256.Size]byte
	cols, rows int
}

func keyFor(src string, cols, rows int) cacheKey {
	return cacheKey{sum: sha256.Sum256([]byte(src)), cols: cols, rows: rows}
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey]string{}
)

const maxCached = 256

// Decode parses a data URL into an image.
func Decode(src string) (image.Image, error) {
	_, data, err := dataurl.Decode(src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Render paints src into cols x rows cells. Undecodable input paints a placeholder.
func Render(src string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	key := keyFor(src, cols, rows)
	cacheMu.Lock()
	out, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		return out
	}

	img, err := Decode(src)
	if err != nil {
		out = Placeholder(cols, rows)
	} else {
		out = Paint(img, cols, rows)
	}

	cacheMu.Lock()
	if len(cache) >= maxCached {
		cache = map[cacheKey]string{}
	}
	cache[key] = out
	cacheMu.Unlock()
	return out
}

// Paint samples img (nearest neighbour) into cols x rows half-block cells.
func Paint(img image.Image, cols, rows int) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Placeholder(cols, rows)
	}
	lines := make([]string, rows)
	for cy := 0; cy < rows; cy++ {
		var sb strings.Builder
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + (2*cx+1)*w/(2*cols)
			top := img.At(x, b.Min.Y+(4*cy+1)*h/(4*rows))
			bottom := img.At(x, b.Min.Y+(4*cy+3)*h/(4*rows))
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render(halfBlock))
		}
		lines[cy] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Placeholder is a shaded box used when there is nothing to show.
func Placeholder(cols, rows int) string {
	line := placeholderStyle.Render(strings.Repeat("░", cols))
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func hex(c interface{ RGBA() (r, g, b, a uint32) }) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
