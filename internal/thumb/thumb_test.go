package thumb

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/wardrobe/internal/dataurl"
)

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{R: 255, A: 255}
			if y >= 2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return dataurl.Encode("image/png", buf.Bytes())
}

func TestRender_Size(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	out := Render(pngDataURL(t), 6, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, ln := range lines {
		assert.Equal(t, 6, xansi.StringWidth(ln))
	}
	assert.Contains(t, out, halfBlock)
}

func TestPaint_UsesTopAndBottomColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	img, err := Decode(pngDataURL(t))
	require.NoError(t, err)
	out := Paint(img, 1, 1)
	// Top half red on bottom half blue.
	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "48;2;0;0;255")
}

func TestRender_PlaceholderOnBadData(t *testing.T) {
	out := Render("data:image/png;base64,AAAA", 4, 2)
	assert.Equal(t, Placeholder(4, 2), out)
	assert.Equal(t, "", Render("x", 0, 2))
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode("not a data url")
	require.Error(t, err)
}

func TestRender_CacheKeyIsDigest(t *testing.T) {
	src := pngDataURL(t)
	k := keyFor(src, 8, 2)
	assert.Equal(t, k, keyFor(src, 8, 2))
	assert.NotEqual(t, k, keyFor(src, 8, 3))
	assert.NotEqual(t, k, keyFor(src+"=", 8, 2))

	first := Render(src, 8, 2)
	assert.Equal(t, first, Render(src, 8, 2))
	cacheMu.Lock()
	_, ok := cache[k]
	cacheMu.Unlock()
	assert.True(t, ok)
}
