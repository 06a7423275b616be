package pkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteEndpoints(t *testing.T) {
	p := Palette(0)
	for i, c := range desaturated {
		assert.Equal(t, color.Color(c), p[i], "desaturated %d", i)
	}
	p = Palette(1)
	for i, c := range saturated {
		assert.Equal(t, color.Color(c), p[i], "saturated %d", i)
	}
	assert.Equal(t, Palette(1), Palette(3), "clamped")
	assert.Equal(t, Palette(0), Palette(-1), "clamped")
}

func TestDitherSolid(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	got := Dither(src, 0.5)
	assert.Equal(t, image.Rect(0, 0, 8, 8), got.Rect)
	for _, px := range got.Pix {
		assert.Equal(t, uint8(White), px)
	}
}

func TestDitherOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	got := Dither(src, 0)
	assert.Equal(t, image.Rect(0, 0, 4, 2), got.Rect)
}

func TestNearest(t *testing.T) {
	assert.Equal(t, Red, Nearest(color.RGBA{250, 10, 10, 255}))
	assert.Equal(t, Black, Nearest(color.RGBA{5, 5, 5, 255}))
	assert.Equal(t, White, Nearest(color.RGBA{}))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Orange ")
	require.NoError(t, err)
	assert.Equal(t, Orange, c)
	assert.Equal(t, "orange", c.String())
	_, err = ParseColor("purple")
	assert.Error(t, err)
	assert.Equal(t, "PanelColor(9)", PanelColor(9).String())
}
