package pkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// PanelColor is an Inky Impression colour index. The order matches the
// controller codes used by inky.ImpressionColor.
type PanelColor uint8

const (
	Black PanelColor = iota
	White
	Green
	Blue
	Red
	Yellow
	Orange
	// Clean is only valid as a border colour.
	Clean
)

var colorNames = [...]string{"black", "white", "green", "blue", "red", "yellow", "orange", "clean"}

func (c PanelColor) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("PanelColor(%d)", uint8(c))
}

// ParseColor accepts the colour names returned by PanelColor.String.
func ParseColor(s string) (PanelColor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == s {
			return PanelColor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}

// desaturated is the nominal palette, saturated the colours the ink
// actually produces.
var (
	desaturated = [7]color.NRGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 0, 0, 255},
		{255, 255, 0, 255},
		{255, 140, 0, 255},
	}
	saturated = [7]color.NRGBA{
		{57, 48, 57, 255},
		{255, 255, 255, 255},
		{58, 91, 70, 255},
		{61, 59, 94, 255},
		{156, 72, 75, 255},
		{208, 190, 71, 255},
		{177, 106, 73, 255},
	}
)

// Palette blends the desaturated and saturated palettes. saturation is
// clamped to [0, 1]; 1 selects the saturated colours.
func Palette(saturation float64) color.Palette {
	if saturation < 0 {
		saturation = 0
	} else if saturation > 1 {
		saturation = 1
	}
	p := make(color.Palette, len(desaturated))
	for i := range desaturated {
		d, _ := colorful.MakeColor(desaturated[i])
		s, _ := colorful.MakeColor(saturated[i])
		r, g, b := d.BlendRgb(s, saturation).Clamped().RGB255()
		p[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return p
}

// Dither reduces img to the blended palette for the preview devices. The
// panel itself is dithered by the inky driver.
func Dither(img image.Image, saturation float64) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), Palette(saturation))
	draw.FloydSteinberg.Draw(dst, dst.Rect, img, b.Min)
	return dst
}

// Nearest returns the panel colour closest to c in CIE Lab space.
func Nearest(c color.Color) PanelColor {
	target, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent.
		return White
	}
	best, bestDist := White, -1.0
	for i, p := range desaturated {
		pc, _ := colorful.MakeColor(p)
		if d := target.DistanceLab(pc); bestDist < 0 || d < bestDist {
			best, bestDist = PanelColor(i), d
		}
	}
	return best
}
