package pkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cenkalti/dominantcolor"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DrawCaption writes text on a light band along the bottom edge of img.
func DrawCaption(img image.Image, text string) (image.Image, error) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	size := h / 18
	if size < 10 {
		size = 10
	}
	face, err := captionFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)
	pad := size / 2
	lines := dc.WordWrap(text, w-2*pad)
	band := float64(len(lines))*size*1.3 + pad

	dc.DrawRectangle(0, h-band, w, band)
	dc.SetColor(color.White)
	dc.Fill()
	dc.SetColor(color.Black)
	dc.DrawStringWrapped(text, w/2, h-pad/2, 0.5, 1, w-2*pad, 1.3, gg.AlignCenter)
	return dc.Image(), nil
}

func captionFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("caption font: %w", err)
	}
	return face, nil
}

// DrawQR places a QR code for content in the bottom right corner of img.
func DrawQR(img image.Image, content string) (image.Image, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	qr := q.Image(side / 4)
	margin := side / 40
	pos := image.Pt(b.Dx()-qr.Bounds().Dx()-margin, b.Dy()-qr.Bounds().Dy()-margin)
	return imaging.Overlay(img, qr, pos, 1.0), nil
}

// AutoBorder picks the panel colour closest to the dominant colour of img.
func AutoBorder(img image.Image) PanelColor {
	return Nearest(dominantcolor.Find(img))
}
