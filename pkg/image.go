package pkg

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSource loads and resizes images.
type ImageSource interface {
	Load(path string) (image.Image, error)
	Dimensions(img image.Image) (width, height int)
	Resize(img image.Image, width, height int) image.Image
}

// FileSource decodes images from disk, honouring EXIF orientation, and
// resizes with a bicubic (Catmull-Rom) kernel.
type FileSource struct{}

func (FileSource) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: image not found: %s", ErrImageLoad, path)
		}
		return nil, fmt.Errorf("%w: cannot decode %s: %v", ErrImageLoad, path, err)
	}
	return img, nil
}

func (FileSource) Dimensions(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func (FileSource) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Prepare returns img unchanged when it already has the target size and a
// resized copy otherwise.
func Prepare(src ImageSource, img image.Image, width, height int) (image.Image, bool) {
	w, h := src.Dimensions(img)
	if w == width && h == height {
		return img, false
	}
	return src.Resize(img, width, height), true
}

// Rotate turns img clockwise by deg, one of 0, 90, 180 or 270.
func Rotate(img image.Image, deg int) image.Image {
	// imaging rotates counter-clockwise.
	switch deg {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	}
	return img
}

// toColor expands a palette image to full colour.
func toColor(img image.Image) image.Image {
	p, ok := img.(*image.Paletted)
	if !ok {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, p.Rect.Dx(), p.Rect.Dy()))
	draw.Draw(dst, dst.Bounds(), p, p.Rect.Min, draw.Src)
	return dst
}
