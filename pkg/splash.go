package pkg

import (
	"fmt"
	"image"

	"github.com/rakyll/statik/fs"

	// Registers the embedded assets.
	_ "github.com/inky-soup/update-display/statik"
)

//go:generate statik -src=../assets -dest=.. -f

// SplashImage returns the built-in colour bar image.
func SplashImage() (image.Image, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, fmt.Errorf("%w: splash: %v", ErrImageLoad, err)
	}
	r, err := statikFS.Open("/splash.png")
	if err != nil {
		return nil, fmt.Errorf("%w: splash: %v", ErrImageLoad, err)
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: splash: %v", ErrImageLoad, err)
	}
	return img, nil
}
