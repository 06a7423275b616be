package pkg

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	human "github.com/dustin/go-humanize"
)

// PNGDisplay writes the dithered frame to a file instead of a panel.
type PNGDisplay struct {
	path string
	log  *slog.Logger
	pix  *image.Paletted
}

func NewPNGDisplay(path string, opts DeviceOptions) *PNGDisplay {
	return &PNGDisplay{path: path, log: opts.logger()}
}

func (p *PNGDisplay) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayInit, err)
	}
	return nil
}

func (p *PNGDisplay) NativeDimensions() (int, int, bool) {
	return 0, 0, false
}

func (p *PNGDisplay) SubmitImage(img image.Image, saturation float64) error {
	p.pix = Dither(img, saturation)
	return nil
}

func (p *PNGDisplay) Render() error {
	if p.pix == nil {
		return fmt.Errorf("%w: nothing to write", ErrRender)
	}
	f, err := os.Create(p.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	if err := png.Encode(f, p.pix); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	if st, err := os.Stat(p.path); err == nil {
		p.log.Info("Wrote preview", "path", p.path, "size", human.Bytes(uint64(st.Size())))
	}
	return nil
}

// Pixels returns the last submitted frame.
func (p *PNGDisplay) Pixels() *image.Paletted {
	return p.pix
}

func (p *PNGDisplay) Close() error {
	return nil
}
