package pkg

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonutz/framebuffer"
)

const graphicsClass = "/sys/class/graphics"

// FramebufferDisplay shows the dithered frame on a Linux framebuffer, e.g.
// an HDMI monitor next to the panel.
type FramebufferDisplay struct {
	path string
	log  *slog.Logger
	fb   *framebuffer.Device
	pix  *image.Paletted

	sysRoot string
}

// NewFramebufferDisplay opens path, or the first framebuffer found under
// /sys/class/graphics when path is empty.
func NewFramebufferDisplay(path string, opts DeviceOptions) *FramebufferDisplay {
	return &FramebufferDisplay{path: path, log: opts.logger(), sysRoot: graphicsClass}
}

func (b *FramebufferDisplay) Initialize() error {
	if b.path == "" {
		name, err := findFramebuffer(b.sysRoot)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDisplayInit, err)
		}
		b.path = "/dev/" + name
		b.log.Info("Displaying on " + name)
	}
	fb, err := framebuffer.Open(b.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDisplayInit, b.path, err)
	}
	b.fb = fb
	return nil
}

func (b *FramebufferDisplay) NativeDimensions() (int, int, bool) {
	return 0, 0, false
}

func (b *FramebufferDisplay) SubmitImage(img image.Image, saturation float64) error {
	b.pix = Dither(img, saturation)
	return nil
}

func (b *FramebufferDisplay) Render() error {
	if b.fb == nil || b.pix == nil {
		return fmt.Errorf("%w: nothing to show", ErrRender)
	}
	r := b.fb.Bounds()
	draw.Draw(b.fb, r, letterbox(b.pix, r.Dx(), r.Dy()), image.Point{}, draw.Src)
	return nil
}

func (b *FramebufferDisplay) Close() error {
	if b.fb == nil {
		return nil
	}
	b.fb.Close()
	b.fb = nil
	return nil
}

// findFramebuffer returns the first fbN entry under root that has a name.
// The console entry is skipped.
func findFramebuffer(root string) (string, error) {
	items, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("could not enumerate framebuffers: %w", err)
	}
	for _, item := range items {
		if item.Name() == "fbcon" || !strings.HasPrefix(item.Name(), "fb") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, item.Name(), "name"))
		if err != nil || strings.TrimSpace(string(data)) == "" {
			continue
		}
		return item.Name(), nil
	}
	return "", errors.New("no framebuffer found")
}
