package pkg

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
)

// DisplayDevice is an output the prepared image is handed to.
type DisplayDevice interface {
	Initialize() error
	SubmitImage(img image.Image, saturation float64) error
	Render() error
	// NativeDimensions reports the size the device detected on its own.
	// ok is false when the configured size should be used.
	NativeDimensions() (width, height int, ok bool)
	Close() error
}

// BorderSetter is implemented by devices with a configurable frame colour.
type BorderSetter interface {
	SetBorder(c PanelColor) error
}

// DeviceOptions are the run-level settings devices may need.
type DeviceOptions struct {
	NoDetect bool
	Log      *slog.Logger
}

func (o DeviceOptions) logger() *slog.Logger {
	if o.Log == nil {
		return slog.Default()
	}
	return o.Log
}

// OpenDisplay builds the device named by kind: "inky", "lcd",
// "fb[:/dev/fbN]" or "png:<path>". The device is not initialized.
func OpenDisplay(kind string, cfg DisplayConfig, opts DeviceOptions) (DisplayDevice, error) {
	name, arg, _ := strings.Cut(kind, ":")
	switch strings.ToLower(name) {
	case "inky", "":
		return NewInkyDisplay(cfg, opts), nil
	case "lcd":
		return NewLCDDisplay(opts), nil
	case "fb":
		return NewFramebufferDisplay(arg, opts), nil
	case "png":
		if arg == "" {
			return nil, argumentError("png device needs an output path, e.g. png:/tmp/preview.png")
		}
		return NewPNGDisplay(arg, opts), nil
	}
	return nil, argumentError(fmt.Sprintf("unknown display device %q", kind))
}
