package pkg

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/rubiojr/go-pirateaudio/st7789"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// LCDSize is the edge of the Pirate Audio ST7789 screen.
const LCDSize = 240

// LCDDisplay previews the dithered frame on a Pirate Audio LCD.
type LCDDisplay struct {
	log   *slog.Logger
	p     spi.PortCloser
	dev   *st7789.Device
	frame image.Image
}

func NewLCDDisplay(opts DeviceOptions) *LCDDisplay {
	return &LCDDisplay{log: opts.logger()}
}

func (d *LCDDisplay) Initialize() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("%w: host: %v", ErrDisplayInit, err)
	}
	p, err := spireg.Open("SPI0.1")
	if err != nil {
		return fmt.Errorf("%w: SPI0.1: %v", ErrDisplayInit, err)
	}
	d.p = p
	// GPIO9 selects data/command.
	// https://pinout.xyz/pinout/pirate_audio_line_out#
	d.dev, err = st7789.NewSPI(p.(spi.Port), gpioreg.ByName("GPIO9"), &st7789.DefaultOpts)
	if err != nil {
		return fmt.Errorf("%w: st7789: %v", ErrDisplayInit, err)
	}
	d.dev.PowerOn()
	return nil
}

func (d *LCDDisplay) NativeDimensions() (int, int, bool) {
	return 0, 0, false
}

// SubmitImage dithers img as the panel would and letterboxes it onto the
// square screen.
func (d *LCDDisplay) SubmitImage(img image.Image, saturation float64) error {
	d.frame = letterbox(Dither(img, saturation), LCDSize, LCDSize)
	return nil
}

func (d *LCDDisplay) Render() error {
	if d.dev == nil || d.frame == nil {
		return fmt.Errorf("%w: nothing to show", ErrRender)
	}
	d.dev.DrawRAW(d.frame)
	d.log.Debug("Preview drawn", "device", "lcd")
	return nil
}

func (d *LCDDisplay) Close() error {
	if d.p == nil {
		return nil
	}
	err := d.p.Close()
	d.p = nil
	return err
}

// letterbox fits img inside w x h on a black background.
func letterbox(img image.Image, w, h int) *image.NRGBA {
	bg := imaging.New(w, h, color.Black)
	return imaging.PasteCenter(bg, imaging.Fit(img, w, h, imaging.NearestNeighbor))
}
