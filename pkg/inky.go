package pkg

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/inky"
	"periph.io/x/host/v3"
)

// Pins of the Inky Impression HAT.
const (
	inkySPI   = "SPI0.0"
	inkyDC    = "22"
	inkyReset = "27"
	inkyBusy  = "17"
)

// InkyDisplay drives an Inky Impression panel through periph's inky driver.
type InkyDisplay struct {
	cfg      DisplayConfig
	noDetect bool
	log      *slog.Logger

	port     spi.PortCloser
	dev      *inky.DevImpression
	detected bool
	border   PanelColor
	img      image.Image
	power    *rpio.Pin
}

func NewInkyDisplay(cfg DisplayConfig, opts DeviceOptions) *InkyDisplay {
	border, err := ParseColor(cfg.Border)
	if err != nil {
		border = White
	}
	return &InkyDisplay{cfg: cfg, noDetect: opts.NoDetect, log: opts.logger(), border: border}
}

func (d *InkyDisplay) Initialize() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("%w: host: %v", ErrDisplayInit, err)
	}
	if d.cfg.PowerPin > 0 {
		if err := d.powerOn(); err != nil {
			return err
		}
	}

	var o *inky.Opts
	if !d.noDetect {
		o = d.detect()
	}
	if o == nil {
		var err error
		if o, err = impressionOpts(d.cfg.Width, d.cfg.Height); err != nil {
			return fmt.Errorf("%w: %v", ErrDisplayInit, err)
		}
	} else {
		d.detected = true
	}

	port, err := spireg.Open(inkySPI)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDisplayInit, inkySPI, err)
	}
	d.port = port

	dc := gpioreg.ByName(inkyDC)
	reset := gpioreg.ByName(inkyReset)
	busy := gpioreg.ByName(inkyBusy)
	if dc == nil || reset == nil || busy == nil {
		return fmt.Errorf("%w: gpio pins %s/%s/%s not available", ErrDisplayInit, inkyDC, inkyReset, inkyBusy)
	}

	d.dev, err = inky.NewImpression(port, dc, reset, busy, o)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayInit, err)
	}
	d.log.Debug("Panel ready", "bounds", d.dev.Bounds().String())
	return nil
}

// detect reads the HAT EEPROM. nil means the configured size is used.
func (d *InkyDisplay) detect() *inky.Opts {
	bus, err := i2creg.Open("")
	if err != nil {
		d.log.Warn("No I2C bus, using configured size", "error", err)
		return nil
	}
	defer bus.Close()

	o, err := inky.DetectOpts(bus)
	if err != nil {
		d.log.Warn("Could not detect panel, using configured size", "error", err)
		return nil
	}
	if o.ModelColor != inky.Multi {
		d.log.Warn("Detected panel is not an Impression, using configured size", "model", o.Model)
		return nil
	}
	d.log.Info("Detected panel", "model", o.Model)
	return o
}

// impressionOpts describes an Impression by its resolution when the EEPROM
// cannot be used.
func impressionOpts(width, height int) (*inky.Opts, error) {
	o := &inky.Opts{ModelColor: inky.Multi, BorderColor: inky.White}
	switch {
	case width == 600 && height == 448:
		o.Model = inky.IMPRESSION57
	case width == 640 && height == 400:
		o.Model = inky.IMPRESSION4
	default:
		return nil, fmt.Errorf("no Inky Impression with resolution %dx%d", width, height)
	}
	return o, nil
}

func (d *InkyDisplay) powerOn() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("%w: power gpio: %v", ErrDisplayInit, err)
	}
	pin := rpio.Pin(d.cfg.PowerPin)
	pin.Output()
	pin.High()
	d.power = &pin
	// Let the panel supply settle.
	time.Sleep(100 * time.Millisecond)
	return nil
}

func (d *InkyDisplay) NativeDimensions() (int, int, bool) {
	if d.dev == nil || !d.detected {
		return 0, 0, false
	}
	b := d.dev.Bounds()
	return b.Dx(), b.Dy(), true
}

// SetBorder takes effect on the next Render.
func (d *InkyDisplay) SetBorder(c PanelColor) error {
	if c > Clean {
		return fmt.Errorf("%w: invalid border colour %d", ErrRender, c)
	}
	d.border = c
	return nil
}

func (d *InkyDisplay) SubmitImage(img image.Image, saturation float64) error {
	if d.dev == nil {
		return fmt.Errorf("%w: display not initialized", ErrRender)
	}
	if err := d.dev.SetSaturation(uint(saturationLevel(saturation))); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	d.img = img
	return nil
}

// Render dithers the submitted image and refreshes the panel.
func (d *InkyDisplay) Render() error {
	if d.dev == nil || d.img == nil {
		return fmt.Errorf("%w: nothing to show", ErrRender)
	}
	d.dev.SetBorder(inky.ImpressionColor(d.border))
	if err := d.dev.Draw(d.img.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

func (d *InkyDisplay) Close() error {
	var err error
	d.dev = nil
	if d.port != nil {
		err = d.port.Close()
		d.port = nil
	}
	if d.power != nil {
		d.power.Low()
		d.power = nil
		if cerr := rpio.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// saturationLevel maps 0.0-1.0 onto the driver's 0-100 scale.
func saturationLevel(s float64) int {
	return int(math.Round(math.Max(0, math.Min(1, s)) * 100))
}

var _ BorderSetter = (*InkyDisplay)(nil)
