package pkg

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// App runs a single image update.
type App struct {
	Out    io.Writer
	Err    io.Writer
	Images ImageSource

	// OpenDisplay builds the output device; replaced in tests.
	OpenDisplay func(kind string, cfg DisplayConfig, opts DeviceOptions) (DisplayDevice, error)

	now func() time.Time
}

func NewApp(outW, errW io.Writer) *App {
	return &App{
		Out:         outW,
		Err:         errW,
		Images:      FileSource{},
		OpenDisplay: OpenDisplay,
		now:         time.Now,
	}
}

func (a *App) since(t time.Time) float64 {
	return a.now().Sub(t).Seconds()
}

// Run parses args and pushes one image to the display. Failures are
// returned as *ExitError.
func (a *App) Run(args []string) error {
	start := a.now()

	ra, shouldExit, err := ParseArgs(args, a.Out)
	if err != nil {
		return exitError(err)
	}
	if shouldExit {
		return nil
	}

	log := newLogger(ra.LogLevel, ra.LogFormat, a.Err)
	cfg := ra.Apply(LoadConfig(ConfigPath(ra.ConfigPath), log))
	log.Debug("Display config", "width", cfg.Width, "height", cfg.Height, "device", cfg.Device, "rotation", cfg.Rotation, "border", cfg.Border)

	fmt.Fprintln(a.Out, "Initializing display...")
	t := a.now()
	dev, err := a.OpenDisplay(cfg.Device, cfg, DeviceOptions{NoDetect: ra.NoDetect, Log: log})
	if err != nil {
		return exitError(err)
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Warn("Closing display failed", "error", err)
		}
	}()
	if err := dev.Initialize(); err != nil {
		return exitError(wrapIf(err, ErrDisplayInit))
	}
	fmt.Fprintf(a.Out, "Display initialized in %.1fs\n", a.since(t))

	width, height := cfg.Width, cfg.Height
	if w, h, ok := dev.NativeDimensions(); ok {
		if w != width || h != height {
			log.Info("Using detected panel size", "detected", fmt.Sprintf("%dx%d", w, h), "configured", fmt.Sprintf("%dx%d", width, height))
		}
		width, height = w, h
	}

	img, err := a.load(ra, log)
	if err != nil {
		return exitError(err)
	}
	w, h := a.Images.Dimensions(img)
	fmt.Fprintf(a.Out, "Image size: %dx%d\n", w, h)

	if cfg.Rotation != 0 {
		img = Rotate(img, cfg.Rotation)
		log.Debug("Rotated image", "degrees", cfg.Rotation)
	}
	if w, h := a.Images.Dimensions(img); w != width || h != height {
		fmt.Fprintf(a.Out, "Resizing to %dx%d...\n", width, height)
	}
	t = a.now()
	img, resized := Prepare(a.Images, img, width, height)
	if resized {
		fmt.Fprintf(a.Out, "Resize complete in %.1fs\n", a.since(t))
	} else {
		fmt.Fprintf(a.Out, "Image already %dx%d, no resize needed.\n", width, height)
	}

	if img, err = a.decorate(img, ra); err != nil {
		return exitError(err)
	}
	if err := a.setBorder(dev, img, cfg.Border, log); err != nil {
		return exitError(wrapIf(err, ErrRender))
	}

	saturation := ra.Saturation
	if ra.SkipDither {
		fmt.Fprintln(a.Out, "Using pre-dithered image, sending directly to display...")
		img = toColor(img)
		saturation = 1.0
	} else {
		fmt.Fprintf(a.Out, "Dithering with saturation=%s...\n", formatSaturation(saturation))
	}
	t = a.now()
	if err := dev.SubmitImage(img, saturation); err != nil {
		return exitError(wrapIf(err, ErrRender))
	}
	if !ra.SkipDither {
		fmt.Fprintf(a.Out, "Dithering complete in %.1fs\n", a.since(t))
	}

	fmt.Fprintln(a.Out, "Sending to display...")
	t = a.now()
	if err := dev.Render(); err != nil {
		return exitError(wrapIf(err, ErrRender))
	}
	fmt.Fprintf(a.Out, "Display refresh complete in %.1fs\n", a.since(t))

	logMemory(log)
	fmt.Fprintf(a.Out, "Total time: %.1fs\n", a.since(start))
	return nil
}

func (a *App) load(ra *RunArguments, log *slog.Logger) (image.Image, error) {
	if ra.Splash {
		log.Debug("Loading splash image")
		return SplashImage()
	}
	img, err := a.Images.Load(ra.ImagePath)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded image", "file", filepath.Base(ra.ImagePath), "size", fileSize(ra.ImagePath))
	return img, nil
}

func (a *App) decorate(img image.Image, ra *RunArguments) (image.Image, error) {
	var err error
	if ra.Caption != "" {
		if img, err = DrawCaption(img, ra.Caption); err != nil {
			return nil, err
		}
	}
	if ra.QR != "" {
		if img, err = DrawQR(img, ra.QR); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func (a *App) setBorder(dev DisplayDevice, img image.Image, border string, log *slog.Logger) error {
	bs, ok := dev.(BorderSetter)
	if !ok {
		return nil
	}
	var c PanelColor
	if strings.EqualFold(border, "auto") {
		c = AutoBorder(img)
		log.Info("Picked border colour", "colour", c.String())
	} else {
		var err error
		if c, err = ParseColor(border); err != nil {
			c = White
		}
	}
	return bs.SetBorder(c)
}

// formatSaturation keeps one decimal for whole numbers, so 1 prints as 1.0.
func formatSaturation(s float64) string {
	out := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
