package pkg

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const DefaultSaturation = 0.5

// RunArguments is the validated command line of one invocation.
type RunArguments struct {
	ImagePath  string
	Saturation float64
	SkipDither bool

	ConfigPath string
	Device     string
	Rotation   int
	Border     string
	Caption    string
	QR         string
	Splash     bool
	NoDetect   bool
	LogLevel   string
	LogFormat  string

	set map[string]bool
}

// Apply overlays the flags given on the command line onto cfg.
func (a *RunArguments) Apply(cfg DisplayConfig) DisplayConfig {
	if a.set["device"] {
		cfg.Device = a.Device
	}
	if a.set["rotation"] {
		cfg.Rotation = a.Rotation
	}
	if a.set["border"] {
		cfg.Border = strings.ToLower(a.Border)
	}
	return cfg
}

// ParseArgs processes the command line. Flags may appear before or after
// the positional arguments. It returns shouldExit for -h.
func ParseArgs(args []string, output io.Writer) (*RunArguments, bool, error) {
	flagSet := flag.NewFlagSet("inky-update", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Flash an image to an Inky Impression e-ink display.

Usage:
  inky-update [options] <image> [saturation]

Arguments:
  image
    Path to the image file.
  saturation
    Saturation level 0.0-1.0 (default 0.5).

Options:
`)
		flagSet.PrintDefaults()
	}

	a := &RunArguments{Saturation: DefaultSaturation, set: map[string]bool{}}
	flagSet.BoolVar(&a.SkipDither, "skip-dither", false, "Skip dithering (image is pre-dithered).")
	flagSet.StringVar(&a.ConfigPath, "config", "", "Display config file (default $"+ConfigEnv+" or "+DefaultConfigPath+").")
	flagSet.StringVar(&a.Device, "device", "inky", "Output device: inky, lcd, fb[:/dev/fbN] or png:<path>.")
	flagSet.IntVar(&a.Rotation, "rotation", 0, "Rotate the image clockwise by 0, 90, 180 or 270 degrees.")
	flagSet.StringVar(&a.Border, "border", "white", "Border colour name, or 'auto' to follow the image.")
	flagSet.StringVar(&a.Caption, "caption", "", "Caption drawn along the bottom edge.")
	flagSet.StringVar(&a.QR, "qr", "", "Content of a QR code drawn in the bottom right corner.")
	flagSet.BoolVar(&a.Splash, "splash", false, "Show the built-in splash image instead of a file.")
	flagSet.BoolVar(&a.NoDetect, "no-detect", false, "Do not auto-detect the panel size.")
	flagSet.StringVar(&a.LogLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	flagSet.StringVar(&a.LogFormat, "log-format", "text", "Log output format: 'text' or 'json'.")

	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return nil, true, nil
			}
			return nil, false, argumentError(err.Error())
		}
		rest := flagSet.Args()
		// Parse drops a "--" terminator; everything after it is positional.
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		args = rest
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	flagSet.Visit(func(f *flag.Flag) { a.set[f.Name] = true })

	if len(positional) > 2 {
		flagSet.Usage()
		return nil, false, argumentError(fmt.Sprintf("unexpected arguments: %s", strings.Join(positional[2:], " ")))
	}
	if len(positional) > 0 {
		a.ImagePath = positional[0]
	}
	if a.ImagePath == "" && !a.Splash {
		flagSet.Usage()
		return nil, false, argumentError("missing image path")
	}
	if len(positional) == 2 {
		s, err := strconv.ParseFloat(positional[1], 64)
		if err != nil || math.IsNaN(s) || s < 0 || s > 1 {
			return nil, false, argumentError(fmt.Sprintf("saturation must be a number between 0.0 and 1.0, got %q", positional[1]))
		}
		a.Saturation = s
	}
	if a.set["rotation"] && !ValidRotation(a.Rotation) {
		return nil, false, argumentError(fmt.Sprintf("rotation must be 0, 90, 180 or 270, got %d", a.Rotation))
	}

	if a.set["border"] && !ValidBorder(a.Border) {
		return nil, false, argumentError(fmt.Sprintf("border must be 'auto' or one of %s, got %q", strings.Join(borderNames(), ", "), a.Border))
	}

	a.LogFormat = strings.ToLower(a.LogFormat)
	if a.LogFormat != "text" && a.LogFormat != "json" {
		return nil, false, argumentError("invalid log-format: must be 'text' or 'json'")
	}
	a.LogLevel = strings.ToLower(a.LogLevel)
	switch a.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, argumentError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	return a, false, nil
}
