package pkg

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultWidth  = 600
	DefaultHeight = 448

	// DefaultConfigPath is read when neither --config nor ConfigEnv is set.
	DefaultConfigPath = "/etc/inky-soup/display.conf"
	ConfigEnv         = "INKY_DISPLAY_CONFIG"
)

// DisplayConfig is the resolved panel setup for one run.
type DisplayConfig struct {
	Width    int
	Height   int
	Device   string // see OpenDisplay
	Rotation int    // clockwise degrees applied before resizing
	PowerPin int    // BCM pin gating panel power, 0 for none
	Border   string // colour name or "auto"
}

func DefaultConfig() DisplayConfig {
	return DisplayConfig{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Device: "inky",
		Border: "white",
	}
}

// ConfigPath picks the config file: flag value, then ConfigEnv, then
// DefaultConfigPath.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadConfig reads KEY=VALUE lines from path over the defaults. A missing
// file is not an error. Bad lines are logged and skipped; a read error keeps
// the lines parsed before it.
func LoadConfig(path string, log *slog.Logger) DisplayConfig {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("No display config, using defaults", "path", path)
		} else {
			log.Warn("Could not read display config, using defaults", "path", path, "error", fmt.Errorf("%w: %v", ErrConfigRead, err))
		}
		return cfg
	}
	defer f.Close()

	parsed := cfg
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parsed.apply(line); err != nil {
			log.Warn("Skipping config line", "path", path, "line", lineNo, "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn("Stopped reading display config", "path", path, "line", lineNo+1, "error", fmt.Errorf("%w: %v", ErrConfigRead, err))
	}
	log.Debug("Loaded display config", "path", path, "width", parsed.Width, "height", parsed.Height)
	return parsed
}

func (c *DisplayConfig) apply(line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("missing '=' in %q", line)
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return fmt.Errorf("empty key in %q", line)
	}
	value = unquote(strings.TrimSpace(value))

	switch key {
	case "DISPLAY_WIDTH":
		n, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Width = n
	case "DISPLAY_HEIGHT":
		n, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Height = n
	case "DISPLAY_DEVICE":
		if value == "" {
			return fmt.Errorf("%s: empty value", key)
		}
		c.Device = value
	case "DISPLAY_ROTATION":
		n, err := strconv.Atoi(value)
		if err != nil || !ValidRotation(n) {
			return fmt.Errorf("%s: rotation must be 0, 90, 180 or 270, got %q", key, value)
		}
		c.Rotation = n
	case "DISPLAY_BORDER":
		if !ValidBorder(value) {
			return fmt.Errorf("%s: unknown border colour %q", key, value)
		}
		c.Border = strings.ToLower(value)
	case "POWER_GPIO":
		n, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.PowerPin = n
	}
	return nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive: %d", n)
	}
	return n, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// ValidRotation reports whether deg is a supported right angle.
func ValidRotation(deg int) bool {
	switch deg {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

// ValidBorder reports whether s names a panel colour or is "auto".
func ValidBorder(s string) bool {
	if strings.EqualFold(s, "auto") {
		return true
	}
	_, err := ParseColor(s)
	return err == nil
}

func borderNames() []string {
	var names []string
	for c := Black; c <= Clean; c++ {
		names = append(names, c.String())
	}
	return names
}
