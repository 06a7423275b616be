package pkg

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDisplay struct {
	initErr   error
	renderErr error
	native    image.Point

	initialized bool
	submitted   image.Image
	saturation  float64
	rendered    bool
	closed      bool
	border      *PanelColor
}

func (f *fakeDisplay) Initialize() error {
	f.initialized = true
	return f.initErr
}

func (f *fakeDisplay) SubmitImage(img image.Image, saturation float64) error {
	f.submitted = img
	f.saturation = saturation
	return nil
}

func (f *fakeDisplay) Render() error {
	f.rendered = true
	return f.renderErr
}

func (f *fakeDisplay) NativeDimensions() (int, int, bool) {
	return f.native.X, f.native.Y, f.native != image.Point{}
}

func (f *fakeDisplay) SetBorder(c PanelColor) error {
	f.border = &c
	return nil
}

func (f *fakeDisplay) Close() error {
	f.closed = true
	return nil
}

type testRun struct {
	app    *App
	dev    *fakeDisplay
	opened int
	kind   string
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newTestRun(t *testing.T, dev *fakeDisplay) *testRun {
	t.Helper()
	// Keep the host's config out of the run.
	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "display.conf"))

	r := &testRun{dev: dev}
	r.app = NewApp(&r.out, &r.errOut)
	r.app.OpenDisplay = func(kind string, cfg DisplayConfig, opts DeviceOptions) (DisplayDevice, error) {
		r.opened++
		r.kind = kind
		return dev, nil
	}
	clock := time.Unix(0, 0)
	r.app.now = func() time.Time {
		clock = clock.Add(100 * time.Millisecond)
		return clock
	}
	return r
}

func TestRunDithersWithUserSaturation(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	p := writePNG(t, gradient(800, 600))

	require.NoError(t, r.app.Run([]string{p, "0.5"}))

	assert.Equal(t, 0.5, r.dev.saturation)
	assert.True(t, r.dev.rendered)
	assert.True(t, r.dev.closed)
	assert.Equal(t, image.Rect(0, 0, 600, 448), r.dev.submitted.Bounds())
	require.NotNil(t, r.dev.border)
	assert.Equal(t, White, *r.dev.border)

	out := r.out.String()
	for _, line := range []string{
		"Initializing display...\n",
		"Display initialized in 0.1s\n",
		"Image size: 800x600\n",
		"Resizing to 600x448...\n",
		"Resize complete in 0.1s\n",
		"Dithering with saturation=0.5...\n",
		"Dithering complete in 0.1s\n",
		"Sending to display...\n",
		"Display refresh complete in 0.1s\n",
		"Total time: ",
	} {
		assert.Contains(t, out, line)
	}
}

func TestRunPrintsWholeSaturationWithDecimal(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	p := writePNG(t, gradient(600, 448))

	require.NoError(t, r.app.Run([]string{p, "1"}))
	assert.Equal(t, 1.0, r.dev.saturation)
	assert.Contains(t, r.out.String(), "Dithering with saturation=1.0...\n")
}

func TestFormatSaturation(t *testing.T) {
	tests := map[float64]string{0: "0.0", 1: "1.0", 0.5: "0.5", 0.25: "0.25"}
	for in, want := range tests {
		assert.Equal(t, want, formatSaturation(in))
	}
}

func TestRunSkipDitherConvertsPalette(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	pal := image.NewPaletted(image.Rect(0, 0, 600, 448), Palette(1))
	for i := range pal.Pix {
		pal.Pix[i] = uint8(i % 7)
	}
	p := writePNG(t, pal)

	require.NoError(t, r.app.Run([]string{"--skip-dither", p, "0.2"}))

	assert.Equal(t, 1.0, r.dev.saturation)
	_, paletted := r.dev.submitted.(*image.Paletted)
	assert.False(t, paletted)
	assert.Equal(t, pal.Bounds(), r.dev.submitted.Bounds())
	assert.Contains(t, r.out.String(), "Image already 600x448, no resize needed.\n")
	assert.Contains(t, r.out.String(), "Using pre-dithered image, sending directly to display...\n")
	assert.NotContains(t, r.out.String(), "Dithering")
}

func TestRunMissingImagePathNeverOpensDisplay(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})

	err := r.app.Run(nil)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, r.out.String(), "Usage:")
	assert.Zero(t, r.opened)
	assert.False(t, r.dev.initialized)
}

func TestRunHelp(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	assert.NoError(t, r.app.Run([]string{"-h"}))
	assert.Zero(t, r.opened)
}

func TestRunDisplayInitFailure(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{initErr: errors.New("no spi")})
	p := writePNG(t, gradient(600, 448))

	err := r.app.Run([]string{p})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, ErrDisplayInit)
	assert.Contains(t, exitErr.Message, "no spi")
	assert.Nil(t, r.dev.submitted)
	assert.True(t, r.dev.closed)
}

func TestRunImageNotFound(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})

	err := r.app.Run([]string{filepath.Join(t.TempDir(), "gone.jpg")})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, ErrImageLoad)
	assert.False(t, r.dev.rendered)
}

func TestRunRenderFailure(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{renderErr: errors.New("busy")})
	p := writePNG(t, gradient(600, 448))

	err := r.app.Run([]string{p})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, ErrRender)
}

func TestRunDetectedSizeOverridesConfig(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{native: image.Pt(640, 400)})
	conf := filepath.Join(t.TempDir(), "display.conf")
	require.NoError(t, os.WriteFile(conf, []byte("DISPLAY_WIDTH=800\nDISPLAY_HEIGHT=480\n"), 0644))
	p := writePNG(t, gradient(100, 100))

	require.NoError(t, r.app.Run([]string{"--config", conf, p}))
	assert.Equal(t, image.Rect(0, 0, 640, 400), r.dev.submitted.Bounds())
}

func TestRunUsesConfigFile(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	conf := filepath.Join(t.TempDir(), "display.conf")
	require.NoError(t, os.WriteFile(conf, []byte("DISPLAY_WIDTH=800\nDISPLAY_HEIGHT=480\nDISPLAY_DEVICE=lcd\n"), 0644))
	t.Setenv(ConfigEnv, conf)
	p := writePNG(t, gradient(100, 100))

	require.NoError(t, r.app.Run([]string{p, "--device", "fb"}))
	assert.Equal(t, image.Rect(0, 0, 800, 480), r.dev.submitted.Bounds())
	assert.Equal(t, "fb", r.kind)
}

func TestRunRotationBeforeResize(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	p := writePNG(t, gradient(448, 600))

	require.NoError(t, r.app.Run([]string{p, "--rotation", "90"}))
	assert.Contains(t, r.out.String(), "Image size: 448x600\n")
	assert.Contains(t, r.out.String(), "Image already 600x448, no resize needed.\n")
}

func TestRunAutoBorder(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	img := image.NewNRGBA(image.Rect(0, 0, 600, 448))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 10, 20, 230, 255
	}
	p := writePNG(t, img)

	require.NoError(t, r.app.Run([]string{p, "--border", "auto"}))
	require.NotNil(t, r.dev.border)
	assert.Equal(t, Blue, *r.dev.border)
}

func TestRunOverlays(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	img := image.NewNRGBA(image.Rect(0, 0, 600, 448))
	p := writePNG(t, img)

	require.NoError(t, r.app.Run([]string{p, "--caption", "Hello", "--qr", "https://example.com"}))
	got := r.dev.submitted
	assert.Equal(t, image.Rect(0, 0, 600, 448), got.Bounds())
	// Caption band corners stay white.
	assert.Equal(t, color.NRGBAModel.Convert(color.White), color.NRGBAModel.Convert(got.At(5, 445)))
	assert.Equal(t, color.NRGBAModel.Convert(color.White), color.NRGBAModel.Convert(got.At(590, 440)))
}

func TestRunSplash(t *testing.T) {
	r := newTestRun(t, &fakeDisplay{})
	require.NoError(t, r.app.Run([]string{"--splash"}))
	assert.Contains(t, r.out.String(), "Image size: 600x448\n")
	assert.True(t, r.dev.rendered)
}
