package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/touchkit"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOUCHKIT_CONFIG", "")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, touchkit.DefaultThresholds(), c.Thresholds())
	assert.Equal(t, 1920.0, c.Surface.Width)
	assert.Equal(t, 1080.0, c.Surface.Height)
	assert.Equal(t, ":3333", c.TUIO.Addr)
	assert.True(t, c.Input.Mouse)
	assert.Equal(t, "F1", c.Input.ClearKey)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touchkit.yaml")
	data := []byte(`
gestures:
  tap_length_ms: 150
  drag_threshold_px: 12.5
surface:
  width: 3840
  height: 2160
tuio:
  addr: "127.0.0.1:3334"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	th := c.Thresholds()
	assert.EqualValues(t, 150, th.TapLength)
	assert.Equal(t, 12.5, th.DragThreshold)
	assert.EqualValues(t, touchkit.HoldLength, th.HoldLength, "untouched keys keep defaults")
	assert.Equal(t, 3840.0, c.Surface.Width)
	assert.Equal(t, "127.0.0.1:3334", c.TUIO.Addr)
}

func TestLoadTOMLFromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[input]\nmouse = false\n"), 0o644))
	t.Setenv("TOUCHKIT_CONFIG", path)

	c, err := Load("")
	require.NoError(t, err)
	assert.False(t, c.Input.Mouse)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TOUCHKIT_CONFIG", "")
	t.Setenv("TOUCHKIT_TUIO_ADDR", ":4444")
	t.Setenv("TOUCHKIT_GESTURES_HOLD_LENGTH_MS", "800")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":4444", c.TUIO.Addr)
	assert.EqualValues(t, 800, c.Gestures.HoldLengthMs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsEmptySurface(t *testing.T) {
	t.Setenv("TOUCHKIT_CONFIG", "")
	t.Setenv("TOUCHKIT_SURFACE_WIDTH", "0")

	_, err := Load("")
	require.Error(t, err)
}

func TestSurfaceOptionsCatalog(t *testing.T) {
	t.Setenv("TOUCHKIT_CONFIG", "")
	t.Setenv("TOUCHKIT_GESTURES_TAP_LENGTH_MS", "120")

	c, err := Load("")
	require.NoError(t, err)

	opts := c.SurfaceOptions()
	require.NotNil(t, opts.Catalog)
	assert.EqualValues(t, 120, opts.Catalog.Thresholds().TapLength)
	assert.NotNil(t, opts.Catalog.ByName(touchkit.NameDoubleTap))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	_, err = NewLogger(LogConfig{Level: "loud"})
	require.Error(t, err)

	_, err = NewLogger(LogConfig{Level: "info", Output: "printer"})
	require.Error(t, err)

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
}

func TestNewLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "json", zerolog.InfoLevel)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("gesture", "tap").Msg("fired")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"gesture":"tap"`)
	assert.Contains(t, out, `"message":"fired"`)
}
