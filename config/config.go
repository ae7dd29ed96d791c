// Package config loads touchkit settings from defaults, an optional config
// file and TOUCHKIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/phanxgames/touchkit"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Gestures GestureConfig `mapstructure:"gestures"`
	Surface  SurfaceConfig `mapstructure:"surface"`
	TUIO     TUIOConfig    `mapstructure:"tuio"`
	Input    InputConfig   `mapstructure:"input"`
	Log      LogConfig     `mapstructure:"log"`
}

// GestureConfig holds the gesture catalog limits.
type GestureConfig struct {
	TapLengthMs           int64   `mapstructure:"tap_length_ms"`
	HoldLengthMs          int64   `mapstructure:"hold_length_ms"`
	DoubleTapBreakMs      int64   `mapstructure:"double_tap_break_ms"`
	DragThresholdPx       float64 `mapstructure:"drag_threshold_px"`
	StationaryTolerancePx float64 `mapstructure:"stationary_tolerance_px"`
	LineMinRelative       float64 `mapstructure:"line_min_relative"`
	LineStraightness      float64 `mapstructure:"line_straightness"`
	LineMinPath           int     `mapstructure:"line_min_path"`
}

// SurfaceConfig holds the reference extent of the touch surface.
type SurfaceConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// TUIOConfig holds the TUIO listener settings.
type TUIOConfig struct {
	Addr string `mapstructure:"addr"`
}

// InputConfig holds the local input settings.
type InputConfig struct {
	Mouse    bool   `mapstructure:"mouse"`
	ClearKey string `mapstructure:"clear_key"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
	Output string `mapstructure:"output"` // stdout or stderr
}

func setDefaults(v *viper.Viper) {
	t := touchkit.DefaultThresholds()
	v.SetDefault("gestures.tap_length_ms", t.TapLength)
	v.SetDefault("gestures.hold_length_ms", t.HoldLength)
	v.SetDefault("gestures.double_tap_break_ms", t.DoubleTapBreak)
	v.SetDefault("gestures.drag_threshold_px", t.DragThreshold)
	v.SetDefault("gestures.stationary_tolerance_px", t.StationaryTolerance)
	v.SetDefault("gestures.line_min_relative", t.LineMinRelative)
	v.SetDefault("gestures.line_straightness", t.LineStraightness)
	v.SetDefault("gestures.line_min_path", t.LineMinPath)
	v.SetDefault("surface.width", 1920)
	v.SetDefault("surface.height", 1080)
	v.SetDefault("tuio.addr", ":3333")
	v.SetDefault("input.mouse", true)
	v.SetDefault("input.clear_key", "F1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
}

// Load reads configuration. path names a toml or yaml file; when empty,
// $TOUCHKIT_CONFIG is used, and without either only defaults and
// environment variables apply. Env var overrides use prefix TOUCHKIT_,
// e.g. TOUCHKIT_TUIO_ADDR.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("TOUCHKIT_CONFIG")
	}

	v.SetEnvPrefix("TOUCHKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("touchkit: read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("touchkit: unmarshal config: %w", err)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return Config{}, fmt.Errorf("touchkit: surface size %vx%v must be positive", c.Surface.Width, c.Surface.Height)
	}
	return c, nil
}

// Thresholds converts the gesture section for touchkit.NewCatalog.
func (c Config) Thresholds() touchkit.Thresholds {
	g := c.Gestures
	return touchkit.Thresholds{
		TapLength:           g.TapLengthMs,
		HoldLength:          g.HoldLengthMs,
		DoubleTapBreak:      g.DoubleTapBreakMs,
		DragThreshold:       g.DragThresholdPx,
		StationaryTolerance: g.StationaryTolerancePx,
		LineMinRelative:     g.LineMinRelative,
		LineStraightness:    g.LineStraightness,
		LineMinPath:         g.LineMinPath,
	}
}

// SurfaceOptions returns options for touchkit.NewSurfaceWith, with a catalog
// built from the gesture section.
func (c Config) SurfaceOptions() touchkit.SurfaceOptions {
	return touchkit.SurfaceOptions{
		Width:   c.Surface.Width,
		Height:  c.Surface.Height,
		Catalog: touchkit.NewCatalog(c.Thresholds()),
	}
}
