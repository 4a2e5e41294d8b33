// Package config loads runtime configuration for starfield.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/session"
	"github.com/litescript/ls-starfield/internal/starview"
)

// ErrInvalid is wrapped by every validation failure from Load.
var ErrInvalid = errors.New("invalid configuration")

// TierConfig mirrors starview.TierStyle.
type TierConfig struct {
	Size  float64 `mapstructure:"size"`
	Glow  float64 `mapstructure:"glow"`
	Color string  `mapstructure:"color"`
}

// StylesConfig holds per-tier visual settings.
type StylesConfig struct {
	Regular     TierConfig `mapstructure:"regular"`
	Highlighted TierConfig `mapstructure:"highlighted"`
	Selected    TierConfig `mapstructure:"selected"`
}

// Config holds all runtime configuration.
// Values are populated from .starfield.toml, STARFIELD_* env vars, and CLI flags.
type Config struct {
	CatalogPath     string       `mapstructure:"catalog_path"`
	Mode            string       `mapstructure:"mode"`
	MaxStars        int          `mapstructure:"max_stars"`
	MaxEvents       int          `mapstructure:"max_events"`
	LogLevel        string       `mapstructure:"log_level"`
	LogFile         string       `mapstructure:"log_file"`
	FocusDurationMs int          `mapstructure:"focus_duration_ms"`
	CenterFactor    float64      `mapstructure:"center_factor"`
	OrbitSpeed      float64      `mapstructure:"orbit_speed"`
	OrbitRadius     float64      `mapstructure:"orbit_radius"`
	OrbitElevation  float64      `mapstructure:"orbit_elevation"`
	Styles          StylesConfig `mapstructure:"styles"`
}

func setDefaults() {
	cam := camera.DefaultConfig()
	st := starview.DefaultStyles()

	viper.SetDefault("catalog_path", "")
	viper.SetDefault("mode", starview.ModeClassic.String())
	viper.SetDefault("max_stars", 500)
	viper.SetDefault("max_events", 50)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "")
	viper.SetDefault("focus_duration_ms", int(cam.FocusDuration/time.Millisecond))
	viper.SetDefault("center_factor", cam.CenterFactor)
	viper.SetDefault("orbit_speed", cam.OrbitSpeed)
	viper.SetDefault("orbit_radius", cam.OrbitRadius)
	viper.SetDefault("orbit_elevation", cam.OrbitElevation)

	for name, ts := range map[string]starview.TierStyle{
		"regular":     st.Regular,
		"highlighted": st.Highlighted,
		"selected":    st.Selected,
	} {
		viper.SetDefault("styles."+name+".size", ts.SizeMultiplier)
		viper.SetDefault("styles."+name+".glow", ts.GlowMultiplier)
		viper.SetDefault("styles."+name+".color", ts.Color)
	}
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !starview.ValidMode(c.Mode) {
		return fmt.Errorf("%w: mode %q (want classic or instanced)", ErrInvalid, c.Mode)
	}
	if c.MaxStars <= 0 {
		return fmt.Errorf("%w: max_stars must be > 0, got %d", ErrInvalid, c.MaxStars)
	}
	if c.FocusDurationMs <= 0 {
		return fmt.Errorf("%w: focus_duration_ms must be > 0, got %d", ErrInvalid, c.FocusDurationMs)
	}
	if c.CenterFactor <= 0 {
		return fmt.Errorf("%w: center_factor must be > 0, got %g", ErrInvalid, c.CenterFactor)
	}
	if c.OrbitRadius <= 0 {
		return fmt.Errorf("%w: orbit_radius must be > 0, got %g", ErrInvalid, c.OrbitRadius)
	}
	return nil
}

// TierStyles converts the tier settings.
func (c Config) TierStyles() starview.Styles {
	conv := func(t TierConfig) starview.TierStyle {
		return starview.TierStyle{SizeMultiplier: t.Size, GlowMultiplier: t.Glow, Color: t.Color}
	}
	return starview.Styles{
		Regular:     conv(c.Styles.Regular),
		Highlighted: conv(c.Styles.Highlighted),
		Selected:    conv(c.Styles.Selected),
	}
}

// Camera converts the camera timing and orbit settings.
func (c Config) Camera() camera.Config {
	return camera.Config{
		FocusDuration:  time.Duration(c.FocusDurationMs) * time.Millisecond,
		CenterFactor:   c.CenterFactor,
		OrbitSpeed:     c.OrbitSpeed,
		OrbitRadius:    c.OrbitRadius,
		OrbitElevation: c.OrbitElevation,
	}
}

// Session builds a session configuration.
func (c Config) Session() session.Config {
	return session.Config{
		Mode:      starview.ParseMode(c.Mode),
		MaxStars:  c.MaxStars,
		Styles:    c.TierStyles(),
		Camera:    c.Camera(),
		MaxEvents: c.MaxEvents,
	}
}
