package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/ls-starfield/internal/starview"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"CatalogPath", cfg.CatalogPath, ""},
		{"Mode", cfg.Mode, "classic"},
		{"MaxStars", cfg.MaxStars, 500},
		{"MaxEvents", cfg.MaxEvents, 50},
		{"LogLevel", cfg.LogLevel, "info"},
		{"FocusDurationMs", cfg.FocusDurationMs, 1000},
		{"CenterFactor", cfg.CenterFactor, 1.33},
		{"OrbitSpeed", cfg.OrbitSpeed, 0.1},
		{"SelectedColor", cfg.Styles.Selected.Color, "#00ffff"},
		{"HighlightedSize", cfg.Styles.Highlighted.Size, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "mode",
			envKey: "STARFIELD_MODE",
			envVal: "instanced",
			field:  func(c Config) any { return c.Mode },
			want:   "instanced",
		},
		{
			name:   "max_stars",
			envKey: "STARFIELD_MAX_STARS",
			envVal: "42",
			field:  func(c Config) any { return c.MaxStars },
			want:   42,
		},
		{
			name:   "focus_duration_ms",
			envKey: "STARFIELD_FOCUS_DURATION_MS",
			envVal: "250",
			field:  func(c Config) any { return c.FocusDurationMs },
			want:   250,
		},
		{
			name:   "catalog_path",
			envKey: "STARFIELD_CATALOG_PATH",
			envVal: "/tmp/stars.toml",
			field:  func(c Config) any { return c.CatalogPath },
			want:   "/tmp/stars.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			t.Setenv(tt.envKey, tt.envVal)
			viper.SetEnvPrefix("STARFIELD")
			viper.AutomaticEnv()

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if got := tt.field(cfg); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key string
		val any
	}{
		{"mode", "wireframe"},
		{"max_stars", -1},
		{"max_stars", 0},
		{"focus_duration_ms", 0},
		{"center_factor", 0.0},
		{"orbit_radius", -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.val)

			_, err := Load()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() with %s=%v error = %v, want ErrInvalid", tt.key, tt.val, err)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	resetViper()
	viper.Set("mode", "Instanced")
	viper.Set("focus_duration_ms", 600)
	viper.Set("styles.selected.color", "#ff00ff")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cam := cfg.Camera()
	if cam.FocusDuration != 600*time.Millisecond {
		t.Errorf("FocusDuration = %v, want 600ms", cam.FocusDuration)
	}
	if cam.CenterDuration() != 798*time.Millisecond {
		t.Errorf("CenterDuration = %v, want 798ms", cam.CenterDuration())
	}

	sc := cfg.Session()
	if sc.Mode != starview.ModeInstanced {
		t.Errorf("Mode = %v, want instanced", sc.Mode)
	}
	if sc.Styles.Selected.Color != "#ff00ff" {
		t.Errorf("selected color = %q, want #ff00ff", sc.Styles.Selected.Color)
	}
	if sc.Styles.Regular != starview.DefaultStyles().Regular {
		t.Errorf("regular style = %+v, want defaults", sc.Styles.Regular)
	}
}
