// Package config loads photopick preferences from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI UIConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	WindowCount int    `mapstructure:"window_count"` // images shown side by side
	PreviewRows int    `mapstructure:"preview_rows"` // preview height in terminal rows
	ShowExif    bool   `mapstructure:"show_exif"`    // caption previews with the EXIF capture date
	ColorBadges bool   `mapstructure:"color_badges"` // colored presence badges, plain text when off
	DateFormat  string `mapstructure:"date_format"`
}

// Window-count and preview-size bounds.
const (
	MinWindowCount = 1
	MaxWindowCount = 11
	MinPreviewRows = 4
	MaxPreviewRows = 40
)

// Load reads configuration from file and env. Env var overrides use
// prefix PHOTOPICK_. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.window_count", 1)
	v.SetDefault("ui.preview_rows", 12)
	v.SetDefault("ui.show_exif", true)
	v.SetDefault("ui.color_badges", true)
	v.SetDefault("ui.date_format", "2006-01-02")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PHOTOPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "photopick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PHOTOPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// normalize clamps out-of-range values back to bounds so a hand-edited
// config cannot break the layout.
func normalize(c Config) Config {
	if c.UI.WindowCount < MinWindowCount {
		c.UI.WindowCount = MinWindowCount
	}
	if c.UI.WindowCount > MaxWindowCount {
		c.UI.WindowCount = MaxWindowCount
	}
	if c.UI.PreviewRows < MinPreviewRows {
		c.UI.PreviewRows = MinPreviewRows
	}
	if c.UI.PreviewRows > MaxPreviewRows {
		c.UI.PreviewRows = MaxPreviewRows
	}
	if strings.TrimSpace(c.UI.DateFormat) == "" {
		c.UI.DateFormat = "2006-01-02"
	}
	return c
}
