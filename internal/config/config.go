// Package config provides configuration types, defaults and loading for sice.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/sice/internal/log"
)

var (
	ErrInvalidSeparator = errors.New("separator must be exactly one character")
	ErrInvalidTabWidth  = errors.New("tab width must be between 1 and 16")
	ErrEmptyColor       = errors.New("theme color must not be empty")
)

// Config holds all configuration options for sice.
type Config struct {
	Separator string      `mapstructure:"separator" yaml:"separator"`
	TabWidth  int         `mapstructure:"tab_width" yaml:"tab_width"`
	Debug     bool        `mapstructure:"debug" yaml:"debug"`
	LogFile   string      `mapstructure:"log_file" yaml:"log_file"`
	Theme     ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// ThemeConfig holds one color per display category. Values are ANSI color
// indexes ("6") or hex colors ("#00ffff").
type ThemeConfig struct {
	Comment   string `mapstructure:"comment" yaml:"comment"`
	Separator string `mapstructure:"separator" yaml:"separator"`
	Leading   string `mapstructure:"leading" yaml:"leading"`
	Normal    string `mapstructure:"normal" yaml:"normal"`
	StatusFg  string `mapstructure:"status_fg" yaml:"status_fg"`
	StatusBg  string `mapstructure:"status_bg" yaml:"status_bg"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Separator: "%",
		TabWidth:  4,
		Debug:     false,
		LogFile:   "sice.log",
		Theme: ThemeConfig{
			Comment:   "6",
			Separator: "5",
			Leading:   "1",
			Normal:    "7",
			StatusFg:  "7",
			StatusBg:  "4",
		},
	}
}

// SeparatorRune returns the separator as a rune. Call Validate first.
func (c Config) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// Validate checks c for values the editor cannot use.
func Validate(c Config) error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: got %q", ErrInvalidSeparator, c.Separator)
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("%w: got %d", ErrInvalidTabWidth, c.TabWidth)
	}
	colors := []struct{ key, value string }{
		{"theme.comment", c.Theme.Comment},
		{"theme.separator", c.Theme.Separator},
		{"theme.leading", c.Theme.Leading},
		{"theme.normal", c.Theme.Normal},
		{"theme.status_fg", c.Theme.StatusFg},
		{"theme.status_bg", c.Theme.StatusBg},
	}
	for _, color := range colors {
		if strings.TrimSpace(color.value) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyColor, color.key)
		}
	}
	return nil
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("separator", d.Separator)
	v.SetDefault("tab_width", d.TabWidth)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("theme.comment", d.Theme.Comment)
	v.SetDefault("theme.separator", d.Theme.Separator)
	v.SetDefault("theme.leading", d.Theme.Leading)
	v.SetDefault("theme.normal", d.Theme.Normal)
	v.SetDefault("theme.status_fg", d.Theme.StatusFg)
	v.SetDefault("theme.status_bg", d.Theme.StatusBg)
}

// Load reads configuration into a Config.
//
// Lookup order when cfgFile is empty:
// 1. .sice.yaml (current directory)
// 2. ~/.config/sice/config.yaml (user config)
//
// A missing config file is not an error unless cfgFile names it. SICE_*
// environment variables and any flags bound to v override file values.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("SICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(".sice.yaml"); err == nil {
		v.SetConfigFile(".sice.yaml")
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sice"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", cfgFile)
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file, using defaults")
	} else {
		log.Debug(log.CatConfig, "Loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Marshal renders c as YAML.
func Marshal(c Config) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}
