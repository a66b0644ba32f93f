// Package config loads the application configuration.
//
// Configuration lives in .formatfield/config.yaml in the working directory,
// falling back to ~/.config/formatfield/config.yaml. Each entry under
// fields describes one formatted input: its label and the formatting rules
// applied to it while editing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/formatfield/internal/format"
	"github.com/zjrosen/formatfield/internal/log"
)

// FieldConfig describes one formatted field.
type FieldConfig struct {
	Label        string   `mapstructure:"label" yaml:"label"`
	Placeholder  string   `mapstructure:"placeholder" yaml:"placeholder,omitempty"`
	Rules        string   `mapstructure:"rules" yaml:"rules"`
	IgnoredChars string   `mapstructure:"ignored_chars" yaml:"ignored_chars,omitempty"`
	MaxDecimals  *int     `mapstructure:"max_decimals" yaml:"max_decimals,omitempty"`
	MinValue     *float64 `mapstructure:"min_value" yaml:"min_value,omitempty"`
	MaxValue     *float64 `mapstructure:"max_value" yaml:"max_value,omitempty"`
	Pattern      string   `mapstructure:"pattern" yaml:"pattern,omitempty"`
	Width        int      `mapstructure:"width" yaml:"width,omitempty"`
}

// FormatConfig converts the field entry to the raw formatting configuration.
func (f FieldConfig) FormatConfig() format.RawConfig {
	return format.RawConfig{
		Rules:        f.Rules,
		IgnoredChars: f.IgnoredChars,
		MaxDecimals:  f.MaxDecimals,
		MinValue:     f.MinValue,
		MaxValue:     f.MaxValue,
		Pattern:      f.Pattern,
	}
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Fields []FieldConfig `mapstructure:"fields" yaml:"fields"`
}

// Default returns the configuration used when no config file exists.
func Default() AppConfig {
	two := 2
	zero := 0.0
	return AppConfig{
		Fields: []FieldConfig{
			{Label: "Name", Placeholder: "Ada Lovelace", Rules: "onlylettersandspaces"},
			{Label: "Username", Placeholder: "ada_lovelace", Rules: "snake,lower"},
			{Label: "Amount", Placeholder: "0.00", Rules: "onlynumbers", MaxDecimals: &two, MinValue: &zero},
		},
	}
}

// DefaultConfigPath is where init writes and load looks first.
const DefaultConfigPath = ".formatfield/config.yaml"

// Load reads the configuration from path. An empty path searches the
// default locations; a missing file is not an error and yields Default().
func Load(path string) (AppConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(DefaultConfigPath)
		if _, err := os.Stat(DefaultConfigPath); os.IsNotExist(err) {
			home, herr := os.UserHomeDir()
			if herr != nil {
				log.Debug(log.CatConfig, "no config file, using defaults")
				return Default(), nil
			}
			fallback := filepath.Join(home, ".config", "formatfield", "config.yaml")
			if _, err := os.Stat(fallback); os.IsNotExist(err) {
				log.Debug(log.CatConfig, "no config file, using defaults")
				return Default(), nil
			}
			v.SetConfigFile(fallback)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if path == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				return Default(), nil
			}
		}
		return AppConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Fields) == 0 {
		cfg = Default()
	}

	log.Debug(log.CatConfig, "loaded config", "path", v.ConfigFileUsed(), "fields", len(cfg.Fields))
	return cfg, nil
}
