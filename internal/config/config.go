// Package config loads CLI settings from nighttype.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Name is the config file base name looked up in the search paths.
const Name = "nighttype"

var ErrInvalid = errors.New("invalid config")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatMD   = "md"
)

// Config is the resolved CLI configuration.
type Config struct {
	Fonts  Fonts  `mapstructure:"fonts"`
	Output Output `mapstructure:"output"`
	Render Render `mapstructure:"render"`
	Quiz   Quiz   `mapstructure:"quiz"`
	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// Fonts are optional fallback font files for glyphs the Go fonts lack.
type Fonts struct {
	Emoji string `mapstructure:"emoji"`
	CJK   string `mapstructure:"cjk"`
}

// Paths returns the configured fallback fonts in lookup order.
func (f Fonts) Paths() []string {
	var out []string
	for _, p := range []string{f.Emoji, f.CJK} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Output struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

type Render struct {
	Concurrency int `mapstructure:"concurrency"`
	Matches     int `mapstructure:"matches"`
}

type Quiz struct {
	Binary bool `mapstructure:"binary"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fonts.emoji", "")
	v.SetDefault("fonts.cjk", "")
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", FormatText)
	v.SetDefault("render.concurrency", 4)
	v.SetDefault("render.matches", 3)
	v.SetDefault("quiz.binary", false)
}

// Load reads configuration. An explicit path must exist; otherwise
// nighttype.yaml is searched for in the working directory and
// $HOME/.config/nighttype, and a missing file leaves the defaults.
// NIGHTTYPE_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("NIGHTTYPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/nighttype")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatMD:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if c.Render.Concurrency < 0 {
		return fmt.Errorf("render.concurrency %d: %w", c.Render.Concurrency, ErrInvalid)
	}
	return nil
}
