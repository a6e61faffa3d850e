// Package config loads calc's settings from a YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// Config is calc's settings.
type Config struct {
	// Angle is the unit of trigonometric arguments, deg or rad.
	Angle string `yaml:"angle"`
	// History is the path of the history file. Empty keeps history in
	// memory only.
	History string `yaml:"history"`
	// Color is auto, always, or never.
	Color string `yaml:"color"`
	// Listen is the address the server listens on.
	Listen string `yaml:"listen"`
}

// Color settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the settings used when nothing else is given.
func Default() Config {
	c := Config{
		Angle:  "deg",
		Color:  ColorAuto,
		Listen: "127.0.0.1:8787",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		c.History = filepath.Join(dir, "calc", "history.json")
	}
	return c
}

// Path returns the config file location: $CALC_CONFIG if set, otherwise
// config.yaml in the user's calc config directory.
func Path() string {
	if p := os.Getenv("CALC_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// Load reads settings from the file at path over the defaults, then applies
// CALC_ANGLE, CALC_HISTORY, CALC_COLOR, and CALC_LISTEN from the
// environment. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// use defaults
		case err != nil:
			return c, err
		default:
			if err := c.decode(b); err != nil {
				return c, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	c.Angle = envOrDefault("CALC_ANGLE", c.Angle)
	c.History = envOrDefault("CALC_HISTORY", c.History)
	c.Color = envOrDefault("CALC_COLOR", c.Color)
	c.Listen = envOrDefault("CALC_LISTEN", c.Listen)
	return c, c.Validate()
}

func (c *Config) decode(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		// An empty file sets nothing.
		return nil
	}
	return err
}

// Validate checks that each setting has a meaningful value.
func (c Config) Validate() error {
	if _, err := c.AngleMode(); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color setting %q", c.Color)
	}
	return nil
}

// AngleMode returns the configured angle mode.
func (c Config) AngleMode() (calc.AngleMode, error) {
	return calc.ParseAngleMode(c.Angle)
}

// Marshal renders the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
