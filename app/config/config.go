// Package config loads the calculator's YAML settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sparkcalc/sparkos/calc"
)

// ErrConfig is wrapped by every configuration failure.
var ErrConfig = errors.New("config")

// Config selects the startup behavior of the calculator.
type Config struct {
	AngleMode        string `yaml:"angle_mode"`
	DecimalSeparator string `yaml:"decimal_separator"`
	ErrorText        string `yaml:"error_text"`
	// Scale is the desktop window scale factor.
	Scale   int  `yaml:"scale"`
	LogKeys bool `yaml:"log_keys"`

	// Keys are pressed once the system is up. Set from the command line only.
	Keys []calc.Key `yaml:"-"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		AngleMode:        calc.Degrees.String(),
		DecimalSeparator: calc.DefaultLocale.DecimalSep,
		ErrorText:        calc.DefaultLocale.ErrorText,
		Scale:            2,
	}
}

// Load reads a YAML file over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, ok := calc.ParseAngleMode(c.AngleMode); !ok {
		return fmt.Errorf("%w: angle_mode %q (want deg or rad)", ErrConfig, c.AngleMode)
	}
	switch c.DecimalSeparator {
	case ".", ",":
	default:
		return fmt.Errorf("%w: decimal_separator %q (want \".\" or \",\")", ErrConfig, c.DecimalSeparator)
	}
	if c.ErrorText == "" || len(c.ErrorText) > 16 {
		return fmt.Errorf("%w: error_text must be 1..16 bytes", ErrConfig)
	}
	if c.Scale < 1 || c.Scale > 8 {
		return fmt.Errorf("%w: scale %d out of range 1..8", ErrConfig, c.Scale)
	}
	return nil
}

// Angle returns the configured angle mode, degrees when unset or invalid.
func (c Config) Angle() calc.AngleMode {
	m, ok := calc.ParseAngleMode(c.AngleMode)
	if !ok {
		return calc.Degrees
	}
	return m
}

func (c Config) Locale() calc.Locale {
	loc := calc.DefaultLocale
	if c.DecimalSeparator != "" {
		loc.DecimalSep = c.DecimalSeparator
	}
	if c.ErrorText != "" {
		loc.ErrorText = c.ErrorText
	}
	return loc
}
