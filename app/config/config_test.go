package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkcalc/sparkos/calc"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, calc.Degrees, cfg.Angle())
	assert.Equal(t, calc.DefaultLocale, cfg.Locale())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("angle_mode: rad\ndecimal_separator: \".\"\nlog_keys: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, calc.Radians, cfg.Angle())
	assert.Equal(t, ".", cfg.Locale().DecimalSep)
	assert.Equal(t, calc.ErrorText, cfg.ErrorText)
	assert.Equal(t, 2, cfg.Scale)
	assert.True(t, cfg.LogKeys)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":   "colour: red\n",
		"bad angle":     "angle_mode: grad\n",
		"bad separator": "decimal_separator: \";\"\n",
		"empty error":   "error_text: \"\"\n",
		"bad scale":     "scale: 0\n",
		"not yaml":      "angle_mode: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrConfig)
}
