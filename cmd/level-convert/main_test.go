package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	levels "github.com/tphakala/go-level-converter"
)

func TestLoadDefaults_NoPath(t *testing.T) {
	cfg, err := loadDefaults("")
	require.NoError(t, err)
	assert.Equal(t, levels.DefaultImpedance, cfg.Impedance)
	assert.Equal(t, levels.DefaultDigits, cfg.Digits)
}

func TestLoadDefaults_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.toml")

	cfg, err := loadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, levels.DefaultImpedance, cfg.Impedance)
	assert.Equal(t, levels.DefaultDigits, cfg.Digits)

	// The file must now exist with the built-in defaults for editing.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "impedance")
	assert.Contains(t, string(data), "rounding_digits")
}

func TestLoadDefaults_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.toml")
	content := "impedance = 50.0\nrounding_digits = 6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Impedance)
	assert.Equal(t, 6, cfg.Digits)
}

func TestLoadDefaults_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.toml")
	require.NoError(t, os.WriteFile(path, []byte("impedance = 75.0\n"), 0o644))

	cfg, err := loadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.Impedance)
	assert.Equal(t, levels.DefaultDigits, cfg.Digits)
}

func TestLoadDefaults_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.toml")
	require.NoError(t, os.WriteFile(path, []byte("impedance = = nope"), 0o644))

	_, err := loadDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse defaults file")
}

func TestApplyFlagOverrides(t *testing.T) {
	base := func() *levels.Config {
		return &levels.Config{Impedance: 50, Digits: 6}
	}

	// Unset flags leave the config-file values alone.
	cfg := base()
	applyFlagOverrides(cfg, map[string]bool{}, 0, 0)
	assert.Equal(t, 50.0, cfg.Impedance)
	assert.Equal(t, 6, cfg.Digits)

	// Set flags win regardless of their value.
	cfg = base()
	applyFlagOverrides(cfg, map[string]bool{"impedance": true, "digits": true}, 600, 4)
	assert.Equal(t, 600.0, cfg.Impedance)
	assert.Equal(t, 4, cfg.Digits)

	// An explicit zero is passed through so engine validation can
	// reject it; it must not fall back to the defaults.
	cfg = base()
	applyFlagOverrides(cfg, map[string]bool{"impedance": true}, 0, 0)
	assert.Equal(t, 0.0, cfg.Impedance)
	assert.Equal(t, 6, cfg.Digits)

	_, err := levels.New(cfg)
	require.ErrorIs(t, err, levels.ErrInvalidImpedance)
}

func TestRenderResult(t *testing.T) {
	conv, err := levels.New(nil)
	require.NoError(t, err)

	result, err := conv.FromVrms(1)
	require.NoError(t, err)

	out := renderResult(result, conv.Impedance())
	assert.Contains(t, out, "* Vrms  1\n")
	assert.Contains(t, out, "  Vp    1.4142\n")
	assert.Contains(t, out, "  dBV   0\n")
	assert.Contains(t, out, "dBm into 600 ohm")
}
