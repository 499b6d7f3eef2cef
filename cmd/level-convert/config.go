package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	levels "github.com/tphakala/go-level-converter"
)

// fileDefaults mirrors the TOML defaults file.
type fileDefaults struct {
	Impedance      float64 `toml:"impedance"`
	RoundingDigits int     `toml:"rounding_digits"`
}

// loadDefaults resolves the conversion context defaults. With no path
// the built-in defaults apply. A missing file is created with the
// built-in defaults so the user has something to edit; an existing file
// overrides whichever keys it sets.
func loadDefaults(path string) (*levels.Config, error) {
	cfg := &levels.Config{
		Impedance: levels.DefaultImpedance,
		Digits:    levels.DefaultDigits,
	}

	if path == "" {
		return cfg, nil
	}

	// Create default if not exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfgFile, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create defaults file: %w", err)
		}
		defer cfgFile.Close()

		defaults := fileDefaults{
			Impedance:      levels.DefaultImpedance,
			RoundingDigits: levels.DefaultDigits,
		}
		if err := toml.NewEncoder(cfgFile).Encode(defaults); err != nil {
			return nil, fmt.Errorf("failed to write defaults file: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	var fd fileDefaults
	if _, err := toml.DecodeFile(path, &fd); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file: %w", err)
	}

	if fd.Impedance != 0 {
		cfg.Impedance = fd.Impedance
	}
	if fd.RoundingDigits != 0 {
		cfg.Digits = fd.RoundingDigits
	}

	return cfg, nil
}
