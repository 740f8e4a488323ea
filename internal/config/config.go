// Package config loads the optional per-project homer.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/FranckyCastell/homer/internal/constants"
)

// Config holds the per-project settings. All fields are optional; zero
// values fall back to the defaults below.
type Config struct {
	// TerraformBin overrides the terraform executable name.
	TerraformBin string `toml:"terraform_bin"`

	// PackerBin overrides the packer executable name.
	PackerBin string `toml:"packer_bin"`

	// NoColor disables colorized output for this project.
	NoColor bool `toml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TerraformBin: "terraform",
		PackerBin:    "packer",
	}
}

// Load reads homer.toml from the project root. A missing file yields the
// defaults; a malformed file is an error.
func Load(projectRoot string) (Config, error) {
	cfg := Default()
	path := filepath.Join(projectRoot, constants.ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("leyendo %s: %w", path, err)
	}
	if cfg.TerraformBin == "" {
		cfg.TerraformBin = "terraform"
	}
	if cfg.PackerBin == "" {
		cfg.PackerBin = "packer"
	}
	return cfg, nil
}
