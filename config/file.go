package config

// file.go - config file loading.
//
// relayctl reads the same config file as the daemon it controls, so an
// operator never has to repeat the control port or certificate paths on
// the command line.  The file is YAML; unset keys keep their defaults.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads path and overlays its values onto the defaults.  An
// unreadable or malformed file is a fatal condition: the identity
// material paths come from it, so there is nothing sensible to fall
// back to.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}
