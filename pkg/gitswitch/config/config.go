// Package config reads the gitswitch configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the locations gitswitch reads and writes. Empty fields mean
// the platform default.
type Config struct {
	GitConfig string `yaml:"git_config,omitempty"` // git config file receiving [user]
	SSHConfig string `yaml:"ssh_config,omitempty"` // ssh client config receiving IdentityFile
	Store     string `yaml:"store,omitempty"`      // identity list
}

// Load reads the config from path. A missing or empty file yields the zero
// Config and found == false.
func Load(path string) (cfg Config, found bool, err error) { //nolint:nonamedreturns
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("failed to read config: %w", err)
	}

	if len(data) == 0 {
		return Config{}, false, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, true, nil
}

// Save writes the config to the specified path with proper formatting
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// WithDefaults fills empty fields from defaults.
func (c Config) WithDefaults(defaults Config) Config {
	if c.GitConfig == "" {
		c.GitConfig = defaults.GitConfig
	}
	if c.SSHConfig == "" {
		c.SSHConfig = defaults.SSHConfig
	}
	if c.Store == "" {
		c.Store = defaults.Store
	}
	return c
}
