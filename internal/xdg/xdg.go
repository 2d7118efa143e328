package xdg

import (
	"os"
	"path/filepath"
)

// Paths holds XDG-compliant directory paths plus the user's home directory
type Paths struct {
	Home       string
	ConfigHome string
	DataHome   string
}

// NewPaths returns XDG-compliant directory paths
// If XDG environment variables are set, they are used; otherwise, defaults are applied
func NewPaths() (Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	return Paths{
		Home:       homeDir,
		ConfigHome: configHome,
		DataHome:   dataHome,
	}, nil
}

// ConfigPath returns the path to the gitswitch config file
func (p Paths) ConfigPath() string {
	return filepath.Join(p.ConfigHome, "gitswitch", "config")
}

// StorePath returns the path to the identity list
func (p Paths) StorePath() string {
	return filepath.Join(p.DataHome, "gitswitch", "identities.yaml")
}

// GitConfigPath returns the global git config edited on activation
func (p Paths) GitConfigPath() string {
	return filepath.Join(p.Home, ".gitconfig")
}

// SSHConfigPath returns the ssh client config edited on activation
func (p Paths) SSHConfigPath() string {
	return filepath.Join(p.Home, ".ssh", "config")
}
