package cli

import (
	"os"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/config"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
)

// InitConfig writes a config file holding the effective file locations.
func (c *CLI) InitConfig(force bool) *output.Error {
	if _, err := os.Stat(c.configPath); err == nil && !force {
		return output.Errorf(output.CodeConfigExists, "config file already exists: %s (use --force to overwrite)", c.configPath)
	}

	if err := config.Save(c.configPath, c.config); err != nil {
		return output.Errorf(output.CodeConfigSaveError, "failed to save config: %w", err)
	}

	c.output.Linef("wrote config to %s", c.configPath)

	return nil
}
