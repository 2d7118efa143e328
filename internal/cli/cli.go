package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gitswitch/gitswitch/internal/xdg"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/config"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/fsio"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/gitcfg"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/hasher"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/registry"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/sshcfg"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/store"
)

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "GITSWITCH_CONFIG"

// ResolveConfigPath returns the effective config path considering:
// 1. Explicit configPath argument (highest priority, e.g. -c flag)
// 2. GITSWITCH_CONFIG env var
// 3. XDG default path
func ResolveConfigPath(configPath string, paths xdg.Paths, h *output.Handler) string {
	if configPath != "" {
		if os.Getenv(ConfigEnv) != "" {
			h.Warnf(output.CodeWarnIgnoringEnv, "%s environment variable ignored because -c flag was specified", ConfigEnv)
		}
		return configPath
	}
	if envConfig := os.Getenv(ConfigEnv); envConfig != "" {
		return envConfig
	}
	return paths.ConfigPath()
}

// CLI represents the command-line interface
type CLI struct {
	configPath  string
	configFound bool
	config      config.Config
	registry    *registry.Manager
	output      *output.Handler

	// confirm asks the user a yes/no question. Replaced in tests.
	confirm func(prompt string, stderr io.Writer) (bool, *output.Error)
}

// NewCLI creates a new CLI instance. A missing config file is not an error,
// the default locations are used instead.
func NewCLI(configPath string, silent bool, stdout, stderr io.Writer) (*CLI, error) {
	h := output.NewHandler(stdout, stderr, silent)

	xdgPaths, err := xdg.NewPaths()
	if err != nil {
		return nil, output.Errorf(output.CodeConfigInvalid, "failed to get XDG paths: %w", err)
	}

	configPath = ResolveConfigPath(configPath, xdgPaths, h)

	cfg, found, err := config.Load(configPath)
	if err != nil {
		return nil, output.Errorf(output.CodeConfigInvalid, "failed to load config: %w", err)
	}
	cfg = cfg.WithDefaults(defaultConfig(xdgPaths))
	cfg.GitConfig = fsio.ExpandHome(cfg.GitConfig)
	cfg.SSHConfig = fsio.ExpandHome(cfg.SSHConfig)
	cfg.Store = fsio.ExpandHome(cfg.Store)

	c := &CLI{
		configPath:  configPath,
		configFound: found,
		config:      cfg,
		output:      h,
		confirm:     PromptConfirm,
	}

	mgr, err := registry.New(store.New(cfg.Store), hasher.SHA256{}, gitcfg.New(cfg.GitConfig), sshcfg.New(cfg.SSHConfig))
	if err != nil {
		return nil, output.Errorf(output.CodeStoreLoadError, "%w", err)
	}
	c.registry = mgr

	return c, nil
}

func defaultConfig(p xdg.Paths) config.Config {
	return config.Config{
		GitConfig: p.GitConfigPath(),
		SSHConfig: p.SSHConfigPath(),
		Store:     p.StorePath(),
	}
}

// Output returns the handler every command reports through.
func (c *CLI) Output() *output.Handler {
	return c.output
}


// Config returns the effective configuration with defaults applied.
func (c *CLI) Config() config.Config {
	return c.config
}

// finish ends a command that supports --json. In JSON mode data and failure
// are written as one document; failure is returned either way so the exit
// status reflects it.
func (c *CLI) finish(data interface{}, failure *output.Error) *output.Error {
	if !c.output.JSON() {
		return failure
	}
	if err := c.output.WriteJSON(data, failure); err != nil {
		return output.Errorf(output.CodeGeneralError, "failed to write JSON: %w", err)
	}
	return failure
}

func (c *CLI) describeConfig() string {
	source := c.configPath
	if !c.configFound {
		source += " (not found, using defaults)"
	}
	return fmt.Sprintf("config: %s\ngit config: %s\nssh config: %s\nstore: %s",
		source, c.config.GitConfig, c.config.SSHConfig, c.config.Store)
}
