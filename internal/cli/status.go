package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gopasspw/gitconfig"
	"github.com/gopasspw/gopass/pkg/debug"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
)

// GitUser is the author identity git itself will use, as read back from the
// git config file.
type GitUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StatusInfo summarises the current identity and the effective git author.
type StatusInfo struct {
	Current *IdentityEntry `json:"current,omitempty"`
	Git     GitUser        `json:"git"`
	InSync  bool           `json:"in_sync"`
}

// readGitUser reads user.name and user.email from the git config at path,
// following its include directives. A missing file yields an empty user.
func readGitUser(path string) (GitUser, error) {
	cfg, err := gitconfig.LoadConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			debug.Log("git config %s does not exist", path)
			return GitUser{}, nil
		}
		return GitUser{}, err
	}

	name, _ := cfg.Get("user.name")
	email, _ := cfg.Get("user.email")

	return GitUser{Name: name, Email: email}, nil
}

// Status reports the effective git author and whether it still matches the
// current identity.
func (c *CLI) Status(jsonOutput bool) *output.Error {
	c.output.SetJSON(jsonOutput)

	user, err := readGitUser(c.config.GitConfig)
	if err != nil {
		return c.finish(nil, output.Errorf(output.CodeGitConfigError, "failed to read git config %s: %w", c.config.GitConfig, err))
	}

	info := StatusInfo{Git: user}
	if id := c.registry.Current(); id != nil {
		e := c.entry(id, true)
		info.Current = &e
		info.InSync = id.Username == user.Name && id.Email == user.Email
		if !info.InSync {
			c.output.Warn(output.Warning{
				Code:     output.CodeWarnGitConfigDrift,
				Message:  fmt.Sprintf("git config no longer matches %s; run 'gitswitch use %s' to restore it", id.Username, id.Username),
				Username: id.Username,
				KeyPath:  id.SshKeyPath,
			})
		}
	}

	if jsonOutput {
		return c.finish(info, nil)
	}

	if info.Current != nil {
		c.output.Linef("current identity: %s <%s>", info.Current.Username, info.Current.Email)
	} else {
		c.output.Linef("current identity: none")
	}
	c.output.Linef("git user.name: %s", valueOrUnset(user.Name))
	c.output.Linef("git user.email: %s", valueOrUnset(user.Email))
	c.output.Linef("%s", c.describeConfig())

	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
