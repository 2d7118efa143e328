package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/fsio"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/identity"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
)

// IdentityEntry is the listing form of an identity.
type IdentityEntry struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	SshKeyPath  string `json:"ssh_key_path"`
	Fingerprint string `json:"fingerprint,omitempty"`
	KeyType     string `json:"key_type,omitempty"`
	Current     bool   `json:"current"`
}

// Add registers an identity, or refreshes the email, key path and key hash
// of an identity with the same username.
func (c *CLI) Add(username, email, keyPath string) *output.Error {
	keyPath = fsio.ExpandHome(keyPath)
	if keyPath != "" {
		abs, err := filepath.Abs(keyPath)
		if err != nil {
			return output.Errorf(output.CodeInvalidInput, "invalid key path %s: %w", keyPath, err)
		}
		keyPath = abs
	}

	id := &identity.Identity{
		Username:   strings.TrimSpace(username),
		Email:      strings.TrimSpace(email),
		SshKeyPath: keyPath,
	}
	if err := id.Validate(); err != nil {
		return output.Errorf(output.CodeInvalidInput, "%w", err).ForIdentity(id.Username, id.SshKeyPath)
	}

	existed := c.registry.FindByUsername(id.Username) != nil
	if err := c.registry.Add(id); err != nil {
		return registryError(err, id.Username, id.SshKeyPath)
	}

	if existed {
		c.output.Linef("updated identity %s", id)
	} else {
		c.output.Linef("added identity %s", id)
	}

	if cur := c.registry.Current(); cur != nil && cur.Username == id.Username {
		c.output.Warn(output.Warning{
			Code:     output.CodeWarnNotCurrent,
			Message:  fmt.Sprintf("%s is the current identity; run 'gitswitch use %s' to apply the changes", id.Username, id.Username),
			Username: id.Username,
			KeyPath:  id.SshKeyPath,
		})
	}

	return nil
}

// Remove unregisters username. Unless skipConfirm is set the user is asked first.
func (c *CLI) Remove(username string, skipConfirm bool) *output.Error {
	id := c.registry.FindByUsername(username)
	if id == nil {
		return output.Errorf(output.CodeIdentityNotFound, "unknown identity: %s", username).ForIdentity(username, "")
	}

	if !skipConfirm {
		confirmed, confirmErr := c.confirm(fmt.Sprintf("Remove identity %s?", id), c.output.Stderr())
		if confirmErr != nil {
			return confirmErr
		}
		if !confirmed {
			return output.Errorf(output.CodeCancelled, "aborted")
		}
	}

	wasCurrent := c.registry.Current() == id
	if err := c.registry.Remove(id); err != nil {
		return registryError(err, id.Username, id.SshKeyPath)
	}

	c.output.Linef("removed identity %s", username)
	if wasCurrent {
		c.output.Warn(output.Warning{
			Code:     output.CodeWarnNotCurrent,
			Message:  fmt.Sprintf("%s was the current identity; git and ssh config were left unchanged", username),
			Username: id.Username,
			KeyPath:  id.SshKeyPath,
		})
	}

	return nil
}

// List prints every registered identity in insertion order.
func (c *CLI) List(jsonOutput bool) *output.Error {
	c.output.SetJSON(jsonOutput)

	entries := c.entries()

	if jsonOutput {
		return c.finish(entries, nil)
	}

	if len(entries) == 0 {
		c.output.Linef("no identities registered")
		return nil
	}

	for _, e := range entries {
		marker := " "
		if e.Current {
			marker = "*"
		}
		c.output.Linef("%s %s <%s>", marker, e.Username, e.Email)
		if e.Fingerprint != "" {
			c.output.Linef("    key: %s (%s %s)", e.SshKeyPath, e.KeyType, e.Fingerprint)
		} else {
			c.output.Linef("    key: %s", e.SshKeyPath)
		}
	}

	return nil
}

func (c *CLI) entries() []IdentityEntry {
	current := c.registry.Current()
	ids := c.registry.Identities()

	entries := make([]IdentityEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, c.entry(id, id == current))
	}

	return entries
}

func (c *CLI) entry(id *identity.Identity, current bool) IdentityEntry {
	e := IdentityEntry{
		Username:   id.Username,
		Email:      id.Email,
		SshKeyPath: id.SshKeyPath,
		Current:    current,
	}

	fp, keyType, err := identity.PublicKeyFingerprint(id.SshKeyPath)
	if err != nil {
		c.output.Warn(output.Warning{
			Code:     output.CodeWarnKeyUnreadable,
			Message:  fmt.Sprintf("cannot read public key of %s: %v", id.Username, err),
			Username: id.Username,
			KeyPath:  id.SshKeyPath,
		})
		return e
	}
	e.Fingerprint = fp
	e.KeyType = keyType

	return e
}

// Use activates username as the git and ssh identity.
func (c *CLI) Use(username string) *output.Error {
	if err := c.registry.Activate(username); err != nil {
		keyPath := ""
		if id := c.registry.FindByUsername(username); id != nil {
			keyPath = id.SshKeyPath
		}
		return registryError(err, username, keyPath)
	}

	c.output.Linef("switched to %s", c.registry.Current())

	return nil
}

// Current prints the current identity.
func (c *CLI) Current(jsonOutput bool) *output.Error {
	c.output.SetJSON(jsonOutput)

	id := c.registry.Current()
	if id == nil {
		return c.finish(nil, output.Errorf(output.CodeNoCurrent, "no identity is active; run 'gitswitch use USERNAME'"))
	}

	e := c.entry(id, true)
	if jsonOutput {
		return c.finish(e, nil)
	}

	c.output.Linef("%s", id)
	c.output.Linef("key: %s", e.SshKeyPath)
	if e.Fingerprint != "" {
		c.output.Linef("fingerprint: %s %s", e.KeyType, e.Fingerprint)
	}

	return nil
}

// Usernames returns the registered usernames in insertion order.
func (c *CLI) Usernames() []string {
	ids := c.registry.Identities()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.Username)
	}
	return names
}
