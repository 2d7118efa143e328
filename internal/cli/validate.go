package cli

import (
	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
)

// Validate re-hashes the key file of every identity and reports the ones whose
// key changed or can no longer be read.
func (c *CLI) Validate() *output.Error {
	checks := c.registry.Validate()
	if len(checks) == 0 {
		c.output.Linef("no identities registered")
		return nil
	}

	failed := 0
	for _, check := range checks {
		switch {
		case check.Err != nil:
			failed++
			c.output.Linef("FAIL %s: %v", check.Identity.Username, check.Err)
		case !check.OK:
			failed++
			c.output.Linef("FAIL %s: ssh key %s has changed", check.Identity.Username, check.Identity.SshKeyPath)
		default:
			c.output.Linef("ok   %s", check.Identity.Username)
		}
	}

	if failed > 0 {
		return output.Errorf(output.CodeSSHKeyMismatch, "%d of %d identities failed validation", failed, len(checks))
	}

	return nil
}
