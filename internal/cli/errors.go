package cli

import (
	"errors"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/registry"
)

// registryError converts an error returned by the registry into an
// output.Error about the identity username, whose key is at keyPath.
func registryError(err error, username, keyPath string) *output.Error {
	if err == nil {
		return nil
	}

	var failure *output.Error
	switch {
	case errors.Is(err, registry.ErrInvalidIdentity):
		failure = output.Errorf(output.CodeIdentityNotFound, "%w", err)
	case errors.Is(err, registry.ErrSSHKeyMismatch):
		failure = output.Errorf(output.CodeSSHKeyMismatch, "%w; run 'gitswitch add %s' again to trust the new key", err, username)
	case errors.Is(err, registry.ErrKeyUnreadable):
		failure = output.Errorf(output.CodeSSHKeyUnreadable, "%w", err)
	case errors.Is(err, registry.ErrGitConfig):
		failure = output.Errorf(output.CodeGitConfigError, "%w", err)
	case errors.Is(err, registry.ErrSSHConfig):
		failure = output.Errorf(output.CodeSSHConfigError, "%w", err)
	case errors.Is(err, registry.ErrSave):
		failure = output.Errorf(output.CodeStoreSaveError, "%w", err)
	default:
		failure = output.Errorf(output.CodeGeneralError, "%w", err)
	}

	return failure.ForIdentity(username, keyPath)
}
