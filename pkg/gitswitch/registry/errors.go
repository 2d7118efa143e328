package registry

import "errors"

var (
	// ErrInvalidIdentity indicates activation of a username that is not registered.
	ErrInvalidIdentity = errors.New("unknown identity")
	// ErrSSHKeyMismatch indicates the key file no longer matches the hash recorded when it was added.
	ErrSSHKeyMismatch = errors.New("ssh key has changed")
	// ErrKeyUnreadable wraps failures to hash an identity's key file.
	ErrKeyUnreadable = errors.New("ssh key unreadable")
	// ErrGitConfig wraps failures to write the git config.
	ErrGitConfig = errors.New("failed to update git config")
	// ErrSSHConfig wraps failures to write the ssh config.
	ErrSSHConfig = errors.New("failed to update ssh config")
	// ErrSave wraps failures to persist the identity list.
	ErrSave = errors.New("failed to save identities")
)
