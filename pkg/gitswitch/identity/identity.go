// Package identity defines the identities managed by gitswitch and helpers
// to describe their SSH keys.
package identity

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
)

// Validate checks that the fields needed for activation are set.
func (i *Identity) Validate() error {
	switch {
	case strings.TrimSpace(i.Username) == "":
		return ErrMissingUsername
	case strings.ContainsAny(i.Username, "\r\n"):
		return fmt.Errorf("username: %w", ErrMultiline)
	case strings.TrimSpace(i.Email) == "":
		return ErrMissingEmail
	case strings.ContainsAny(i.Email, "\r\n"):
		return fmt.Errorf("email: %w", ErrMultiline)
	case strings.TrimSpace(i.SshKeyPath) == "":
		return ErrMissingKeyPath
	}

	return nil
}

// String returns "username <email>".
func (i *Identity) String() string {
	return fmt.Sprintf("%s <%s>", i.Username, i.Email)
}

// PublicKeyFingerprint returns the SHA256 fingerprint and type of the public
// half of the key at keyPath. It prefers keyPath + ".pub" and falls back to
// the private key itself, which works for unencrypted keys and for encrypted
// keys in OpenSSH format.
func PublicKeyFingerprint(keyPath string) (fingerprint, keyType string, err error) { //nolint:nonamedreturns
	pub, err := readPublicKey(keyPath)
	if err != nil {
		return "", "", err
	}

	return ssh.FingerprintSHA256(pub), pub.Type(), nil
}

func readPublicKey(keyPath string) (ssh.PublicKey, error) {
	if data, err := os.ReadFile(keyPath + ".pub"); err == nil {
		pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
		if err == nil {
			return pub, nil
		}
	}

	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(data)
	if err == nil {
		return signer.PublicKey(), nil
	}

	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) && missing.PublicKey != nil {
		return missing.PublicKey, nil
	}

	return nil, fmt.Errorf("failed to parse key %s: %w", keyPath, err)
}
