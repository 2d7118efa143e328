// Package hasher fingerprints SSH key files so later changes to them can be detected.
package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// SHA256 hashes file contents with SHA-256 and encodes the digest as lowercase hex.
type SHA256 struct{}

// ComputeHash returns the hex encoded SHA-256 digest of data.
func ComputeHash(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// Hash returns the digest of the file at path.
func (SHA256) Hash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	digest := ComputeHash(data)
	debug.V(2).Log("hashed %s: %s", path, digest)

	return digest, nil
}

// Verify reports whether the current content of path still hashes to expected.
// An empty expected digest never matches.
func (h SHA256) Verify(expected, path string) (bool, error) {
	if expected == "" {
		return false, nil
	}

	digest, err := h.Hash(path)
	if err != nil {
		return false, err
	}

	ok := subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(expected))) == 1
	if !ok {
		debug.Log("hash mismatch for %s: recorded %s, computed %s", path, expected, digest)
	}

	return ok, nil
}
