// Package fsio reads and writes the line-oriented config files edited by gitswitch.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// ReadLines returns the content of path split on newlines.
//
// A file ending in a newline yields a trailing empty element, so joining the
// result with "\n" reproduces the file. A trailing carriage return is stripped
// from every line.
//
// found is false (and err nil) when the file or one of its parent directories
// does not exist.
func ReadLines(path string) (lines []string, found bool, err error) { //nolint:nonamedreturns
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			debug.V(2).Log("%s does not exist", path)

			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines = strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	debug.V(3).Log("read %d lines from %s", len(lines), path)

	return lines, true, nil
}

// WriteFile overwrites path with content, creating parent directories as needed.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q for %q: %w", dir, path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	debug.V(1).Log("wrote %s", path)

	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		debug.Log("cannot resolve home directory, leaving %q unexpanded: %s", path, err)

		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
