// Package sshcfg points the wildcard Host block of an OpenSSH client config
// at a given identity file.
package sshcfg

import (
	"regexp"
	"strings"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/fsio"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/patch"
	"github.com/gopasspw/gopass/pkg/debug"
)

// DefaultPath is the per-user ssh client config.
const DefaultPath = "~/.ssh/config"

var (
	reHost         = regexp.MustCompile(`^\s*Host\s+`)
	reIdentityFile = regexp.MustCompile(`^\s*IdentityFile\s+`)
	reDrive        = regexp.MustCompile(`^([A-Za-z]):`)
)

// Editor rewrites the IdentityFile of the "Host *" block in the ssh config at Path.
type Editor struct {
	Path string
}

// New returns an Editor for path, falling back to DefaultPath when empty.
func New(path string) *Editor {
	if path == "" {
		path = DefaultPath
	}

	return &Editor{Path: fsio.ExpandHome(path)}
}

// SetIdentityFile makes keyPath the IdentityFile of every wildcard Host block.
// A missing config (or .ssh directory) is replaced by a default block.
func (e *Editor) SetIdentityFile(keyPath string) error {
	posixPath := ToPosixPath(keyPath)

	lines, found, err := fsio.ReadLines(e.Path)
	if err != nil {
		return err
	}

	content := DefaultConfig(posixPath)
	if found {
		content = Render(lines, posixPath)
	} else {
		debug.V(1).Log("%s not found, writing default config", e.Path)
	}

	return fsio.WriteFile(e.Path, content)
}

// DefaultConfig is the content written when there is no ssh config yet.
func DefaultConfig(posixPath string) string {
	return "Host *\n\tIdentityFile " + posixPath + "\n"
}

// Render installs posixPath as IdentityFile in lines. Unlike the git config
// editor a last line that is not blank gets a blank line appended, and a
// missing "Host *" block is appended as DefaultConfig. An empty file yields
// DefaultConfig alone.
func Render(lines []string, posixPath string) string {
	// the empty element after the final newline is not a blank line
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	out, found := patch.Splice(lines, patch.Rules{
		Section: func(line string) (bool, bool) {
			if !reHost.MatchString(line) {
				return false, false
			}

			return true, strings.Contains(line, "*")
		},
		Key:   reIdentityFile.MatchString,
		Lines: []string{"\tIdentityFile " + posixPath},
	})

	if n := len(out); n > 0 && out[n-1] != "" {
		out = append(out, "")
	}

	if !found {
		out = append(out, DefaultConfig(posixPath))
	}

	return strings.Join(out, "\n")
}

// ToPosixPath converts a native path into the quoted forward-slash form used
// in the ssh config: backslashes become slashes and a leading drive letter
// "C:" becomes "/C".
func ToPosixPath(path string) string {
	if path == "" {
		return `""`
	}

	path = strings.ReplaceAll(path, `\`, "/")
	path = reDrive.ReplaceAllString(path, "/$1")

	return `"` + path + `"`
}
