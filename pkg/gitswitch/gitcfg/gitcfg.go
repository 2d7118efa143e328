// Package gitcfg sets the user name and email in a git config file.
package gitcfg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/fsio"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/patch"
	"github.com/gopasspw/gopass/pkg/debug"
)

// DefaultPath is the per-user git config file.
const DefaultPath = "~/.gitconfig"

const userHeader = "[user]"

var (
	reSection = regexp.MustCompile(`^\s*\[`)
	reUser    = regexp.MustCompile(`^\s*\[user\]\s*$`)
	reUserKey = regexp.MustCompile(`^\s*(name|email)\s*=`)
)

// Editor rewrites the [user] section of the git config file at Path.
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

// SetUser installs name and email in the [user] section, creating the file
// or the section if necessary.
func (e *Editor) SetUser(username, email string) error {
	lines, found, err := fsio.ReadLines(e.Path)
	if err != nil {
		return err
	}

	var content string
	if found {
		content = Render(lines, username, email)
	} else {
		debug.V(1).Log("%s not found, writing a new one", e.Path)
		content = fmt.Sprintf("[user]\n\tname = %s\n\temail = %s\n", username, email)
	}

	debug.V(3).Log("output: \n--------------\n%s\n--------------\n", strings.Join(strings.Split("+ "+content, "\n"), "\n+ "))

	return fsio.WriteFile(e.Path, content)
}

// Render returns lines with name and email installed in the [user] section.
func Render(lines []string, username, email string) string {
	return patch.Patch(lines, userHeader, rules(username, email))
}

func rules(username, email string) patch.Rules {
	return patch.Rules{
		Section: func(line string) (bool, bool) {
			if !reSection.MatchString(line) {
				return false, false
			}

			return true, reUser.MatchString(line)
		},
		Key: reUserKey.MatchString,
		Lines: []string{
			"\tname = " + username,
			"\temail = " + email,
		},
	}
}
