// Package patch installs a block of key lines into a named section of a
// line-oriented config file while keeping every unrelated line as it was.
//
// Every line is copied to the output. The key lines are spliced in right after
// each header of the target section, and stale key lines inside that section
// are dropped. A target section header
// that occurs more than once gets the key lines after every occurrence.
package patch

import (
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// SectionFunc classifies a line. isHeader reports whether the line starts a
// section at all, isTarget whether it starts the section we are patching.
type SectionFunc func(line string) (isHeader, isTarget bool)

// KeyFunc reports whether a line inside the target section is one of the keys
// being replaced.
type KeyFunc func(line string) bool

// Rules describe one patching operation.
type Rules struct {
	Section SectionFunc
	Key     KeyFunc
	// Lines are inserted after the target section header.
	Lines []string
}

// Splice copies lines, dropping key lines inside the target section and
// inserting rules.Lines after each target section header. found reports
// whether a target header was seen.
func Splice(lines []string, rules Rules) (out []string, found bool) { //nolint:nonamedreturns
	out = make([]string, 0, len(lines)+len(rules.Lines)+4)

	var inTarget bool
	for _, line := range lines {
		if isHeader, isTarget := rules.Section(line); isHeader {
			inTarget = isTarget
			out = append(out, line)

			if isTarget {
				if found {
					debug.V(1).Log("target section repeated, inserting keys again after %q", line)
				}
				found = true
				out = append(out, rules.Lines...)
			}

			continue
		}

		if inTarget && rules.Key(line) {
			debug.V(3).Log("dropping %q", line)

			continue
		}

		out = append(out, line)
	}

	return out, found
}

// Patch applies rules to lines and returns the new file content.
//
// If the target section does not exist a new block (header, key lines and a
// final newline) is appended, after removing the input's final newline and at
// most one blank line before it. A nil or empty input results in the block
// alone.
func Patch(lines []string, header string, rules Rules) string {
	out, found := Splice(lines, rules)
	if !found {
		// the element after the final newline
		if n := len(out); n > 0 && out[n-1] == "" {
			out = out[:n-1]
		}
		// one real blank line
		if n := len(out); n > 0 && out[n-1] == "" {
			out = out[:n-1]
		}
		out = append(out, header)
		out = append(out, rules.Lines...)
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}
