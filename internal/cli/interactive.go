package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/output"
	"golang.org/x/term"
)

// PromptConfirm asks the user for a y/n confirmation.
// Returns true if confirmed, false if declined, or an error on cancellation.
// Opens /dev/tty directly to work even when stdin is piped.
func PromptConfirm(prompt string, stderr io.Writer) (bool, *output.Error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false, output.Errorf(output.CodeUsageError, "no terminal available for confirmation; use --yes")
	}
	defer func() { _ = tty.Close() }()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return false, output.Errorf(output.CodeUsageError, "no terminal available for confirmation; use --yes")
	}

	_, _ = fmt.Fprintf(stderr, "%s [y/N]: ", prompt)

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return false, output.Errorf(output.CodeGeneralError, "failed to set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	buf := make([]byte, 1)
	for {
		_, err := tty.Read(buf)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "\r\n")
			return false, output.Errorf(output.CodeGeneralError, "failed to read input: %w", err)
		}

		switch buf[0] {
		case 'y', 'Y':
			_, _ = fmt.Fprintf(stderr, "y\r\n")
			return true, nil
		case 'n', 'N', '\r', '\n':
			_, _ = fmt.Fprintf(stderr, "n\r\n")
			return false, nil
		case 3, 27: // Ctrl-C or Escape
			_, _ = fmt.Fprintf(stderr, "\r\nCancelled.\r\n")
			return false, output.Errorf(output.CodeCancelled, "")
		}
	}
}
