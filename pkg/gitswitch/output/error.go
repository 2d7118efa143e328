package output

import (
	"errors"
	"fmt"
	"io"
)

// Error is a failed command. Code selects the exit status; Username and
// KeyPath name the identity the failure is about, if there is one.
type Error struct {
	Code     Code   `json:"code"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	KeyPath  string `json:"key_path,omitempty"`

	cause error
}

// Errorf builds the message like fmt.Errorf. An error wrapped with %w stays
// reachable through errors.Is and errors.As.
func Errorf(code Code, format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Code: code, Message: err.Error(), cause: errors.Unwrap(err)}
}

// ForIdentity attaches the username and key path of the identity involved.
func (e *Error) ForIdentity(username, keyPath string) *Error {
	e.Username = username
	e.KeyPath = keyPath
	return e
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ExitCode is the process exit status for e.
func (e *Error) ExitCode() ExitCode {
	return e.Code.ExitCode()
}

// PrintError writes the message of err to w and returns the exit status to
// use. Anything that is not an *Error exits with ExitGeneralError.
func PrintError(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		_, _ = fmt.Fprintln(w, err)
		return ExitGeneralError
	}

	// cancelled prompts have already said so
	if cmdErr.Message != "" {
		_, _ = fmt.Fprintln(w, cmdErr.Message)
	}
	return cmdErr.ExitCode()
}
