package identity

import "errors"

var (
	// ErrMissingUsername is returned for an empty or blank username.
	ErrMissingUsername = errors.New("missing username")
	// ErrMissingEmail is returned for an empty or blank email.
	ErrMissingEmail = errors.New("missing email")
	// ErrMissingKeyPath is returned when no ssh key path is set.
	ErrMissingKeyPath = errors.New("missing ssh key path")
	// ErrMultiline is returned when a value would span several config lines.
	ErrMultiline = errors.New("value must be a single line")
)
