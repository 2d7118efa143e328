// Package output prints command results as text or as a JSON document and
// maps failures to exit statuses.
package output

// Code identifies a failure or warning in JSON output. The values are
// stable across releases.
type Code string

const (
	// exit status 1
	CodeGeneralError Code = "GENERAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeUsageError   Code = "USAGE_ERROR"
	CodeCancelled    Code = "CANCELLED"

	// exit status 2
	CodeConfigInvalid   Code = "CONFIG_INVALID"
	CodeConfigSaveError Code = "CONFIG_SAVE_ERROR"
	CodeConfigExists    Code = "CONFIG_EXISTS"

	// exit status 3
	CodeStoreLoadError   Code = "STORE_LOAD_ERROR"
	CodeStoreSaveError   Code = "STORE_SAVE_ERROR"
	CodeIdentityNotFound Code = "IDENTITY_NOT_FOUND"
	CodeNoCurrent        Code = "NO_CURRENT_IDENTITY"

	// exit status 4
	CodeGitConfigError Code = "GIT_CONFIG_ERROR"
	CodeSSHConfigError Code = "SSH_CONFIG_ERROR"

	// exit status 5
	CodeSSHKeyMismatch   Code = "SSH_KEY_MISMATCH"
	CodeSSHKeyUnreadable Code = "SSH_KEY_UNREADABLE"
)

// warnings never change the exit status
const (
	CodeWarnIgnoringEnv    Code = "WARN_IGNORING_ENV"
	CodeWarnKeyUnreadable  Code = "WARN_KEY_UNREADABLE"
	CodeWarnNotCurrent     Code = "WARN_NOT_CURRENT"
	CodeWarnGitConfigDrift Code = "WARN_GIT_CONFIG_DRIFT"
)

// ExitCode is the numeric process exit status.
type ExitCode int

const (
	ExitSuccess      ExitCode = 0
	ExitGeneralError ExitCode = 1
	ExitConfigError  ExitCode = 2
	ExitStoreError   ExitCode = 3
	ExitEditError    ExitCode = 4
	ExitKeyError     ExitCode = 5
)

var codeToExitCode = map[Code]ExitCode{
	CodeGeneralError: ExitGeneralError,
	CodeInvalidInput: ExitGeneralError,
	CodeUsageError:   ExitGeneralError,
	CodeCancelled:    ExitGeneralError,

	CodeConfigInvalid:   ExitConfigError,
	CodeConfigSaveError: ExitConfigError,
	CodeConfigExists:    ExitConfigError,

	CodeStoreLoadError:   ExitStoreError,
	CodeStoreSaveError:   ExitStoreError,
	CodeIdentityNotFound: ExitStoreError,
	CodeNoCurrent:        ExitStoreError,

	CodeGitConfigError: ExitEditError,
	CodeSSHConfigError: ExitEditError,

	CodeSSHKeyMismatch:   ExitKeyError,
	CodeSSHKeyUnreadable: ExitKeyError,
}

// ExitCode returns the process exit status for failures with code c.
func (c Code) ExitCode() ExitCode {
	if exit, ok := codeToExitCode[c]; ok {
		return exit
	}
	return ExitGeneralError
}

// Int converts e for os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}
