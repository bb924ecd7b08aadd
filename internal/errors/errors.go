package errors

import (
	"errors"
	"fmt"
)

// Exit codes for switchctl
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConnection   = 2
	ExitCommand      = 3
	ExitArgument     = 4
	ExitIO           = 5
	ExitConfigError  = 6
	ExitHostNotFound = 7
)

// SwitchError is the base error type for switchctl
type SwitchError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SwitchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SwitchError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SwitchError) ExitCode() int {
	return e.Code
}

// New creates a new SwitchError
func New(code int, message string) *SwitchError {
	return &SwitchError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SwitchError
func Wrap(code int, message string, cause error) *SwitchError {
	return &SwitchError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConnectionError returns an error for a transport or process failure:
// the remote console could not be reached or executed at all.
func ConnectionError(message string, cause error) *SwitchError {
	return Wrap(ExitConnection, message, cause)
}

// CommandError returns an error for a command that ran but reported an
// application-level failure. The raw console output is kept as the message
// so callers can inspect the server's -ERR line.
func CommandError(output string) *SwitchError {
	return New(ExitCommand, output)
}

// ArgumentError returns an error for a caller-supplied argument outside
// the declared allow-list. Raised before any remote call is made.
func ArgumentError(message string) *SwitchError {
	return New(ExitArgument, message)
}

// IOError returns an error for a local or remote file read/write failure.
func IOError(op, path string, cause error) *SwitchError {
	return Wrap(ExitIO, fmt.Sprintf("%s %s failed", op, path), cause)
}

// ConfigError returns an error for client configuration issues
func ConfigError(message string, cause error) *SwitchError {
	return Wrap(ExitConfigError, message, cause)
}

// HostNotFound returns an error for a host missing from the client config
func HostNotFound(name string) *SwitchError {
	return New(ExitHostNotFound, fmt.Sprintf("host not found in config: %s", name))
}

// Error kind predicates. These walk the chain with errors.As so wrapped
// errors classify the same as bare ones.

func hasCode(err error, code int) bool {
	var serr *SwitchError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// IsConnectionError reports whether err is a transport/process failure.
func IsConnectionError(err error) bool { return hasCode(err, ExitConnection) }

// IsCommandError reports whether err is a remote command failure.
func IsCommandError(err error) bool { return hasCode(err, ExitCommand) }

// IsArgumentError reports whether err is an argument validation failure.
func IsArgumentError(err error) bool { return hasCode(err, ExitArgument) }

// IsIOError reports whether err is a file read/write failure.
func IsIOError(err error) bool { return hasCode(err, ExitIO) }

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var serr *SwitchError
	if errors.As(err, &serr) {
		return serr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
