// Package errors provides typed errors with exit codes for switchctl.
//
// # Error Types
//
// SwitchError is the base error type that wraps an error with an exit code:
//
//	type SwitchError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitConnection   = 2  // Transport/console unreachable
//	ExitCommand      = 3  // Remote command reported failure
//	ExitArgument     = 4  // Invalid caller argument
//	ExitIO           = 5  // File read/write failure
//	ExitConfigError  = 6  // Client configuration error
//	ExitHostNotFound = 7  // Host missing from config
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ConnectionError("fs_cli unreachable", err)
//	errors.CommandError(output)
//	errors.ArgumentError("bogus is not a valid list_users filter")
//	errors.IOError("write", "/etc/freeswitch/freeswitch.xml", err)
//
// # Classifying Errors
//
// The Is* predicates classify an error chain by kind; a failed commit is
// distinguishable from a failed reload through them:
//
//	if errors.IsIOError(err) { ... upload failed, file unchanged ... }
//	if errors.IsCommandError(err) { ... file committed, reload failed ... }
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
