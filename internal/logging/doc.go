// Package logging provides logging utilities for switchctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("committing config", "path", path, "bytes", n)
//	logging.Warn("unknown sofia status row type", "type", tp, "name", name)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Aggregating %s...", confPath)
//	logging.UserSuccess("Committed %s", confPath)
//	logging.UserWarning("Reload failed, file left committed")
//	logging.UserError("Failed to connect to %s: %v", host, err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// Structured logs always go to stderr so command output on stdout stays
// machine-consumable.
package logging
