package transport

import (
	"context"
	"io"
)

// Runner executes a single remote (or local) process and returns its
// standard output. A non-zero exit or an unreachable host is an error;
// classification into switchctl error kinds happens in the callers.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Files is the file-transfer capability consumed by the config engine.
// Paths are remote paths for SSH sessions and plain OS paths for local
// sessions; the config engine treats them identically.
type Files interface {
	// Get copies the file at path into dst.
	Get(path string, dst io.Writer) error

	// Put writes src to the file at path, creating or truncating it.
	Put(src io.Reader, path string) error

	// Rename moves the file at oldPath to newPath.
	Rename(oldPath, newPath string) error

	// Open opens the file at path for reading.
	Open(path string) (io.ReadCloser, error)
}

// Session bundles the process-execution and file-transfer capabilities
// of one connection. A Session is singly-owned: one config manager per
// session, no internal locking.
type Session interface {
	Runner
	Files
	io.Closer
}
