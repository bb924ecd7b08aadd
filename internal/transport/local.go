package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// LocalSession implements Session against the local machine: commands
// run through os/exec and file operations hit the OS filesystem. Used
// when switchctl manages a FreeSWITCH on the same box, and as the shape
// the test doubles imitate.
type LocalSession struct{}

// NewLocalSession returns a session bound to the local machine.
func NewLocalSession() *LocalSession {
	return &LocalSession{}
}

// Run executes a local command and returns its stdout.
func (s *LocalSession) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %s: %w", name, strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}

// Get copies the local file at path into dst.
func (s *LocalSession) Get(path string, dst io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(dst, f)
	return err
}

// Put writes src to the local file at path.
func (s *LocalSession) Put(src io.Reader, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rename moves the local file at oldPath to newPath.
func (s *LocalSession) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Open opens the local file at path for reading.
func (s *LocalSession) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Close is a no-op; there is no connection to tear down.
func (s *LocalSession) Close() error {
	return nil
}
