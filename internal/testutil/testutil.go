// Package testutil provides test doubles for the transport layer.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// RunCall records one command execution against a FakeSession.
type RunCall struct {
	Name string
	Args []string
}

// FakeSession implements transport.Session with scripted command output
// and an in-memory filesystem. Zero value is usable; set RunFunc or
// Respond entries before use.
type FakeSession struct {
	mu sync.Mutex

	// RunFunc, when set, handles every Run call. Otherwise responses
	// registered with Respond are matched by the final -x payload.
	RunFunc func(name string, args []string) (string, error)

	responses map[string]string
	Calls     []RunCall

	FS map[string][]byte

	// Error injection for the file capabilities.
	GetErr    error
	PutErr    error
	RenameErr error
	OpenErr   error

	Closed bool
}

// NewFakeSession returns a FakeSession with an empty in-memory filesystem.
func NewFakeSession() *FakeSession {
	return &FakeSession{
		responses: make(map[string]string),
		FS:        make(map[string][]byte),
	}
}

// Respond registers canned output for an fs_cli command payload, e.g.
// Respond("api sofia status", fixture).
func (f *FakeSession) Respond(command, output string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[command] = output
}

// Run records the call and replies from RunFunc or the canned responses.
func (f *FakeSession) Run(_ context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, RunCall{Name: name, Args: args})
	f.mu.Unlock()

	if f.RunFunc != nil {
		return f.RunFunc(name, args)
	}

	if len(args) > 0 {
		if out, ok := f.responses[args[len(args)-1]]; ok {
			return out, nil
		}
	}
	return "", fmt.Errorf("no scripted response for %s %s", name, strings.Join(args, " "))
}

// Commands returns the -x payloads of all fs_cli invocations so far.
func (f *FakeSession) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cmds []string
	for _, call := range f.Calls {
		if len(call.Args) > 0 {
			cmds = append(cmds, call.Args[len(call.Args)-1])
		}
	}
	return cmds
}

// Get copies the in-memory file at path into dst.
func (f *FakeSession) Get(path string, dst io.Writer) error {
	if f.GetErr != nil {
		return f.GetErr
	}
	f.mu.Lock()
	data, ok := f.FS[path]
	f.mu.Unlock()
	if !ok {
		return fmt.Errorf("no such file: %s", path)
	}
	_, err := dst.Write(data)
	return err
}

// Put stores src as the in-memory file at path.
func (f *FakeSession) Put(src io.Reader, path string) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.FS[path] = data
	f.mu.Unlock()
	return nil
}

// Rename moves the in-memory file at oldPath to newPath.
func (f *FakeSession) Rename(oldPath, newPath string) error {
	if f.RenameErr != nil {
		return f.RenameErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.FS[oldPath]
	if !ok {
		return fmt.Errorf("no such file: %s", oldPath)
	}
	f.FS[newPath] = data
	delete(f.FS, oldPath)
	return nil
}

// Open opens the in-memory file at path for reading.
func (f *FakeSession) Open(path string) (io.ReadCloser, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	f.mu.Lock()
	data, ok := f.FS[path]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Close marks the session closed.
func (f *FakeSession) Close() error {
	f.Closed = true
	return nil
}
