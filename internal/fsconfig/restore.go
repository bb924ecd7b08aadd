package fsconfig

import (
	"bytes"

	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/transport"
)

// RestorableFile pairs a remote path with a byte snapshot captured at
// construction, so the file can be rolled back to that exact content
// regardless of commits made in between.
//
// No locking is performed: a concurrent external writer between snapshot
// and restore gives last-write-wins results.
type RestorableFile struct {
	path     string
	files    transport.Files
	snapshot []byte
}

// NewRestorableFile snapshots the file at path through the given file
// capability. The snapshot is taken eagerly, before any edit can land.
func NewRestorableFile(path string, files transport.Files) (*RestorableFile, error) {
	var buf bytes.Buffer
	if err := files.Get(path, &buf); err != nil {
		return nil, errors.IOError("snapshot", path, err)
	}
	return &RestorableFile{
		path:     path,
		files:    files,
		snapshot: buf.Bytes(),
	}, nil
}

// Path returns the managed path.
func (f *RestorableFile) Path() string {
	return f.path
}

// Snapshot returns a copy of the captured bytes.
func (f *RestorableFile) Snapshot() []byte {
	return append([]byte(nil), f.snapshot...)
}

// Restore overwrites the file at the path with the snapshot bytes.
func (f *RestorableFile) Restore() error {
	if err := f.files.Put(bytes.NewReader(f.snapshot), f.path); err != nil {
		return errors.IOError("restore", f.path, err)
	}
	return nil
}
