package fsconfig

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/beevik/etree"

	"github.com/signalbay/switchctl/internal/console"
	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/parse"
	"github.com/signalbay/switchctl/internal/transport"
)

// indentSpaces is the indent width used when serializing the document.
const indentSpaces = 2

// Manager owns the live configuration tree, its restorable file handle
// and the console client for one editing session. One manager per
// connection; no internal locking.
type Manager struct {
	doc      *etree.Document
	root     *etree.Element
	file     *RestorableFile
	files    transport.Files
	cli      *console.Client
	log      *slog.Logger
	sections map[string]Section
}

// NewManager binds a parsed document, its file handle and a console
// client together and constructs the declared schema sections.
func NewManager(doc *etree.Document, file *RestorableFile, files transport.Files, cli *console.Client, log *slog.Logger, specs ...SectionSpec) (*Manager, error) {
	m := &Manager{
		doc:      doc,
		root:     doc.Root(),
		file:     file,
		files:    files,
		cli:      cli,
		log:      log,
		sections: make(map[string]Section),
	}
	if err := m.bindSections(specs); err != nil {
		return nil, err
	}
	return m, nil
}

// Root returns the document's root element for direct tree edits.
func (m *Manager) Root() *etree.Element {
	return m.root
}

// Document returns the live document tree.
func (m *Manager) Document() *etree.Document {
	return m.doc
}

// Console returns the console client for ad-hoc commands.
func (m *Manager) Console() *console.Client {
	return m.cli
}

// File returns the restorable file handle for the managed config.
func (m *Manager) File() *RestorableFile {
	return m.file
}

// Revert restores the managed file to its snapshot bytes. The in-memory
// tree is not re-parsed: file and memory disagree until the caller opens
// a fresh manager.
func (m *Manager) Revert() error {
	m.log.Debug("restoring config", "path", m.file.Path())
	return m.file.Restore()
}

// Serialize renders the current tree in its canonical pretty-printed
// form. The live tree is left untouched; indentation happens on a copy.
func (m *Manager) Serialize() ([]byte, error) {
	doc := m.doc.Copy()
	doc.Indent(indentSpaces)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.IOError("serialize", m.file.Path(), err)
	}
	return data, nil
}

// Commit uploads the serialized tree to the managed path and asks the
// server to reload it. Returns the elapsed time on success. An IOError
// means the upload failed and the remote file is unchanged; a command or
// connection error means the file is committed but the server has not
// reloaded it, and the caller must retry the reload or revert.
func (m *Manager) Commit(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	m.log.Info("saving config", "path", m.file.Path())

	data, err := m.Serialize()
	if err != nil {
		return 0, err
	}
	if err := m.files.Put(bytes.NewReader(data), m.file.Path()); err != nil {
		return 0, errors.IOError("write", m.file.Path(), err)
	}

	if _, err := m.cli.API(ctx, "reloadxml"); err != nil {
		return 0, err
	}

	elapsed := time.Since(start)
	m.log.Debug("config commit finished", "path", m.file.Path(), "elapsed", elapsed)
	return elapsed, nil
}

// SofiaStatus queries `sofia status` and returns the parsed tables.
func (m *Manager) SofiaStatus(ctx context.Context) (*parse.Status, error) {
	out, err := m.cli.API(ctx, "sofia", "status")
	if err != nil {
		return nil, err
	}
	return parse.SofiaStatus(out)
}

// Users queries `list_users` with the given filters and returns users
// grouped by domain. Filter keys outside {domain, group, user, context}
// fail before any command is executed.
func (m *Manager) Users(ctx context.Context, filters map[string]string) (*parse.Directory, error) {
	if err := parse.ValidateFilters(filters); err != nil {
		return nil, err
	}

	tokens := append([]string{"list_users"}, parse.FilterTokens(filters)...)
	out, err := m.cli.Run(ctx, tokens...)
	if err != nil {
		return nil, err
	}
	return parse.UserList(out)
}
