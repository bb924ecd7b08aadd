package fsconfig

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/signalbay/switchctl/internal/console"
	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/transport"
)

const (
	// ConfigFileName is the canonical root config file under the
	// FreeSWITCH configuration directory.
	ConfigFileName = "freeswitch.xml"

	// backupTimeFormat stamps backup file names.
	backupTimeFormat = "2006-01-02-15-04-05"

	// sofiaSectionPath probes for an inline sofia configuration section.
	// Its presence means the config is already a single aggregate
	// document rather than assembled from includes at reload time.
	sofiaSectionPath = "./section/configuration[@name='sofia.conf']"
)

// Open discovers the configuration at rootPath on the session's host and
// returns a manager over one canonical document.
//
// If the root freeswitch.xml already contains the sofia section inline it
// is used as-is. Otherwise the server's live merged view is fetched with
// `xml_locate root`, normalized, and written back as the new canonical
// file after renaming the original to a timestamped backup. The rename
// and write are not atomic: a crash between them leaves no file at the
// canonical path, recoverable only from the backup.
func Open(ctx context.Context, rootPath string, sess transport.Session, cli *console.Client, log *slog.Logger, specs ...SectionSpec) (*Manager, error) {
	confPath := path.Join(rootPath, ConfigFileName)

	doc, err := fetchAndParse(confPath, sess, log)
	if err != nil {
		return nil, err
	}

	if doc.Root() == nil || doc.Root().FindElement(sofiaSectionPath) == nil {
		doc, err = aggregate(ctx, confPath, sess, cli, log)
		if err != nil {
			return nil, err
		}
	}

	rfile, err := NewRestorableFile(confPath, sess)
	if err != nil {
		return nil, err
	}

	return NewManager(doc, rfile, sess, cli, log, specs...)
}

// fetchAndParse copies the remote config to a local staging file and
// parses it, dropping whitespace-only text nodes.
func fetchAndParse(confPath string, sess transport.Session, log *slog.Logger) (*etree.Document, error) {
	start := time.Now()

	staging, err := os.CreateTemp("", "switchctl-config-*.xml")
	if err != nil {
		return nil, errors.IOError("create staging file for", confPath, err)
	}
	defer os.Remove(staging.Name())

	if err := sess.Get(confPath, staging); err != nil {
		staging.Close()
		return nil, errors.IOError("fetch", confPath, err)
	}
	if _, err := staging.Seek(0, 0); err != nil {
		staging.Close()
		return nil, errors.IOError("rewind staging file for", confPath, err)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(staging); err != nil {
		staging.Close()
		return nil, errors.IOError("parse", confPath, err)
	}
	staging.Close()

	stripBlankText(doc.Root())
	log.Info("parsed config", "path", confPath, "elapsed", time.Since(start))
	return doc, nil
}

// aggregate asks the live server for its fully merged configuration,
// normalizes it, backs up the existing root file and writes the merged
// document in its place.
func aggregate(ctx context.Context, confPath string, sess transport.Session, cli *console.Client, log *slog.Logger) (*etree.Document, error) {
	log.Info("dumping aggregate config from the running server")

	notEmpty := console.ErrorOn("empty xml_locate output", func(out string) bool {
		return out == ""
	})
	out, err := cli.RunWith(ctx, []console.Condition{notEmpty}, "api", "xml_locate", "root")
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		return nil, errors.IOError("parse merged view of", confPath, err)
	}
	normalize(doc.Root())

	backup := confPath + "_backup_" + time.Now().Format(backupTimeFormat)
	log.Info("backing up original config", "path", confPath, "backup", backup)
	if err := sess.Rename(confPath, backup); err != nil {
		return nil, errors.IOError("back up", confPath, err)
	}

	pretty := doc.Copy()
	pretty.Indent(indentSpaces)
	data, err := pretty.WriteToBytes()
	if err != nil {
		return nil, errors.IOError("serialize merged view of", confPath, err)
	}
	if err := sess.Put(bytes.NewReader(data), confPath); err != nil {
		return nil, errors.IOError("write", confPath, err)
	}

	return doc, nil
}

// stripBlankText removes whitespace-only text nodes so indentation from
// the on-disk file doesn't pollute the tree.
func stripBlankText(el *etree.Element) {
	if el == nil {
		return
	}
	var drop []etree.Token
	for _, child := range el.Child {
		if cd, ok := child.(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			drop = append(drop, child)
		}
	}
	for _, tok := range drop {
		el.RemoveChild(tok)
	}
	for _, child := range el.ChildElements() {
		stripBlankText(child)
	}
}

// normalize cleans the server's merged dump: whitespace-only text is
// dropped and remaining text collapses to its non-blank lines. The
// server never relies on element text for structure, so this is safe.
func normalize(el *etree.Element) {
	if el == nil {
		return
	}
	var drop []etree.Token
	for _, child := range el.Child {
		cd, ok := child.(*etree.CharData)
		if !ok {
			continue
		}
		if strings.TrimSpace(cd.Data) == "" {
			drop = append(drop, child)
			continue
		}
		var kept []string
		for _, line := range strings.Split(cd.Data, "\n") {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		cd.Data = strings.Join(kept, "\n")
	}
	for _, tok := range drop {
		el.RemoveChild(tok)
	}
	for _, child := range el.ChildElements() {
		normalize(child)
	}
}
