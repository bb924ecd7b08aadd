package fsconfig

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/signalbay/switchctl/internal/console"
	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/testutil"
)

func newTestManager(t *testing.T, sess *testutil.FakeSession, specs ...SectionSpec) *Manager {
	t.Helper()
	if _, ok := sess.FS[confPath]; !ok {
		sess.FS[confPath] = []byte(testutil.SingleFileConfig)
	}
	cli := console.New(sess, nil, nil)
	mng, err := Open(context.Background(), "/etc/freeswitch", sess, cli, testLogger(), specs...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return mng
}

func TestManager_Commit(t *testing.T) {
	sess := testutil.NewFakeSession()
	sess.Respond("api reloadxml", "+OK [Success]")
	mng := newTestManager(t, sess)

	// Edit the tree: add a gateway under the sofia profile.
	profile := mng.Root().FindElement("./section/configuration/profiles/profile")
	if profile == nil {
		t.Fatal("profile element missing")
	}
	gw := profile.CreateElement("gateway")
	gw.CreateAttr("name", "carrier-a")

	elapsed, err := mng.Commit(context.Background())
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if elapsed < 0 {
		t.Errorf("elapsed = %v, want non-negative", elapsed)
	}

	want, err := mng.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if string(sess.FS[confPath]) != string(want) {
		t.Error("remote file must equal the pretty-printed serialization at commit time")
	}
	if !strings.Contains(string(sess.FS[confPath]), `<gateway name="carrier-a"/>`) {
		t.Errorf("committed file should carry the edit, got:\n%s", sess.FS[confPath])
	}

	cmds := sess.Commands()
	if len(cmds) == 0 || cmds[len(cmds)-1] != "api reloadxml" {
		t.Errorf("commands = %v, want reloadxml after upload", cmds)
	}
}

func TestManager_Commit_UploadFailure(t *testing.T) {
	sess := testutil.NewFakeSession()
	mng := newTestManager(t, sess)

	before := string(sess.FS[confPath])
	sess.PutErr = fmt.Errorf("sftp: disk full")

	_, err := mng.Commit(context.Background())
	if err == nil {
		t.Fatal("Commit() should fail when the upload fails")
	}
	if !errors.IsIOError(err) {
		t.Errorf("upload failures must classify as IO errors, got %v", err)
	}
	if string(sess.FS[confPath]) != before {
		t.Error("remote file must be unchanged after a failed upload")
	}
	// No reload attempted.
	for _, cmd := range sess.Commands() {
		if cmd == "api reloadxml" {
			t.Error("reload must not run after a failed upload")
		}
	}
}

func TestManager_Commit_ReloadFailure(t *testing.T) {
	sess := testutil.NewFakeSession()
	sess.Respond("api reloadxml", "-ERR [PARSE_ERROR]")
	mng := newTestManager(t, sess)

	_, err := mng.Commit(context.Background())
	if err == nil {
		t.Fatal("Commit() should fail when the reload fails")
	}
	if !errors.IsCommandError(err) {
		t.Errorf("reload failures must classify as command errors, got %v", err)
	}

	// File committed but server not reloaded: distinguishable by kind.
	want, _ := mng.Serialize()
	if string(sess.FS[confPath]) != string(want) {
		t.Error("file must stay committed when only the reload fails")
	}
}

func TestManager_Revert_LeavesTreeStale(t *testing.T) {
	sess := testutil.NewFakeSession()
	mng := newTestManager(t, sess)

	snapshot := string(mng.File().Snapshot())

	domain := mng.Root().FindElement("./section[@name='directory']/domain")
	if domain == nil {
		t.Fatal("domain element missing")
	}
	domain.CreateAttr("alias", "voice.example.com")
	sess.FS[confPath] = []byte("something committed meanwhile")

	if err := mng.Revert(); err != nil {
		t.Fatalf("Revert() error = %v", err)
	}

	if string(sess.FS[confPath]) != snapshot {
		t.Error("revert must restore the snapshot bytes")
	}
	// The in-memory tree keeps the edit until a manager is reopened.
	if mng.Root().FindElement("./section[@name='directory']/domain").SelectAttrValue("alias", "") != "voice.example.com" {
		t.Error("revert must not re-parse the in-memory tree")
	}
}

func TestManager_SofiaStatus(t *testing.T) {
	sess := testutil.NewFakeSession()
	sess.Respond("api sofia status", testutil.SofiaStatusOutput)
	mng := newTestManager(t, sess)

	status, err := mng.SofiaStatus(context.Background())
	if err != nil {
		t.Fatalf("SofiaStatus() error = %v", err)
	}
	if len(status.Profiles) != 2 {
		t.Errorf("len(Profiles) = %d, want 2", len(status.Profiles))
	}
	if status.Gateways["example.com"]["profile"] != "external" {
		t.Errorf("gateway profile = %q, want external", status.Gateways["example.com"]["profile"])
	}
}

func TestManager_Users(t *testing.T) {
	sess := testutil.NewFakeSession()
	sess.Respond("list_users domain pbx.example.com", testutil.ListUsersOutput)
	mng := newTestManager(t, sess)

	dir, err := mng.Users(context.Background(), map[string]string{"domain": "pbx.example.com"})
	if err != nil {
		t.Fatalf("Users() error = %v", err)
	}
	if len(dir.Users["pbx.example.com"]) != 2 {
		t.Errorf("pbx users = %d, want 2", len(dir.Users["pbx.example.com"]))
	}
}

func TestManager_Users_InvalidFilter(t *testing.T) {
	sess := testutil.NewFakeSession()
	mng := newTestManager(t, sess)
	callsBefore := len(sess.Calls)

	_, err := mng.Users(context.Background(), map[string]string{"tenant": "x"})
	if err == nil {
		t.Fatal("Users() should reject unknown filter keys")
	}
	if !errors.IsArgumentError(err) {
		t.Errorf("unknown filters must classify as argument errors, got %v", err)
	}
	if len(sess.Calls) != callsBefore {
		t.Error("no command may run when filter validation fails")
	}
}

type fakeSection struct {
	name string
	root *etree.Element
}

func (s *fakeSection) Name() string { return s.name }

func TestManager_SectionBinding(t *testing.T) {
	sess := testutil.NewFakeSession()

	spec := SectionSpec{
		Name:   "sofia",
		Schema: map[string]string{"section": "configuration"},
		Build: func(spec SectionSpec, root *etree.Element, log *slog.Logger, mng *Manager) (Section, error) {
			return &fakeSection{name: spec.Name, root: root}, nil
		},
	}

	mng := newTestManager(t, sess, spec)

	s, ok := mng.Section("sofia")
	if !ok {
		t.Fatal("section 'sofia' not bound")
	}
	if fs, ok := s.(*fakeSection); !ok || fs.root != mng.Root() {
		t.Error("section must be built against the manager's tree root")
	}
	if names := mng.Sections(); len(names) != 1 || names[0] != "sofia" {
		t.Errorf("Sections() = %v, want [sofia]", names)
	}
}

func TestManager_SectionBinding_BuildError(t *testing.T) {
	sess := testutil.NewFakeSession()
	sess.FS[confPath] = []byte(testutil.SingleFileConfig)
	cli := console.New(sess, nil, nil)

	spec := SectionSpec{
		Name: "broken",
		Build: func(spec SectionSpec, root *etree.Element, log *slog.Logger, mng *Manager) (Section, error) {
			return nil, fmt.Errorf("bad schema")
		},
	}

	_, err := Open(context.Background(), "/etc/freeswitch", sess, cli, testLogger(), spec)
	if err == nil {
		t.Fatal("Open() should surface section build failures")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the failing section, got %v", err)
	}
}
