package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Default SSH configuration values.
const (
	DefaultPort           = 22
	DefaultUser           = "root"
	DefaultConnectTimeout = 10 * time.Second
)

// Options configures an SSH session.
type Options struct {
	Host               string
	Port               int
	User               string
	IdentityFile       string
	Password           string
	KnownHostsFile     string
	StrictHostKeyCheck bool
	ConnectTimeout     time.Duration

	// PasswordPrompt is called to obtain a password interactively when
	// no identity file or password is configured. Nil disables prompting.
	PasswordPrompt func() (string, error)
}

// DefaultOptions returns Options with sensible defaults for a host.
func DefaultOptions(host string) Options {
	return Options{
		Host:           host,
		Port:           DefaultPort,
		User:           DefaultUser,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

// WithUser returns a copy with the user set.
func (o Options) WithUser(user string) Options {
	o.User = user
	return o
}

// WithIdentity returns a copy with the identity file set.
func (o Options) WithIdentity(path string) Options {
	o.IdentityFile = path
	return o
}

func (o Options) authMethods() ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if o.IdentityFile != "" {
		key, err := os.ReadFile(o.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("reading identity file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("parsing identity file %s: %w", o.IdentityFile, err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	if o.Password != "" {
		methods = append(methods, ssh.Password(o.Password))
	} else if o.PasswordPrompt != nil {
		prompt := o.PasswordPrompt
		methods = append(methods, ssh.PasswordCallback(func() (string, error) {
			return prompt()
		}))
	}

	if len(methods) == 0 {
		return nil, fmt.Errorf("no auth method configured for %s@%s", o.User, o.Host)
	}
	return methods, nil
}

func (o Options) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if !o.StrictHostKeyCheck {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	path := o.KnownHostsFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = home + "/.ssh/known_hosts"
	}
	return knownhosts.New(path)
}

// SSHSession implements Session over golang.org/x/crypto/ssh with SFTP
// for file transfer. Each Run opens a fresh exec session on the shared
// connection; the SFTP subsystem is opened once at dial time.
type SSHSession struct {
	client *ssh.Client
	sftp   *sftp.Client
	addr   string
}

// Dial connects to the host described by opts and opens the SFTP
// subsystem. The caller owns the returned session and must Close it.
func Dial(opts Options) (*SSHSession, error) {
	methods, err := opts.authMethods()
	if err != nil {
		return nil, err
	}
	hostKey, err := opts.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}
	user := opts.User
	if user == "" {
		user = DefaultUser
	}
	timeout := opts.ConnectTimeout
	if timeout == 0 {
		timeout = DefaultConnectTimeout
	}

	addr := net.JoinHostPort(opts.Host, fmt.Sprintf("%d", port))
	client, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            user,
		Auth:            methods,
		HostKeyCallback: hostKey,
		Timeout:         timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s: %w", addr, err)
	}

	ftp, err := sftp.NewClient(client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("opening sftp subsystem on %s: %w", addr, err)
	}

	return &SSHSession{client: client, sftp: ftp, addr: addr}, nil
}

// Addr returns the dialed host:port.
func (s *SSHSession) Addr() string {
	return s.addr
}

// Run executes a command on the remote host and returns its stdout.
// The command line is shell-quoted so arguments containing spaces or
// quotes (fs_cli -x payloads in particular) survive the remote shell.
func (s *SSHSession) Run(ctx context.Context, name string, args ...string) (string, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("opening ssh session: %w", err)
	}
	defer sess.Close()

	var stdout, stderr bytes.Buffer
	sess.Stdout = &stdout
	sess.Stderr = &stderr

	cmdline := shellquote.Join(append([]string{name}, args...)...)

	// ssh sessions have no native context support; kill on cancel.
	done := make(chan error, 1)
	go func() { done <- sess.Run(cmdline) }()

	select {
	case <-ctx.Done():
		sess.Signal(ssh.SIGKILL)
		<-done
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("%s failed: %s: %w", name, strings.TrimSpace(stderr.String()), err)
		}
		return stdout.String(), nil
	}
}

// Get copies the remote file at path into dst.
func (s *SSHSession) Get(path string, dst io.Writer) error {
	f, err := s.sftp.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(dst, f)
	return err
}

// Put writes src to the remote file at path, truncating any existing file.
func (s *SSHSession) Put(src io.Reader, path string) error {
	f, err := s.sftp.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rename moves the remote file at oldPath to newPath.
func (s *SSHSession) Rename(oldPath, newPath string) error {
	return s.sftp.Rename(oldPath, newPath)
}

// Open opens the remote file at path for reading.
func (s *SSHSession) Open(path string) (io.ReadCloser, error) {
	return s.sftp.Open(path)
}

// Close shuts down the SFTP subsystem and the SSH connection.
func (s *SSHSession) Close() error {
	s.sftp.Close()
	return s.client.Close()
}
