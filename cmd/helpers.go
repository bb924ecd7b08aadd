package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/signalbay/switchctl/internal/config"
	"github.com/signalbay/switchctl/internal/console"
	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/fsconfig"
	"github.com/signalbay/switchctl/internal/logging"
	"github.com/signalbay/switchctl/internal/transport"
)

// loadClientConfig reads the config file named by --config, falling back
// to the default location.
func loadClientConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, errors.ConfigError("resolving config path", err)
		}
	}
	return config.Load(path)
}

// resolveHost picks the host profile from --host or the config default.
func resolveHost() (string, config.Host, error) {
	cfg, err := loadClientConfig()
	if err != nil {
		return "", config.Host{}, err
	}
	host, err := cfg.Host(hostName)
	if err != nil {
		return "", config.Host{}, err
	}

	name := hostName
	if name == "" {
		name = cfg.DefaultHost
	}
	if name == "" {
		name = "local"
	}
	return name, host, nil
}

// openSession connects to the resolved host: SSH for remote profiles,
// the local machine for profiles marked local.
func openSession(host config.Host) (transport.Session, error) {
	if host.Local {
		return transport.NewLocalSession(), nil
	}

	opts := transport.DefaultOptions(host.Address)
	if host.Port != 0 {
		opts.Port = host.Port
	}
	if host.User != "" {
		opts.User = host.User
	}
	opts.IdentityFile = host.IdentityFile
	opts.KnownHostsFile = host.KnownHostsFile
	opts.StrictHostKeyCheck = host.StrictHostKey
	if host.IdentityFile == "" {
		opts.PasswordPrompt = promptPassword(opts.User, host.Address)
	}

	sess, err := transport.Dial(opts)
	if err != nil {
		return nil, errors.ConnectionError(fmt.Sprintf("connecting to %s", host.Address), err)
	}
	return sess, nil
}

// promptPassword asks for an SSH password on the terminal. Keeps stdout
// clean so command output stays machine-consumable.
func promptPassword(user, addr string) func() (string, error) {
	return func() (string, error) {
		fmt.Fprintf(os.Stderr, "%s@%s password: ", user, addr)
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
}

// withConsole runs fn with a connected console client, closing the
// session afterwards. For commands that only talk to fs_cli and never
// touch the config tree.
func withConsole(fn func(ctx context.Context, cli *console.Client) error) error {
	_, host, err := resolveHost()
	if err != nil {
		return err
	}
	sess, err := openSession(host)
	if err != nil {
		return err
	}
	defer sess.Close()

	cli := console.New(sess, host.CLIFlags, host.CLIOptions)
	return fn(context.Background(), cli)
}

// withManager runs fn with an opened config manager, closing the session
// afterwards. Opening aggregates a multi-file config as a side effect.
func withManager(fn func(ctx context.Context, mng *fsconfig.Manager) error) error {
	start := time.Now()
	name, host, err := resolveHost()
	if err != nil {
		return err
	}
	sess, err := openSession(host)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := context.Background()
	cli := console.New(sess, host.CLIFlags, host.CLIOptions)
	mng, err := fsconfig.Open(ctx, host.ConfDir, sess, cli, logging.Logger())
	if err != nil {
		return err
	}
	logging.Debug("opened config manager", "host", name, "path", mng.File().Path(), "elapsed", time.Since(start))

	return fn(ctx, mng)
}
