package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/signalbay/switchctl/internal/errors"
)

const (
	// DefaultConfDir is the FreeSWITCH configuration directory used when
	// a host profile doesn't set one.
	DefaultConfDir = "/etc/freeswitch"

	configFileName = "config.toml"
	appDirName     = "switchctl"
)

// hostNameRegex validates host profile names. Names end up in cache
// directory paths, so the same discipline as any other path component
// applies: lowercase alphanumerics, dots, underscores, hyphens.
var hostNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,62}$`)

// ValidateHostName checks if a host profile name is valid.
func ValidateHostName(name string) error {
	if name == "" {
		return fmt.Errorf("host name cannot be empty")
	}
	if !hostNameRegex.MatchString(name) {
		return fmt.Errorf("invalid host name %q: must start with a lowercase letter or digit and contain only lowercase letters, digits, dots, underscores, or hyphens", name)
	}
	return nil
}

// Host is one connection profile from the client config.
type Host struct {
	// Address is the SSH host to dial. Empty with Local set manages the
	// machine switchctl runs on.
	Address        string `toml:"address"`
	Port           int    `toml:"port"`
	User           string `toml:"user"`
	IdentityFile   string `toml:"identity_file"`
	KnownHostsFile string `toml:"known_hosts_file"`
	StrictHostKey  bool   `toml:"strict_host_key"`
	Local          bool   `toml:"local"`

	// ConfDir is the remote FreeSWITCH configuration directory holding
	// freeswitch.xml. Defaults to /etc/freeswitch.
	ConfDir string `toml:"conf_dir"`

	// CLIFlags and CLIOptions become fs_cli --flag / --key=value
	// arguments on every console invocation.
	CLIFlags   []string          `toml:"cli_flags"`
	CLIOptions map[string]string `toml:"cli_options"`
}

// Config is the parsed client configuration file.
type Config struct {
	DefaultHost string          `toml:"default_host"`
	Hosts       map[string]Host `toml:"hosts"`
}

// DefaultPath returns the standard config file location,
// ~/.config/switchctl/config.toml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads and validates the config file at path. A missing file is
// not an error: it yields an empty config so purely local usage works
// without any setup.
func Load(path string) (*Config, error) {
	cfg := &Config{Hosts: make(map[string]Host)}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("parsing %s", path), err)
	}
	if cfg.Hosts == nil {
		cfg.Hosts = make(map[string]Host)
	}

	for name, host := range cfg.Hosts {
		if err := ValidateHostName(name); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("in %s", path), err)
		}
		if host.Address == "" && !host.Local {
			return nil, errors.ConfigError(
				fmt.Sprintf("host %q in %s has no address and is not marked local", name, path), nil)
		}
	}
	return cfg, nil
}

// Host resolves a profile by name, falling back to the configured
// default when name is empty.
func (c *Config) Host(name string) (Host, error) {
	if name == "" {
		name = c.DefaultHost
	}
	if name == "" {
		if len(c.Hosts) == 1 {
			for _, host := range c.Hosts {
				return withDefaults(host), nil
			}
		}
		if len(c.Hosts) == 0 {
			// No config at all: manage the local machine.
			return withDefaults(Host{Local: true}), nil
		}
		return Host{}, errors.ConfigError("no host given and no default_host configured", nil)
	}

	host, ok := c.Hosts[name]
	if !ok {
		return Host{}, errors.HostNotFound(name)
	}
	return withDefaults(host), nil
}

func withDefaults(h Host) Host {
	if h.ConfDir == "" {
		h.ConfDir = DefaultConfDir
	}
	return h
}

// CacheDir returns the per-host staging directory under the user cache
// dir, creating it if needed. The host name is joined securely so a
// hostile profile name cannot escape the cache root.
func CacheDir(hostName string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	root := filepath.Join(base, appDirName)

	dir, err := securejoin.SecureJoin(root, hostName)
	if err != nil {
		return "", errors.ConfigError(fmt.Sprintf("resolving cache dir for %q", hostName), err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
