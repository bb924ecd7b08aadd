package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signalbay/switchctl/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
default_host = "pbx1"

[hosts.pbx1]
address = "pbx1.example.com"
user = "fsadmin"
conf_dir = "/usr/local/freeswitch/conf"
cli_flags = ["quiet"]

[hosts.lab]
local = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultHost != "pbx1" {
		t.Errorf("DefaultHost = %q, want pbx1", cfg.DefaultHost)
	}
	if len(cfg.Hosts) != 2 {
		t.Fatalf("len(Hosts) = %d, want 2", len(cfg.Hosts))
	}

	pbx1, err := cfg.Host("pbx1")
	if err != nil {
		t.Fatalf("Host(pbx1) error = %v", err)
	}
	if pbx1.Address != "pbx1.example.com" {
		t.Errorf("Address = %q", pbx1.Address)
	}
	if pbx1.ConfDir != "/usr/local/freeswitch/conf" {
		t.Errorf("ConfDir = %q, want explicit value kept", pbx1.ConfDir)
	}
	if len(pbx1.CLIFlags) != 1 || pbx1.CLIFlags[0] != "quiet" {
		t.Errorf("CLIFlags = %v", pbx1.CLIFlags)
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want empty config", err)
	}
	if len(cfg.Hosts) != 0 {
		t.Errorf("Hosts = %v, want empty", cfg.Hosts)
	}
}

func TestLoad_HostWithoutAddress(t *testing.T) {
	path := writeConfig(t, `
[hosts.broken]
user = "fsadmin"
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a non-local host without an address")
	}
}

func TestLoad_BadHostName(t *testing.T) {
	path := writeConfig(t, `
[hosts."../evil"]
address = "example.com"
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject host names with path separators")
	}
}

func TestHost_Default(t *testing.T) {
	cfg := &Config{
		DefaultHost: "pbx1",
		Hosts: map[string]Host{
			"pbx1": {Address: "pbx1.example.com"},
		},
	}

	host, err := cfg.Host("")
	if err != nil {
		t.Fatalf("Host(\"\") error = %v", err)
	}
	if host.Address != "pbx1.example.com" {
		t.Errorf("Address = %q", host.Address)
	}
	if host.ConfDir != DefaultConfDir {
		t.Errorf("ConfDir = %q, want default %q", host.ConfDir, DefaultConfDir)
	}
}

func TestHost_SingleHostFallback(t *testing.T) {
	cfg := &Config{
		Hosts: map[string]Host{
			"only": {Address: "only.example.com"},
		},
	}

	host, err := cfg.Host("")
	if err != nil {
		t.Fatalf("Host(\"\") error = %v", err)
	}
	if host.Address != "only.example.com" {
		t.Errorf("Address = %q", host.Address)
	}
}

func TestHost_EmptyConfigFallsBackToLocal(t *testing.T) {
	cfg := &Config{Hosts: map[string]Host{}}

	host, err := cfg.Host("")
	if err != nil {
		t.Fatalf("Host(\"\") error = %v", err)
	}
	if !host.Local {
		t.Error("empty config should fall back to a local host")
	}
	if host.ConfDir != DefaultConfDir {
		t.Errorf("ConfDir = %q, want %q", host.ConfDir, DefaultConfDir)
	}
}

func TestHost_NotFound(t *testing.T) {
	cfg := &Config{Hosts: map[string]Host{}}

	_, err := cfg.Host("ghost")
	if err == nil {
		t.Fatal("Host() should fail for unknown names")
	}
	if errors.GetExitCode(err) != errors.ExitHostNotFound {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitHostNotFound)
	}
}

func TestValidateHostName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"pbx1", false},
		{"pbx1.example.com", false},
		{"lab_2-b", false},
		{"", true},
		{"UPPER", true},
		{"../escape", true},
		{"-leading", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHostName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHostName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}
