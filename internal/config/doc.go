// Package config loads the switchctl client configuration.
//
// The config file lives at ~/.config/switchctl/config.toml and declares
// named host profiles:
//
//	default_host = "pbx1"
//
//	[hosts.pbx1]
//	address = "pbx1.example.com"
//	user = "fsadmin"
//	identity_file = "/home/me/.ssh/id_ed25519"
//	conf_dir = "/etc/freeswitch"
//
//	[hosts.lab]
//	local = true
//
//	[hosts.pbx2]
//	address = "203.0.113.7"
//	cli_options = { password = "ClueCon" }
//
// A missing file is fine; `switchctl --host` flags and local mode work
// without one.
package config
