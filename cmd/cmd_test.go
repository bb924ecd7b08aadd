package cmd

import (
	"testing"

	"github.com/signalbay/switchctl/internal/errors"
)

func TestParseAttrArgs(t *testing.T) {
	attrs, err := parseAttrArgs([]string{"value=1", "name=debug"})
	if err != nil {
		t.Fatalf("parseAttrArgs() error = %v", err)
	}
	if attrs["value"] != "1" || attrs["name"] != "debug" {
		t.Errorf("attrs = %v", attrs)
	}
}

func TestParseAttrArgs_ValueWithEquals(t *testing.T) {
	attrs, err := parseAttrArgs([]string{"data=codec=PCMU"})
	if err != nil {
		t.Fatalf("parseAttrArgs() error = %v", err)
	}
	if attrs["data"] != "codec=PCMU" {
		t.Errorf(`attrs["data"] = %q, want only the first = to split`, attrs["data"])
	}
}

func TestParseAttrArgs_Invalid(t *testing.T) {
	for _, arg := range []string{"novalue", "=orphan"} {
		_, err := parseAttrArgs([]string{arg})
		if err == nil {
			t.Errorf("parseAttrArgs(%q) should fail", arg)
			continue
		}
		if !errors.IsArgumentError(err) {
			t.Errorf("parseAttrArgs(%q) error should classify as argument error, got %v", arg, err)
		}
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	want := []string{"status", "users", "eval", "exec", "set", "aggregate", "monitor", "hosts", "pull"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
