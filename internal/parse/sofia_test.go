package parse

import (
	"strings"
	"testing"

	"github.com/signalbay/switchctl/internal/testutil"
)

func TestSofiaStatus(t *testing.T) {
	status, err := SofiaStatus(strings.TrimSpace(testutil.SofiaStatusOutput))
	if err != nil {
		t.Fatalf("SofiaStatus() error = %v", err)
	}

	if len(status.Profiles) != 2 {
		t.Errorf("len(Profiles) = %d, want 2", len(status.Profiles))
	}
	if len(status.Gateways) != 1 {
		t.Errorf("len(Gateways) = %d, want 1", len(status.Gateways))
	}
	if len(status.Aliases) != 1 {
		t.Errorf("len(Aliases) = %d, want 1", len(status.Aliases))
	}

	internal, ok := status.Profiles["internal"]
	if !ok {
		t.Fatal("profile 'internal' missing")
	}
	if internal["data"] != "sip:mod_sofia@198.51.100.5:5060" {
		t.Errorf("internal data = %q", internal["data"])
	}
	if internal["state"] != "RUNNING (0)" {
		t.Errorf("internal state = %q", internal["state"])
	}
	if _, stillThere := internal["type"]; stillThere {
		t.Error("type column should be consumed by dispatch")
	}

	alias, ok := status.Aliases["example.com"]
	if !ok {
		t.Fatal("alias 'example.com' missing")
	}
	if alias["data"] != "internal" {
		t.Errorf("alias data = %q", alias["data"])
	}
}

func TestSofiaStatus_GatewayProfileSplit(t *testing.T) {
	status, err := SofiaStatus(strings.TrimSpace(testutil.SofiaStatusOutput))
	if err != nil {
		t.Fatalf("SofiaStatus() error = %v", err)
	}

	gw, ok := status.Gateways["example.com"]
	if !ok {
		t.Fatalf("gateway 'example.com' missing, have %v", status.Gateways)
	}
	if gw["profile"] != "external" {
		t.Errorf("gateway profile = %q, want %q", gw["profile"], "external")
	}
	if gw["state"] != "NOREG" {
		t.Errorf("gateway state = %q, want NOREG", gw["state"])
	}
}

func TestSofiaStatus_GatewayNameExample(t *testing.T) {
	out := "Name\tType\tData\tState\n" +
		"prof1::gw1\tgateway\tsip:gw@host\tREGED\n" +
		"1 gateway\n"

	status, err := SofiaStatus(out)
	if err != nil {
		t.Fatalf("SofiaStatus() error = %v", err)
	}
	if status.Gateways["gw1"]["profile"] != "prof1" {
		t.Errorf(`Gateways["gw1"]["profile"] = %q, want "prof1"`, status.Gateways["gw1"]["profile"])
	}
}

func TestSofiaStatus_UnknownTypeDropped(t *testing.T) {
	out := "Name\tType\tData\tState\n" +
		"int\tprofile\tsip:a@b\tRUNNING (0)\n" +
		"weird\tcluster\tsip:c@d\tUP\n" +
		"1 profile\n"

	status, err := SofiaStatus(out)
	if err != nil {
		t.Fatalf("SofiaStatus() error = %v", err)
	}
	if len(status.Profiles) != 1 {
		t.Errorf("len(Profiles) = %d, want 1", len(status.Profiles))
	}
	total := len(status.Profiles) + len(status.Gateways) + len(status.Aliases)
	if total != 1 {
		t.Errorf("unknown-type row should be dropped, total rows = %d", total)
	}
}

func TestSofiaStatus_MalformedGatewayName(t *testing.T) {
	out := "Name\tType\tData\tState\n" +
		"nodelimiter\tgateway\tsip:a@b\tREGED\n" +
		"1 gateway\n"

	if _, err := SofiaStatus(out); err == nil {
		t.Error("SofiaStatus() should reject a gateway name without ::")
	}
}

func TestSofiaStatus_MissingNameColumn(t *testing.T) {
	out := "Kind\tData\n" +
		"profile\tsip:a@b\n" +
		"1 profile\n"

	if _, err := SofiaStatus(out); err == nil {
		t.Error("SofiaStatus() should reject a header without a name column")
	}
}

func TestSofiaStatus_TooShort(t *testing.T) {
	if _, err := SofiaStatus(""); err == nil {
		t.Error("SofiaStatus() should reject empty output")
	}
}
