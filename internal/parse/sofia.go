package parse

import (
	"fmt"
	"strings"

	"github.com/signalbay/switchctl/internal/logging"
)

// Row holds one status table row's columns, keyed by lower-cased header
// name, minus the name and type columns used for dispatch.
type Row map[string]string

// Status organizes `sofia status` output into per-kind maps. Gateway
// rows carry a derived "profile" column taken from the owning profile's
// half of the profile::gateway name.
type Status struct {
	Profiles map[string]Row
	Gateways map[string]Row
	Aliases  map[string]Row
}

// SofiaStatus parses the table printed by `sofia status`. The table is
// irregular: decorative ===== separator lines, a whitespace-padded
// header, tab-separated data rows, and a trailing summary count.
func SofiaStatus(out string) (*Status, error) {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "===") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("sofia status output too short: %d lines", len(lines))
	}

	// Drop the summary line ("2 profiles 1 alias").
	lines = lines[:len(lines)-1]

	colnames := strings.Fields(strings.ToLower(lines[0]))
	iname := -1
	for i, col := range colnames {
		if col == "name" {
			iname = i
			break
		}
	}
	if iname < 0 {
		return nil, fmt.Errorf("sofia status header has no name column: %q", lines[0])
	}
	colnames = append(colnames[:iname:iname], colnames[iname+1:]...)

	status := &Status{
		Profiles: make(map[string]Row),
		Gateways: make(map[string]Row),
		Aliases:  make(map[string]Row),
	}

	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if iname >= len(fields) {
			return nil, fmt.Errorf("sofia status row missing name column: %q", line)
		}
		name := fields[iname]
		fields = append(fields[:iname:iname], fields[iname+1:]...)

		row := make(Row, len(colnames))
		for i, col := range colnames {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}

		tp := row["type"]
		delete(row, "type")

		switch tp {
		case "profile":
			status.Profiles[name] = row
		case "gateway":
			profname, gwname, ok := strings.Cut(name, "::")
			if !ok {
				return nil, fmt.Errorf("gateway name %q has no profile:: prefix", name)
			}
			row["profile"] = profname
			status.Gateways[gwname] = row
		case "alias":
			status.Aliases[name] = row
		default:
			// Unknown row kinds are tolerated, matching the server's
			// habit of growing new types; surfaced in logs only.
			logging.Warn("dropping sofia status row of unknown type", "type", tp, "name", name)
		}
	}

	return status, nil
}
