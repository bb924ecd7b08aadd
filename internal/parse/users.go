package parse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/signalbay/switchctl/internal/errors"
)

// allowedFilters are the arguments list_users accepts.
var allowedFilters = map[string]bool{
	"domain":  true,
	"group":   true,
	"user":    true,
	"context": true,
}

// UserRecord is one directory user. The field set comes from the header
// row of the list_users output, so records are an ordered field list
// plus a field->value map rather than a fixed struct.
type UserRecord struct {
	Fields []string
	Values map[string]string
}

// Get returns the value of the named field, or "" if absent.
func (r UserRecord) Get(field string) string {
	return r.Values[field]
}

// Domain returns the record's domain field.
func (r UserRecord) Domain() string {
	return r.Values["domain"]
}

// Directory maps domain names to their users, remembering first-seen
// domain order.
type Directory struct {
	Domains []string
	Users   map[string][]UserRecord
}

// ValidateFilters rejects filter keys outside the list_users allow-list.
// Called before any remote command is issued.
func ValidateFilters(filters map[string]string) error {
	for key := range filters {
		if !allowedFilters[key] {
			return errors.ArgumentError(fmt.Sprintf("%s is not a valid argument to list_users", key))
		}
	}
	return nil
}

// FilterTokens renders validated filters as list_users argument tokens
// in deterministic (sorted key) order.
func FilterTokens(filters map[string]string) []string {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var tokens []string
	for _, key := range keys {
		tokens = append(tokens, key, filters[key])
	}
	return tokens
}

// UserList parses list_users output: a pipe-delimited header naming the
// record fields, one row per user, and two trailing non-data lines.
func UserList(out string) (*Directory, error) {
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("list_users output too short: %d lines", len(lines))
	}

	// Last two lines are a blank and the +OK trailer.
	lines = lines[:len(lines)-2]

	header := strings.Split(lines[0], "|")
	dir := &Directory{Users: make(map[string][]UserRecord)}

	for _, line := range lines[1:] {
		fields := strings.Split(line, "|")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("list_users row has %d fields, header has %d: %q",
				len(fields), len(header), line)
		}

		rec := UserRecord{
			Fields: header,
			Values: make(map[string]string, len(header)),
		}
		for i, name := range header {
			rec.Values[name] = fields[i]
		}

		domain := rec.Domain()
		if _, seen := dir.Users[domain]; !seen {
			dir.Domains = append(dir.Domains, domain)
		}
		dir.Users[domain] = append(dir.Users[domain], rec)
	}

	return dir, nil
}
