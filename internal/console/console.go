package console

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/transport"
)

// errMarker is FreeSWITCH's application-level failure prefix. The console
// exits zero even when a command fails, so the last output line is the
// only reliable signal.
const errMarker = "-ERR"

// Condition is a caller-supplied failure check for commands that do not
// use the -ERR convention (e.g. "empty output means failure"). Failed
// receives the trimmed output and returns true to classify it as a
// command error.
type Condition struct {
	Name   string
	Failed func(output string) bool
}

// ErrorOn builds a named Condition.
func ErrorOn(name string, fn func(output string) bool) Condition {
	return Condition{Name: name, Failed: fn}
}

// Client wraps fs_cli invocations over a transport runner. The command
// line (tool name plus fixed flags) is built once at construction; the
// client itself is stateless and safe to reuse across invocations.
type Client struct {
	runner transport.Runner
	args   []string
}

// New builds a client with the given boolean-style flags and key=value
// flags. Flags become --flag and --key=value arguments ahead of the -x
// execute switch, matching fs_cli's CLI surface.
func New(runner transport.Runner, flags []string, kv map[string]string) *Client {
	args := make([]string, 0, len(flags)+len(kv)+1)
	for _, flag := range flags {
		args = append(args, "--"+flag)
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, fmt.Sprintf("--%s=%s", k, kv[k]))
	}

	args = append(args, "-x")
	return &Client{runner: runner, args: args}
}

// Run joins tokens with single spaces, executes the command, and returns
// trimmed output. Transport failures surface as ConnectionError; a last
// line starting with -ERR, or any tripped condition, as CommandError.
func (c *Client) Run(ctx context.Context, tokens ...string) (string, error) {
	return c.RunWith(ctx, nil, tokens...)
}

// RunWith is Run with extra failure conditions applied to the output.
func (c *Client) RunWith(ctx context.Context, conds []Condition, tokens ...string) (string, error) {
	cmd := strings.Join(tokens, " ")

	raw, err := c.runner.Run(ctx, "fs_cli", append(c.args, cmd)...)
	if err != nil {
		return "", errors.ConnectionError(fmt.Sprintf("fs_cli %q", cmd), err)
	}

	out := strings.TrimSpace(raw)
	lines := strings.Split(out, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], errMarker) {
		return "", errors.CommandError(out)
	}

	for _, cond := range conds {
		if cond.Failed(out) {
			return "", errors.CommandError(fmt.Sprintf("%s: %s", cond.Name, out))
		}
	}
	return out, nil
}

// Eval evaluates an expression in fs_cli.
func (c *Client) Eval(ctx context.Context, expr string) (string, error) {
	return c.Run(ctx, "eval", expr)
}

// API runs a FreeSWITCH api command (e.g. API(ctx, "reloadxml")).
func (c *Client) API(ctx context.Context, tokens ...string) (string, error) {
	return c.Run(ctx, append([]string{"api"}, tokens...)...)
}
