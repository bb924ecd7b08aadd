// Package transport abstracts the connection to a FreeSWITCH host.
//
// The config engine consumes two capabilities: Runner (execute one
// process and return its output) and Files (get/put/rename/open on the
// host's filesystem). Session bundles both for one connection.
//
// Two implementations ship:
//   - SSHSession: golang.org/x/crypto/ssh for command execution plus an
//     SFTP subsystem for file transfer. Built with Dial(Options).
//   - LocalSession: os/exec and the local filesystem, for a FreeSWITCH
//     running on the same machine.
//
// Sessions are singly-owned and not safe for concurrent use; run one
// config manager per session. Timeouts and retries live here or below —
// the engine above fails fast on any transport error.
package transport
