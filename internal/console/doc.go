// Package console wraps fs_cli command execution over a transport
// runner.
//
// A Client is built once with the fixed flag set (e.g. --host, --password)
// and reused for every invocation; Run joins its tokens into one command
// payload behind fs_cli's -x switch.
//
// Failures split into two kinds: the transport failing to execute fs_cli
// at all (ConnectionError) and the command running but reporting failure
// (CommandError). FreeSWITCH signals the latter with a final output line
// starting with -ERR; commands that don't follow that convention can
// attach Conditions via RunWith.
//
// No retries happen at this layer.
package console
