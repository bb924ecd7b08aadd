// Package fsconfig synchronizes a FreeSWITCH server's live XML
// configuration with a locally editable in-memory document.
//
// Open discovers whether the remote configuration is a single aggregate
// freeswitch.xml or assembled from includes; in the latter case the
// server's merged view is squashed down to one canonical file (the
// original is kept as a timestamped backup). The resulting Manager owns
// the parsed tree, a RestorableFile snapshot of the canonical file, and
// the console client.
//
// Edits happen on the tree, through schema-bound sections or directly;
// Commit serializes, uploads and reloads, Revert restores the snapshot
// bytes. Revert deliberately leaves the in-memory tree stale — reopen a
// manager to see reverted content.
//
// The whole package assumes a single editor session per host: one
// manager per connection, no cross-manager coordination, no detection of
// concurrent external edits.
package fsconfig
