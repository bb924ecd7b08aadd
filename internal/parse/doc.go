// Package parse turns the semi-structured text printed by FreeSWITCH
// console commands into typed collections.
//
// These are pure functions over raw command output; they perform no
// remote calls and keep no state. SofiaStatus handles the tabular
// `sofia status` listing, UserList the pipe-delimited `list_users`
// directory dump.
package parse
