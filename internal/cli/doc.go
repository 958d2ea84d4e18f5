// Package cli wires the fetch, extract, diff and notify stages into the
// run-once gaps-notify command.
//
// Exit codes distinguish outcomes for wrapping schedulers: 0 means no new
// grades, 1 means the run failed, 2 means new grades were found.
package cli
