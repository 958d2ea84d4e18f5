// Package snapshot provides JSON-based persistence for the last-known grade
// state.
//
// A single grades.json file under the data directory holds the ordered course
// list from the previous run. It is the diff baseline on read and is fully
// replaced on every write. The default location is ~/.local/share/gaps-notify.
package snapshot
