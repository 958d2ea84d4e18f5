// Package report parses the raw grade report returned by the portal's AJAX
// refresh into structured course data.
//
// Extraction runs in two stages: the escaped HTML fragment is first unwrapped
// from the response envelope (several historical envelope shapes are tried in
// order), then the recovered results table is walked row by row, tracking the
// current course and the sticky category inherited from header rows.
package report
