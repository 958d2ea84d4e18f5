// Package grades holds the course/grade data model and the diff engine that
// decides which grades are new since the last run.
//
// Two comparison strategies exist because the portal's report format has
// shipped with and without per-assessment name columns. When entries carry a
// name, matching happens by (category, name) identity; otherwise occurrence
// counts of (course, category, value) triples are compared, so a second
// identical grade in the same category is still reported as new.
package grades
