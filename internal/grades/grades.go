package grades

// Course groups the grade entries of a single course, in the order they
// appear in the report table.
type Course struct {
	Name   string  `json:"name"`
	Grades []Entry `json:"grades"`
}

// Entry is a single observed grade. Name and Average are only populated when
// the report format carries per-assessment columns.
type Entry struct {
	Value    string `json:"value"`
	Category string `json:"category"`
	Name     string `json:"name,omitempty"`
	Average  string `json:"average,omitempty"`
}

// Change describes one grade that is new or whose value differs from the
// baseline. Changes are rendered into notifications and never persisted.
type Change struct {
	Course   string
	Category string
	Grade    string
	Name     string
	Average  string
}
