package grades

import "sort"

// Differ computes the changes between a baseline course list and a freshly
// fetched one. Both inputs are read-only; the returned changes preserve the
// order of the fresh course list.
type Differ interface {
	Diff(previous, current []Course) []Change
}

// ChooseDiffer selects the comparison strategy for a fetch result. Entries
// carrying an assessment name allow identity matching; without one the only
// safe comparison is counting occurrences.
func ChooseDiffer(current []Course) Differ {
	for _, course := range current {
		for _, entry := range course.Grades {
			if entry.Name != "" {
				return identityDiffer{}
			}
		}
	}
	return countDiffer{}
}

// countDiffer compares occurrence counts of (course, category, value)
// triples. A positive delta emits that many changes, so a duplicate of an
// already-known grade is still reported. Decreases are ignored.
type countDiffer struct{}

func (countDiffer) Diff(previous, current []Course) []Change {
	baseline := countGrades(previous)

	var changes []Change
	for _, course := range current {
		counts := countGrades([]Course{course})[course.Name]
		prevCounts := baseline[course.Name]

		for _, category := range sortedKeys(counts) {
			values := counts[category]
			for _, value := range sortedKeys(values) {
				delta := values[value] - prevCounts[category][value]
				for i := 0; i < delta; i++ {
					changes = append(changes, Change{
						Course:   course.Name,
						Category: category,
						Grade:    value,
					})
				}
			}
		}
	}
	return changes
}

// countGrades builds course -> category -> value -> occurrence count.
func countGrades(courses []Course) map[string]map[string]map[string]int {
	out := make(map[string]map[string]map[string]int, len(courses))
	for _, course := range courses {
		categories := out[course.Name]
		if categories == nil {
			categories = make(map[string]map[string]int)
			out[course.Name] = categories
		}
		for _, entry := range course.Grades {
			values := categories[entry.Category]
			if values == nil {
				values = make(map[string]int)
				categories[entry.Category] = values
			}
			values[entry.Value]++
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// identityDiffer matches entries of the same course by (category, name). An
// unmatched entry is new; a matched entry with a different value is reported
// with the new value; identical entries emit nothing. A course absent from
// the baseline contributes all of its entries.
type identityDiffer struct{}

func (identityDiffer) Diff(previous, current []Course) []Change {
	baseline := make(map[string][]Entry, len(previous))
	for _, course := range previous {
		baseline[course.Name] = course.Grades
	}

	var changes []Change
	for _, course := range current {
		old, known := baseline[course.Name]
		for _, entry := range course.Grades {
			if known {
				prev, matched := matchEntry(old, entry.Category, entry.Name)
				if matched && prev.Value == entry.Value {
					continue
				}
			}
			changes = append(changes, Change{
				Course:   course.Name,
				Category: entry.Category,
				Grade:    entry.Value,
				Name:     entry.Name,
				Average:  entry.Average,
			})
		}
	}
	return changes
}

func matchEntry(entries []Entry, category, name string) (Entry, bool) {
	for _, entry := range entries {
		if entry.Category == category && entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}
