package report

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pmoret/gaps-notify/internal/grades"
)

var (
	// ErrUnwrapFailed marks a raw payload that matched none of the known
	// envelope shapes. There is no partial-success mode: half-extracted
	// grades would poison the next diff baseline.
	ErrUnwrapFailed = errors.New("could not unwrap report envelope")

	// ErrMalformedReport marks recovered HTML that does not contain the
	// expected results table structure.
	ErrMalformedReport = errors.New("malformed grade report")
)

// sentinel is the placeholder the portal shows for assessments that have not
// been graded yet. Rows resolving to it contribute nothing.
const sentinel = "-"

// envelope is one known shape of the AJAX response wrapper. The portal has
// changed this wrapper between versions, so shapes are tried in order.
type envelope struct {
	name string
	re   *regexp.Regexp
}

var envelopes = []envelope{
	{"parts-result", regexp.MustCompile(`\+:"\{\\"parts\\":\{\\"result\\":\\"(.*)\\"}}"`)},
	{"result-only", regexp.MustCompile(`\+:"\{\\"result\\":\\"(.*)\\"}"`)},
	{"bare-string", regexp.MustCompile(`\+:"(.*)"`)},
}

// unescaper reverses the string escaping applied by the wrapper. Escape depth
// differs between envelope shapes, so both depths are handled, deepest first.
var unescaper = strings.NewReplacer(
	`\\\"`, `"`,
	`\\\/`, `/`,
	`\"`, `"`,
	`\/`, `/`,
)

// Extract turns the raw portal response into the ordered course list it
// describes. Output order is exactly table row order.
func Extract(raw string) ([]grades.Course, error) {
	html, err := unwrap(raw)
	if err != nil {
		return nil, err
	}
	return parseTable(html)
}

// unwrap isolates the inner escaped HTML from the response envelope and
// reverses the escaping.
func unwrap(raw string) (string, error) {
	for _, env := range envelopes {
		matches := env.re.FindStringSubmatch(raw)
		if matches == nil {
			continue
		}
		return unescaper.Replace(matches[1]), nil
	}
	return "", fmt.Errorf("%w: no known envelope shape matched", ErrUnwrapFailed)
}

// walkState is the running state of the row fold: the course being
// accumulated, the sticky category inherited from the last header row, and
// the finished courses.
type walkState struct {
	current  grades.Course
	category string
	courses  []grades.Course
}

// flush moves a non-empty accumulator into the output. Rows seen before the
// first course header accumulate under an empty name and are dropped here.
func (s *walkState) flush() {
	if s.current.Name != "" {
		s.courses = append(s.courses, s.current)
	}
	s.current = grades.Course{}
}

// categoryKeywords maps header-cell substrings to category tags. Rows that
// match none inherit the previous category.
var categoryKeywords = []struct {
	match string
	tag   string
}{
	{"Cours", "cours"},
	{"Laboratoire", "laboratoire"},
	{"Projet", "projet"},
}

// Rows carrying the richer column set (date, assessment name, class average,
// weight, grade) have at least this many cells; name and average sit at fixed
// offsets from the end.
const richRowCells = 5

func parseTable(html string) ([]grades.Course, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	table := doc.Find("table.displayArray").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no results table found", ErrMalformedReport)
	}

	state := &walkState{}
	var walkErr error

	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}

		first := cells.First()
		if strings.Contains(first.AttrOr("class", ""), "bigheader") {
			state.flush()
			name := firstToken(first.Text())
			if name == "" {
				walkErr = fmt.Errorf("%w: course header row without a name", ErrMalformedReport)
				return false
			}
			state.current.Name = name
		}

		firstText := first.Text()
		for _, kw := range categoryKeywords {
			if strings.Contains(firstText, kw.match) {
				state.category = kw.tag
				break
			}
		}

		last := cells.Last()
		if !strings.Contains(last.AttrOr("class", ""), "bodyCC") {
			return true
		}

		value := firstToken(last.Text())
		if value == "" || value == sentinel {
			return true
		}

		entry := grades.Entry{Value: value, Category: state.category}
		if n := cells.Length(); n >= richRowCells {
			entry.Name = strings.TrimSpace(cells.Eq(n - 4).Text())
			entry.Average = firstToken(cells.Eq(n - 3).Text())
		}
		state.current.Grades = append(state.current.Grades, entry)
		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}
	state.flush()
	return state.courses, nil
}

// firstToken returns the first whitespace-delimited token of s, or "".
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
