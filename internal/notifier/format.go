package notifier

import (
	"fmt"
	"strings"

	"github.com/pmoret/gaps-notify/internal/grades"
)

const (
	messageHeader = "📚 New Grades Available! 📚"
	messageFooter = "Keep up the excellence! 🚀"
)

// FormatChanges renders a change list into a single notification message:
// header, one line per change in input order, footer. Callers skip empty
// change lists entirely; an empty-body notification is not useful.
func FormatChanges(changes []grades.Change) string {
	var msg strings.Builder
	msg.WriteString(messageHeader + "\n\n")

	for _, change := range changes {
		msg.WriteString(fmt.Sprintf("%s New grade in %s for %s : %s",
			categoryMarker(change.Category), change.Category, change.Course, change.Grade))
		if change.Name != "" {
			msg.WriteString(fmt.Sprintf(" (%s)", change.Name))
		}
		if change.Average != "" {
			msg.WriteString(fmt.Sprintf(", class avg %s", change.Average))
		}
		msg.WriteString("\n")
	}

	msg.WriteString("\n" + messageFooter)
	return msg.String()
}

// categoryMarker picks the per-line marker for a change's category.
func categoryMarker(category string) string {
	if category == "laboratoire" {
		return "🔬"
	}
	return "📖"
}
