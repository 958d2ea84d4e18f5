package notifier

import (
	"github.com/pmoret/gaps-notify/internal/grades"
)

// Notifier defines the interface for delivering grade change notifications
type Notifier interface {
	// Notify delivers a notification for the given changes
	Notify(changes []grades.Change) error
}
