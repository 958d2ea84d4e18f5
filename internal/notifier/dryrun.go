package notifier

import (
	"fmt"

	"github.com/pmoret/gaps-notify/internal/grades"
)

// DryRunNotifier prints what would be sent without actually sending
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the message that would be sent
func (n *DryRunNotifier) Notify(changes []grades.Change) error {
	msg := FormatChanges(changes)
	fmt.Println("--- Message ---")
	fmt.Println(msg)
	fmt.Printf("\n(Length: %d characters)\n", len(msg))
	return nil
}
