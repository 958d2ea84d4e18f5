package notifier

import (
	"fmt"

	"github.com/pmoret/gaps-notify/internal/grades"
	"github.com/pmoret/gaps-notify/internal/telegram"
)

// TelegramNotifier delivers grade changes as a single Telegram message
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a Telegram-backed notifier
func NewTelegramNotifier(botToken, chatID string) (*TelegramNotifier, error) {
	client, err := telegram.NewClient(botToken, chatID)
	if err != nil {
		return nil, fmt.Errorf("initializing telegram client: %w", err)
	}
	return &TelegramNotifier{client: client}, nil
}

// Notify sends one message covering all changes
func (n *TelegramNotifier) Notify(changes []grades.Change) error {
	return n.client.SendMessage(FormatChanges(changes))
}
