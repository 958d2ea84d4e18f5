package config

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingVar marks a required environment variable that is absent. The
// wrapped message names the variable.
var ErrMissingVar = errors.New("required environment variable not set")

// Config is the environment-sourced configuration, collected once at process
// start and passed down explicitly. Nothing below the CLI reads the
// environment.
type Config struct {
	GapsUsername string
	GapsPassword string
	BotToken     string
	ChatID       string
}

// Load reads the configuration from the environment. Portal credentials are
// mandatory; the Telegram pair is validated separately so dry runs work
// without a bot.
func Load() (Config, error) {
	cfg := Config{
		GapsUsername: os.Getenv("GAPS_USERNAME"),
		GapsPassword: os.Getenv("GAPS_PASSWORD"),
		BotToken:     os.Getenv("BOT_TOKEN"),
		ChatID:       os.Getenv("CHAT_ID"),
	}

	if cfg.GapsUsername == "" {
		return Config{}, fmt.Errorf("%w: GAPS_USERNAME", ErrMissingVar)
	}
	if cfg.GapsPassword == "" {
		return Config{}, fmt.Errorf("%w: GAPS_PASSWORD", ErrMissingVar)
	}
	return cfg, nil
}

// RequireTelegram verifies that the Telegram credential pair is present.
func (c Config) RequireTelegram() error {
	if c.BotToken == "" {
		return fmt.Errorf("%w: BOT_TOKEN", ErrMissingVar)
	}
	if c.ChatID == "" {
		return fmt.Errorf("%w: CHAT_ID", ErrMissingVar)
	}
	return nil
}
