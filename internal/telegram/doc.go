// Package telegram provides a minimal Telegram Bot API client for delivering
// grade notifications.
//
// Authentication requires a bot token (from @BotFather) and a chat ID.
// Delivery is best-effort: the caller logs failures instead of failing the
// run, and only transient API errors are retried.
package telegram
