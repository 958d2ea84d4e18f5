// Package notifier formats grade changes into a human-readable message and
// posts it through a pluggable transport.
//
// The Notifier interface has a Telegram implementation for real delivery and
// a dry-run implementation that prints to stdout instead.
package notifier
