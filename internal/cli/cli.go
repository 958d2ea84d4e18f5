package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pmoret/gaps-notify/internal/config"
	"github.com/pmoret/gaps-notify/internal/gaps"
	"github.com/pmoret/gaps-notify/internal/grades"
	"github.com/pmoret/gaps-notify/internal/logger"
	"github.com/pmoret/gaps-notify/internal/notifier"
	"github.com/pmoret/gaps-notify/internal/report"
	"github.com/pmoret/gaps-notify/internal/snapshot"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewGrades = 2
)

var (
	flagDataDir string
	flagDryRun  bool
	flagRefresh bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaps-notify",
		Short: "Check GAPS for newly-published grades",
		Long: `A run-once tool that fetches the GAPS grade report, compares it against
the previous run and sends a Telegram message for anything new. Intended to be
invoked from cron or a systemd timer.`,
		SilenceUsage: true,
		RunE:         runCheck,
	}

	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.local/share/gaps-notify", "Data directory for the grade snapshot")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the notification instead of sending it")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Rebuild the snapshot without sending notifications")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCheck is the main command logic: fetch, extract, diff, notify.
func runCheck(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !flagDryRun && !flagRefresh {
		if err := cfg.RequireTelegram(); err != nil {
			return err
		}
	}

	store, err := snapshot.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing snapshot store: %w", err)
	}
	logger.Debug("Snapshot store ready", logger.Fields{"path": store.Path()})

	client, err := gaps.NewClient(cfg.GapsUsername, cfg.GapsPassword)
	if err != nil {
		return fmt.Errorf("initializing portal client: %w", err)
	}

	raw, err := client.FetchReport(cmd.Context())
	if err != nil {
		return fmt.Errorf("retrieving grades: %w", err)
	}
	logger.Info("Grades retrieved successfully", nil)

	courses, err := report.Extract(raw)
	if err != nil {
		return fmt.Errorf("parsing grades: %w", err)
	}
	logger.Debug("Report parsed", logger.Fields{"courses": len(courses)})

	changes, err := grades.Run(store, courses)
	if err != nil {
		// A failed write does not suppress the changes already computed:
		// the notification is still delivered, the error still reported.
		// With nothing to deliver there is nothing to salvage.
		if !errors.Is(err, grades.ErrSnapshotWrite) || flagRefresh || len(changes) == 0 {
			return err
		}
		logger.Error("Snapshot was not persisted", logger.Fields{"path": store.Path()}, err)
	}
	logger.Info("Grade differences computed successfully", logger.Fields{"changes": len(changes)})

	if flagRefresh {
		fmt.Println("Snapshot refreshed successfully.")
		os.Exit(ExitSuccess)
		return nil
	}

	if len(changes) == 0 {
		logger.Info("No new grades found", nil)
		os.Exit(ExitSuccess)
		return nil
	}

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		n, err = notifier.NewTelegramNotifier(cfg.BotToken, cfg.ChatID)
		if err != nil {
			return err
		}
	}

	// Delivery is best-effort: a transport failure is logged, not fatal.
	if err := n.Notify(changes); err != nil {
		logger.Warn("Notification was not delivered", logger.Fields{"error": err.Error()})
	} else {
		logger.Info("Notification sent", logger.Fields{"changes": len(changes)})
	}

	os.Exit(ExitNewGrades)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("Run failed", nil, err)
		os.Exit(ExitError)
	}
}
