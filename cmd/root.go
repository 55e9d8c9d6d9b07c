package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/config"
	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/logging"
	"github.com/ramanasai/tempo/internal/notify"
	"github.com/ramanasai/tempo/internal/schedule"
	"github.com/ramanasai/tempo/internal/utils"
	"github.com/ramanasai/tempo/internal/version"
)

var (
	cfgFile  string
	logLevel string

	cfg          = config.Default()
	logger       = logging.Discard()
	logCloser    io.Closer
	stopReminder context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:               "tempo",
	Short:             "Personal time logging",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and releases the log file afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if stopReminder != nil {
		stopReminder()
	}
	if logCloser != nil {
		err = errors.Join(err, logCloser.Close())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/tempo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")

	rootCmd.AddCommand(logCmd, listCmd, editCmd, startCmd, stopCmd, summaryCmd, remindCmd, tuiCmd, versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	dir, err := db.DataDir()
	if err != nil {
		return err
	}
	l, closer, err := logging.Open(dir, logging.ParseLevel(level))
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	slog.SetDefault(logger)
	logger.Debug("command start", "cmd", cmd.CommandPath(), "version", version.Short(), "config", cfg.Path())

	if wantsReminder(cmd, cfg) {
		ctx, cancel := context.WithCancel(context.Background())
		stopReminder = cancel
		go schedule.RunConfigured(ctx, cfg, remind)
	}
	return nil
}

// annotationReminder marks commands that stay open long enough for the
// daily reminder to matter.
const annotationReminder = "tempo/reminder"

func wantsReminder(cmd *cobra.Command, cfg config.Config) bool {
	return cfg.Reminder.Enabled &&
		cmd.Annotations[annotationReminder] == "true" &&
		os.Getenv("TEMPO_NO_REMINDER") != "1"
}

// remind posts the daily prompt with the number of entries logged today.
func remind() {
	logged, err := countToday(context.Background())
	if err != nil {
		logger.Warn("reminder count", "err", err)
	}
	title, msg := notify.FormatDailyPrompt(logged)
	if err := notify.Info(title, msg); err != nil {
		logger.Warn("reminder notify", "err", err)
	}
}

func countToday(ctx context.Context) (int, error) {
	dbh, err := db.Open()
	if err != nil {
		return 0, err
	}
	defer dbh.Close()

	loc := cfg.Location()
	today, err := utils.ParseDay("today", time.Now(), loc)
	if err != nil {
		return 0, err
	}
	from, to := utils.DayRange(today)
	entries, err := db.ListEntries(ctx, dbh, from, to)
	return len(entries), err
}
