package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/db"
)

var (
	startProject string
	startTags    string
	allowMulti   bool
	startWhen    whenFlags
)

// startCmd begins a new active timer entry. By default it enforces a single active timer.
var startCmd = &cobra.Command{
	Use:   "start [text]",
	Short: "Start a timer",
	Example: `  tempo start "deep work"
  tempo start --at 08:45 "forgot to start this"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := startWhen.resolve("Timer started at", time.Now())
		if errors.Is(err, errCancelled) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		if !allowMulti {
			n, err := db.CountActiveTimers(cmd.Context(), dbh)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("an active timer already exists (use --allow-multiple to override)")
			}
		}

		id, err := db.StartTimer(cmd.Context(), dbh, strings.Join(args, " "), startProject, startTags, at)
		if err != nil {
			return err
		}
		logger.Info("timer started", "id", id, "at", at)
		fmt.Printf("Timer #%d started at %s\n", id, at.In(cfg.Location()).Format("15:04"))
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startProject, "project", "p", "", "Project name")
	startCmd.Flags().StringVarP(&startTags, "tags", "t", "", "Additional comma separated tags")
	startCmd.Flags().BoolVar(&allowMulti, "allow-multiple", false, "Allow multiple concurrent active timers")
	startWhen.register(startCmd, "start time", true)
}
