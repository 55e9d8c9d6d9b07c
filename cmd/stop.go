package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/notify"
)

var (
	stopID   int64
	stopNote string
	stopWhen whenFlags
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop an active timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		e, err := db.ActiveTimer(cmd.Context(), dbh, stopID)
		if errors.Is(err, db.ErrNoActiveTimer) {
			return fmt.Errorf("no active timers")
		}
		if err != nil {
			return err
		}

		end, err := stopWhen.resolve(fmt.Sprintf("Stop timer #%d at", e.ID), time.Now())
		if errors.Is(err, errCancelled) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		if end.Before(e.At) {
			return fmt.Errorf("stop time %s is before the timer started (%s)",
				end.In(cfg.Location()).Format("15:04"), e.At.In(cfg.Location()).Format("15:04"))
		}

		mins, err := db.StopTimer(cmd.Context(), dbh, e, end, stopNote)
		if err != nil {
			return err
		}

		msg := fmt.Sprintf("Timer #%d stopped: %d minutes", e.ID, mins)
		logger.Info("timer stopped", "id", e.ID, "minutes", mins)
		fmt.Println(msg)
		if err := notify.Done(msg); err != nil {
			logger.Debug("notify", "err", err)
		}
		return nil
	},
}

func init() {
	stopCmd.Flags().Int64VarP(&stopID, "id", "i", 0, "Specific timer id to stop")
	stopCmd.Flags().StringVarP(&stopNote, "note", "n", "", "Optional note to append when stopping")
	stopWhen.register(stopCmd, "stop time", true)
}
