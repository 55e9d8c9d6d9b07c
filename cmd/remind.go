package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/schedule"
)

var (
	remindWhen whenFlags
	remindOff  bool
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show or change the daily reminder time",
	Example: `  tempo remind
  tempo remind --at 17:30
  tempo remind --pick`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if remindOff {
			cfg.Reminder.Enabled = false
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Println("Daily reminder disabled.")
			return nil
		}

		if !remindWhen.set() {
			printReminder(time.Now())
			return nil
		}

		v, err := remindWhen.value("Daily reminder at", schedule.ReminderTime(cfg))
		if errors.Is(err, errCancelled) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		if v.Hour > 23 || v.Minute > 59 {
			return fmt.Errorf("reminder time %s is not a valid time of day", v.Format())
		}

		cfg.Reminder.Time = v.Format()
		cfg.Reminder.Enabled = true
		if err := cfg.Save(); err != nil {
			return err
		}
		logger.Info("reminder set", "time", cfg.Reminder.Time, "config", cfg.Path())
		printReminder(time.Now())
		return nil
	},
}

func printReminder(now time.Time) {
	if !cfg.Reminder.Enabled {
		fmt.Printf("Daily reminder is off (time %s).\n", schedule.ReminderTime(cfg).Format())
		return
	}
	next := schedule.NextAt(now, cfg)
	fmt.Printf("Daily reminder at %s, next %s.\n",
		schedule.ReminderTime(cfg).Format(), next.In(cfg.Location()).Format("Mon Jan 2 15:04"))
}

func init() {
	remindWhen.register(remindCmd, "reminder time", false)
	remindCmd.Flags().BoolVar(&remindOff, "off", false, "Disable the daily reminder")
	remindCmd.MarkFlagsMutuallyExclusive("off", "at")
	remindCmd.MarkFlagsMutuallyExclusive("off", "pick")
}
