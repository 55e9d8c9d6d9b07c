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
	category string
	project  string
	tags     string
	logWhen  whenFlags
)

var logCmd = &cobra.Command{
	Use:   "log [text]",
	Short: "Add a log entry, now or at a chosen time",
	Example: `  tempo log "fixed flaky test"
  tempo log --at 09:30 -c meeting standup
  tempo log --day yesterday --pick "code review"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !db.ValidCategory(category) {
			return fmt.Errorf("invalid category %q (valid: %s)", category, strings.Join(db.Categories, ", "))
		}
		at, err := logWhen.resolve("Log entry at", time.Now())
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

		id, err := db.InsertEntry(cmd.Context(), dbh, db.Entry{
			At:       at,
			Category: category,
			Text:     strings.Join(args, " "),
			Project:  project,
			Tags:     tags,
		})
		if err != nil {
			return err
		}
		logger.Info("entry logged", "id", id, "at", at)
		fmt.Printf("Saved #%d at %s.\n", id, at.In(cfg.Location()).Format("Mon 15:04"))
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&category, "category", "c", "note", "Category: note|task|meeting|timer")
	logCmd.Flags().StringVarP(&project, "project", "p", "", "Project name")
	logCmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma separated tags")
	logWhen.register(logCmd, "entry time", true)
}
