package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/clock"
	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/notify"
)

var (
	editText     string
	editCategory string
	editProject  string
	editTags     string
	editWhen     whenFlags
)

var editCmd = &cobra.Command{
	Use:   "edit [entry-id]",
	Short: "Edit an existing log entry",
	Example: `  tempo edit 12 -m "new text"
  tempo edit 12 --at 14:05
  tempo edit 12 --pick`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}

		var u db.EntryUpdate
		flags := cmd.Flags()
		if flags.Changed("text") {
			u.Text = &editText
		}
		if flags.Changed("category") {
			if !db.ValidCategory(editCategory) {
				return fmt.Errorf("invalid category %q (valid: %s)", editCategory, strings.Join(db.Categories, ", "))
			}
			u.Category = &editCategory
		}
		if flags.Changed("project") {
			u.Project = &editProject
		}
		if flags.Changed("tags") {
			u.Tags = &editTags
		}
		if u.Empty() && !editWhen.set() {
			return fmt.Errorf("nothing to update - specify at least one field to edit")
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		e, err := db.GetEntry(cmd.Context(), dbh, id)
		if err != nil {
			return err
		}

		from := clock.FromTime(e.At.In(cfg.Location()))
		if editWhen.set() {
			to, err := editWhen.value(fmt.Sprintf("Retime entry #%d", id), from)
			if errors.Is(err, errCancelled) {
				fmt.Println("Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			at := to.Time()
			u.At = &at
		}

		if err := db.UpdateEntry(cmd.Context(), dbh, id, u); err != nil {
			return err
		}

		if u.At != nil {
			to := clock.FromTime(u.At.In(cfg.Location()))
			title, msg := notify.FormatRetimed(id, from.Format(), to.Format())
			logger.Info("entry retimed", "id", id, "from", from.Format(), "to", to.Format())
			fmt.Println(msg)
			if err := notify.Info(title, msg); err != nil {
				logger.Debug("notify", "err", err)
			}
			return nil
		}
		fmt.Printf("Entry %d updated successfully.\n", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editText, "text", "m", "", "New text/content for the entry")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category: note|task|meeting|timer")
	editCmd.Flags().StringVarP(&editProject, "project", "p", "", "New project name")
	editCmd.Flags().StringVarP(&editTags, "tags", "t", "", "New comma-separated tags")
	editWhen.register(editCmd, "new entry time", false)
}
