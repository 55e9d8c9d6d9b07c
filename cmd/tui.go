package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/ui"
)

// tuiCmd launches the day timeline.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the day timeline",
	Annotations: map[string]string{
		annotationReminder: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()
		return ui.Run(dbh, cfg, logger)
	},
}
