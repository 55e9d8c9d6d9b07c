package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/utils"
)

var (
	listDay     string
	listNoColor bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of one day",
	Example: `  tempo list
  tempo list --day yesterday
  tempo list --day 2025-01-15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := cfg.Location()
		day, err := utils.ParseDay(listDay, time.Now(), loc)
		if err != nil {
			return fmt.Errorf("invalid --day %q: %w", listDay, err)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		from, to := utils.DayRange(day)
		entries, err := db.ListEntries(cmd.Context(), dbh, from, to)
		if err != nil {
			return err
		}
		fmt.Print(renderList(day, entries, loc, !listNoColor))
		return nil
	},
}

func renderList(day time.Time, entries []db.Entry, loc *time.Location, color bool) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	meta := lipgloss.NewStyle().Faint(true)
	proj := lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	if !color {
		title, meta, proj = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	var b strings.Builder
	b.WriteString(title.Render(day.Format("Mon Jan 2, 2006")))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(meta.Render("  no entries"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %-7s", e.At.In(loc).Format("15:04"), e.Category)
		if e.Project != "" {
			line += " " + proj.Render("["+e.Project+"]")
		}
		line += " " + strings.SplitN(e.Text, "\n", 2)[0]
		switch {
		case e.Active():
			line += " " + meta.Render("(running)")
		case e.DurationMinutes.Valid:
			line += " " + meta.Render(fmt.Sprintf("(%dm)", e.DurationMinutes.Int64))
		}
		line += " " + meta.Render(fmt.Sprintf("#%d", e.ID))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func init() {
	listCmd.Flags().StringVar(&listDay, "day", "", "Day to list (today, yesterday, 3d, 2006-01-02)")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
}
