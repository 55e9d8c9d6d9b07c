package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/schedule"
	"github.com/ramanasai/tempo/internal/utils"
)

var (
	summaryDay     string
	summaryDays    int
	summaryNoColor bool
)

// summaryCmd prints tracked time per day against the daily target.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Tracked time per day vs target",
	Example: `  tempo summary
  tempo summary --days 1
  tempo summary --day 2025-01-31 --days 31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if summaryDays < 1 {
			return fmt.Errorf("--days must be at least 1")
		}
		loc := cfg.Location()
		last, err := utils.ParseDay(summaryDay, time.Now(), loc)
		if err != nil {
			return fmt.Errorf("invalid --day %q: %w", summaryDay, err)
		}
		_, to := utils.DayRange(last)
		from := last.AddDate(0, 0, 1-summaryDays)

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		days, err := db.DailyTotals(cmd.Context(), dbh, from, to, loc)
		if err != nil {
			return err
		}
		targets := make([]int, len(days))
		for i, d := range days {
			targets[i] = schedule.TargetMinutes(d.Day, cfg)
		}
		fmt.Print(renderSummary(days, targets, !summaryNoColor))
		return nil
	},
}

// hm formats minutes as H:MM with a sign when negative.
func hm(mins int) string {
	sign := ""
	if mins < 0 {
		sign, mins = "-", -mins
	}
	return fmt.Sprintf("%s%d:%02d", sign, mins/60, mins%60)
}

func renderSummary(days []db.DayTotal, targets []int, color bool) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	meta := lipgloss.NewStyle().Faint(true)
	over := lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	under := lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	if !color {
		title, meta, over, under = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	var b strings.Builder
	b.WriteString(title.Render("Tracked vs target"))
	b.WriteString("\n")

	var total, totalTarget int
	for i, d := range days {
		diff := d.Minutes - targets[i]
		total += d.Minutes
		totalTarget += targets[i]

		diffStyle := over
		diffText := "+" + hm(diff)
		if diff < 0 {
			diffStyle, diffText = under, hm(diff)
		}
		line := fmt.Sprintf("  %s  %6s / %-5s ", d.Day.Format("Mon 2006-01-02"), hm(d.Minutes), hm(targets[i]))
		line += diffStyle.Render(fmt.Sprintf("%7s", diffText))
		line += meta.Render(fmt.Sprintf("  %d entries", d.Entries))
		if cats := breakdown(d.ByCategory); cats != "" {
			line += "  " + meta.Render(cats)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	diff := total - totalTarget
	sign := "+"
	if diff < 0 {
		sign = ""
	}
	b.WriteString(fmt.Sprintf("  %-14s  %6s / %-5s %7s\n", "TOTAL", hm(total), hm(totalTarget), sign+hm(diff)))
	return b.String()
}

func breakdown(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+hm(m[k]))
	}
	return strings.Join(parts, ", ")
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDay, "day", "", "Last day of the report (today, yesterday, 2006-01-02)")
	summaryCmd.Flags().IntVar(&summaryDays, "days", 7, "Number of days ending at --day")
	summaryCmd.Flags().BoolVar(&summaryNoColor, "no-color", false, "Disable colored output")
}
