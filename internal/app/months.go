package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/habit"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
)

var monthsCmd = &cobra.Command{
	Use:   "months <habit-id>",
	Short: "Current versus previous calendar month",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonths,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	h, err := requireHabit(db, args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := curStart.AddDate(0, -1, 0)
	prevEnd := curStart.AddDate(0, 0, -1)

	current, err := db.GetCompletionsBetween(h.ID, habit.DayKey(curStart), habit.DayKey(now))
	if err != nil {
		return fmt.Errorf("loading current month: %w", err)
	}
	previous, err := db.GetCompletionsBetween(h.ID, habit.DayKey(prevStart), habit.DayKey(prevEnd))
	if err != nil {
		return fmt.Errorf("loading previous month: %w", err)
	}

	comparison := analyzer.CompareMonths(current, previous)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(comparison)
	}

	renderMonths(h.Name, comparison)
	return nil
}

func renderMonths(name string, mc analyzer.MonthComparison) {
	fmt.Println(output.Section(name + " — month over month"))

	table := output.NewTable("Month", "Rate", "Done", "Scheduled")
	table.AddRow("current",
		fmt.Sprintf("%.0f%%", mc.CurrentMonth.CompletionRate),
		fmt.Sprintf("%d", mc.CurrentMonth.TotalCompletions),
		fmt.Sprintf("%d", mc.CurrentMonth.TotalScheduled))
	table.AddRow("previous",
		fmt.Sprintf("%.0f%%", mc.PreviousMonth.CompletionRate),
		fmt.Sprintf("%d", mc.PreviousMonth.TotalCompletions),
		fmt.Sprintf("%d", mc.PreviousMonth.TotalScheduled))
	table.Print()

	changeStyle := output.StyleMuted
	if mc.IsSignificant {
		changeStyle = output.StyleSuccess
		if mc.PercentageChange < 0 {
			changeStyle = output.StyleError
		}
	}
	fmt.Printf("\n %s %s",
		output.StyleLabel.Render("Change"),
		changeStyle.Render(fmt.Sprintf("%+.1f%%", mc.PercentageChange)))
	if mc.IsSignificant {
		fmt.Printf(" %s", output.StyleWarning.Render("(significant)"))
	}
	fmt.Println()
	fmt.Println()
}
