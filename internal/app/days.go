package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days <habit-id>",
	Short: "Weekday breakdown with best and worst days",
	Args:  cobra.ExactArgs(1),
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
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

	records, err := db.GetCompletions(h.ID)
	if err != nil {
		return fmt.Errorf("loading completions: %w", err)
	}

	stats, err := analyzer.DayOfWeek(records)
	if err != nil {
		if renderInsufficientData(err) {
			return nil
		}
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	renderDayOfWeek(h.Name, stats)
	return nil
}

func renderDayOfWeek(name string, stats analyzer.DayOfWeekStats) {
	fmt.Println(output.Section(name + " — by weekday"))

	table := output.NewTable("Day", "Rate", "Done", "Scheduled")
	for _, day := range analyzer.Weekdays {
		d := stats.Days[day]
		table.AddRow(
			titleCase(day),
			fmt.Sprintf("%.0f%%", d.CompletionRate),
			fmt.Sprintf("%d", d.TotalCompletions),
			fmt.Sprintf("%d", d.TotalScheduled),
		)
	}
	table.Print()

	fmt.Printf("\n %s %s\n",
		output.StyleLabel.Render("Best day"),
		output.StyleSuccess.Render(titleCase(stats.BestDay)))
	fmt.Printf(" %s %s\n\n",
		output.StyleLabel.Render("Worst day"),
		output.StyleError.Render(titleCase(stats.WorstDay)))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
