package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours <habit-id>",
	Short: "Hour-of-day distribution and reminder suggestions",
	Long: `Bucket timed completions by hour of day, rank the peak hours, and
suggest reminder times one hour ahead of each peak.`,
	Args: cobra.ExactArgs(1),
	RunE: runHours,
}

func init() {
	rootCmd.AddCommand(hoursCmd)
}

func runHours(cmd *cobra.Command, args []string) error {
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

	dist := analyzer.TimeOfDay(records)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dist)
	}

	renderHours(h.Name, dist, cfg.MinHourSamples)
	return nil
}

func renderHours(name string, dist analyzer.TimeDistribution, minSamples int) {
	fmt.Println(output.Section(name + " — by hour"))

	total, max := 0, 0
	for _, count := range dist.HourlyDistribution {
		total += count
		if count > max {
			max = count
		}
	}

	if total == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No timed completions yet — log with --at to build this view"))
		return
	}

	for hour := 0; hour < 24; hour++ {
		count := dist.HourlyDistribution[hour]
		if count == 0 {
			continue
		}
		fmt.Printf(" %s %s %s\n",
			output.StyleMuted.Render(fmt.Sprintf("%02d:00", hour)),
			output.Bar(float64(count), float64(max), 20),
			output.StyleValue.Render(fmt.Sprintf("%d", count)))
	}

	if len(dist.PeakHours) > 0 {
		fmt.Printf("\n %s", output.StyleLabel.Render("Peak hours"))
		for _, hour := range dist.PeakHours {
			fmt.Printf(" %s", output.StyleSuccess.Render(fmt.Sprintf("%02d:00", hour)))
		}
		fmt.Println()
	}
	if len(dist.OptimalReminderTimes) > 0 {
		fmt.Printf(" %s", output.StyleLabel.Render("Suggested reminders"))
		for _, hour := range dist.OptimalReminderTimes {
			fmt.Printf(" %s", output.StyleValue.Render(fmt.Sprintf("%02d:00", hour)))
		}
		fmt.Println()
	}

	if total < minSamples {
		fmt.Printf("\n %s\n",
			output.StyleWarning.Render(fmt.Sprintf(
				"Only %d timed completions — the distribution is still thin", total)))
	}
	fmt.Println()
}
