package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/habit"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights <habit-id>",
	Short: "Behavioral insights with confidence scores",
	Long: `Run the pattern detectors over your completion history: weekday
patterns, time-of-day concentration, weekend behavior, and early-day
timing. Each insight carries a confidence level based on sample size
and effect strength.`,
	Args: cobra.ExactArgs(1),
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
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

	insights := habitInsights(records)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(insights)
	}

	renderInsights(h.Name, insights, len(records))
	return nil
}

// habitInsights computes the stats an insight run needs and generates
// insights. When history is too thin for the weekday analysis the
// generator's own record gate returns empty anyway, so zero stats are
// safe to pass.
func habitInsights(records []habit.CompletionRecord) []analyzer.Insight {
	stats, err := analyzer.DayOfWeek(records)
	if err != nil {
		stats = analyzer.DayOfWeekStats{Days: map[string]analyzer.DayStats{}}
	}
	return analyzer.GenerateInsights(records, stats, analyzer.TimeOfDay(records))
}

func renderInsights(name string, insights []analyzer.Insight, recordCount int) {
	fmt.Println(output.Section(name + " — insights"))

	if len(insights) == 0 {
		if recordCount < 28 {
			fmt.Printf(" %s\n\n", output.StyleMuted.Render(fmt.Sprintf(
				"Not enough history yet — insights need at least 28 records, you have %d", recordCount)))
		} else {
			fmt.Printf(" %s\n\n", output.StyleMuted.Render("No strong patterns detected — your routine looks steady"))
		}
		return
	}

	for _, in := range insights {
		fmt.Printf(" %s %s\n", confidenceBadge(in.Confidence), in.Message)
		if in.Recommendation != "" {
			fmt.Printf("   %s %s\n", output.StyleMuted.Render("→"), in.Recommendation)
		}
		fmt.Printf("   %s\n", output.StyleMuted.Render(fmt.Sprintf("based on %d records", in.DataSupport)))
	}
	fmt.Println()
}

// confidenceBadge renders a colored confidence tag.
func confidenceBadge(level analyzer.ConfidenceLevel) string {
	switch level {
	case analyzer.ConfidenceHigh:
		return output.StyleSuccess.Render("[high]")
	case analyzer.ConfidenceMedium:
		return output.StyleWarning.Render("[medium]")
	default:
		return output.StyleMuted.Render("[low]")
	}
}
