package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
)

var trendsPeriod string

var trendsCmd = &cobra.Command{
	Use:   "trends <habit-id>",
	Short: "Completion trend for a period (4W, 3M, 6M, 1Y)",
	Long: `Compute the completion rate over the chosen window, compare it against
the equal-length prior window, and chart the daily series.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().StringVar(&trendsPeriod, "period", "", "Trend period: 4W, 3M, 6M, or 1Y (default from config)")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	periodFlag := trendsPeriod
	if periodFlag == "" {
		periodFlag = cfg.DefaultPeriod
	}
	period, err := parsePeriod(periodFlag)
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

	trend, err := analyzer.Trend(records, period, time.Now())
	if err != nil {
		if renderInsufficientData(err) {
			return nil
		}
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trend)
	}

	renderTrend(h.Name, trend)
	return nil
}

func renderTrend(name string, trend analyzer.TrendData) {
	fmt.Println(output.Section(fmt.Sprintf("%s — %s trend", name, trend.Period)))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Completion rate"),
		output.StyleValue.Render(fmt.Sprintf("%.0f%%", trend.CompletionRate)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("vs. previous window"),
		renderChange(trend.PercentageChange, trend.Direction))
	if trend.AverageProgress != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Avg progress/day"),
			output.StyleValue.Render(fmt.Sprintf("%.1f", *trend.AverageProgress)))
	}

	values := make([]int, len(trend.DataPoints))
	for i, p := range trend.DataPoints {
		values[i] = p.Value
	}
	fmt.Printf("\n %s\n", output.StyleMuted.Render(fmt.Sprintf(
		"Daily series (%s → %s):",
		trend.DataPoints[0].Date, trend.DataPoints[len(trend.DataPoints)-1].Date)))
	fmt.Printf(" %s\n\n", output.Sparkline(values))
}

// renderChange formats a percentage change with a colored direction arrow.
func renderChange(change float64, direction analyzer.Direction) string {
	label := fmt.Sprintf("%+.1f%%", change)
	switch direction {
	case analyzer.DirectionUp:
		return output.StyleSuccess.Render("▲ " + label)
	case analyzer.DirectionDown:
		return output.StyleError.Render("▼ " + label)
	default:
		return output.StyleMuted.Render("● " + label)
	}
}
