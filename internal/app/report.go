package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var reportPeriod string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Trends and insights for every habit",
	Long: `Analyze every tracked habit in one pass: the completion trend for the
chosen period plus any behavioral insights. Habits are analyzed
concurrently and rendered in name order.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "", "Trend period: 4W, 3M, 6M, or 1Y (default from config)")
	rootCmd.AddCommand(reportCmd)
}

// habitReport is one habit's slice of the full report. Trend is nil
// when the habit's history is too thin for the chosen period.
type habitReport struct {
	HabitID     string              `json:"habitId"`
	Name        string              `json:"name"`
	RecordCount int                 `json:"recordCount"`
	Trend       *analyzer.TrendData `json:"trend,omitempty"`
	Insights    []analyzer.Insight  `json:"insights"`
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	periodFlag := reportPeriod
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

	habits, err := db.ListHabits()
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Printf(" %s\n", output.StyleMuted.Render("No habits tracked yet — start with 'habitlens log <habit-id>'"))
		return nil
	}

	// One analysis goroutine per habit, results slotted by index so the
	// rendered order stays ListHabits order regardless of completion order.
	now := time.Now()
	reports := make([]habitReport, len(habits))
	var g errgroup.Group
	g.SetLimit(4)
	for i, h := range habits {
		i, h := i, h
		g.Go(func() error {
			records, err := db.GetCompletions(h.ID)
			if err != nil {
				return fmt.Errorf("loading completions for %s: %w", h.ID, err)
			}

			rep := habitReport{
				HabitID:     h.ID,
				Name:        h.Name,
				RecordCount: len(records),
				Insights:    habitInsights(records),
			}

			trend, err := analyzer.Trend(records, period, now)
			switch {
			case err == nil:
				rep.Trend = &trend
			case !isInsufficientData(err):
				return fmt.Errorf("analyzing %s: %w", h.ID, err)
			}

			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	renderReport(reports, period)
	return nil
}

func isInsufficientData(err error) bool {
	var insufficient *analyzer.InsufficientDataError
	return errors.As(err, &insufficient)
}

func renderReport(reports []habitReport, period analyzer.TrendPeriod) {
	fmt.Println(output.Section(fmt.Sprintf("Habit report — %s", period)))

	table := output.NewTable("Habit", "Rate", "Change", "Insights")
	for _, rep := range reports {
		rate, change := "—", "—"
		if rep.Trend != nil {
			rate = fmt.Sprintf("%.0f%%", rep.Trend.CompletionRate)
			change = fmt.Sprintf("%+.1f%%", rep.Trend.PercentageChange)
		}
		table.AddRow(rep.Name, rate, change, fmt.Sprintf("%d", len(rep.Insights)))
	}
	table.Print()

	for _, rep := range reports {
		if len(rep.Insights) == 0 {
			continue
		}
		fmt.Printf("\n %s\n", output.StyleLabel.Render(rep.Name))
		for _, in := range rep.Insights {
			fmt.Printf("  %s %s\n", confidenceBadge(in.Confidence), in.Message)
		}
	}
	fmt.Println()
}
