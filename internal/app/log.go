package app

import (
	"fmt"
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/spf13/cobra"
)

var (
	logName     string
	logDate     string
	logAt       string
	logStatus   string
	logMissed   bool
	logProgress float64
)

var logCmd = &cobra.Command{
	Use:   "log <habit-id>",
	Short: "Record a habit completion",
	Long: `Record one completion observation for a habit. Defaults to a completed
entry for today; use --missed or --status for anything else, --at to
capture the time of day, and --progress for count or duration habits.`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logName, "name", "", "Habit display name (defaults to the habit ID)")
	logCmd.Flags().StringVar(&logDate, "date", "", "Scheduled day, YYYY-MM-DD (default: today)")
	logCmd.Flags().StringVar(&logAt, "at", "", "Completion timestamp, RFC3339 (default: now when completed)")
	logCmd.Flags().StringVar(&logStatus, "status", "", "Record a status marker instead of an explicit flag")
	logCmd.Flags().BoolVar(&logMissed, "missed", false, "Record the day as missed")
	logCmd.Flags().Float64Var(&logProgress, "progress", 0, "Progress magnitude for count/duration habits")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	habitID := args[0]
	now := time.Now()

	dateKey := habit.DayKey(now)
	if logDate != "" {
		if habit.ParseDay(logDate).IsZero() {
			return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", logDate)
		}
		dateKey = logDate
	}

	rec := habit.CompletionRecord{
		HabitID: habitID,
		DateKey: dateKey,
	}

	// A --status entry keeps the legacy representation; otherwise the
	// explicit flag is set.
	if logStatus != "" {
		rec.Status = logStatus
	} else {
		completed := !logMissed
		rec.IsCompleted = &completed
	}

	if logAt != "" {
		if habit.ParseTimestamp(logAt).IsZero() {
			return fmt.Errorf("invalid --at %q (want RFC3339)", logAt)
		}
		rec.CompletedAt = logAt
	} else if rec.Completed() && logDate == "" {
		rec.CompletedAt = now.Format(time.RFC3339)
	}

	if cmd.Flags().Changed("progress") {
		rec.Progress = &logProgress
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	name := logName
	if name == "" {
		if existing, err := db.GetHabit(habitID); err == nil && existing != nil {
			name = existing.Name
		} else {
			name = habitID
		}
	}
	if err := db.UpsertHabit(habitID, name); err != nil {
		return fmt.Errorf("saving habit: %w", err)
	}
	if err := db.InsertCompletion(rec); err != nil {
		return fmt.Errorf("saving completion: %w", err)
	}

	state := output.StyleSuccess.Render("completed")
	if !rec.Completed() {
		state = output.StyleError.Render("missed")
	}
	fmt.Printf("Logged %s as %s on %s\n", habitID, state, dateKey)
	return nil
}
