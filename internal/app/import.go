package app

import (
	"fmt"

	"github.com/fernwood-labs/habitlens/internal/habit"
	"github.com/spf13/cobra"
)

var importName string

var importCmd = &cobra.Command{
	Use:   "import <habit-id> <records.json>",
	Short: "Bulk-load completion records from JSON",
	Long: `Load completion records from a JSON file (an array of records, or an
object with a "records" array) into the local store. Records keep
whatever completion representation the file uses — an explicit flag or
a status string.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "Habit display name (defaults to the habit ID)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	habitID, path := args[0], args[1]

	records, err := habit.ReadRecordsFile(path)
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	name := importName
	if name == "" {
		name = habitID
	}
	if err := db.UpsertHabit(habitID, name); err != nil {
		return fmt.Errorf("saving habit: %w", err)
	}

	imported, skipped := 0, 0
	for _, rec := range records {
		if rec.HabitID == "" {
			rec.HabitID = habitID
		}
		if rec.DateKey == "" {
			skipped++
			continue
		}
		if err := db.InsertCompletion(rec); err != nil {
			return fmt.Errorf("saving record for %s: %w", rec.DateKey, err)
		}
		imported++
	}

	fmt.Printf("Imported %d records for %s", imported, habitID)
	if skipped > 0 {
		fmt.Printf(" (%d skipped: missing date key)", skipped)
	}
	fmt.Println()
	return nil
}
