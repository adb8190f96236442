// Package app contains the Cobra command tree for habitlens.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "habitlens",
	Short: "Analytics and insights for habit completion history",
	Long: `habitlens analyzes habit completion history: period trends against a
prior window, weekday and hour-of-day breakdowns, month comparisons, and
confidence-scored behavioral insights.

All analysis is computed from your local completion log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("habitlens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  log       Record a habit completion")
		fmt.Println("  import    Bulk-load completion records from JSON")
		fmt.Println("  trends    Completion trend for a period (4W, 3M, 6M, 1Y)")
		fmt.Println("  days      Weekday breakdown with best and worst days")
		fmt.Println("  hours     Hour-of-day distribution and reminder suggestions")
		fmt.Println("  months    Current versus previous calendar month")
		fmt.Println("  insights  Behavioral insights with confidence scores")
		fmt.Println("  report    Trends and insights for every habit")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/habitlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
