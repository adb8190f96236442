package app

import (
	"errors"
	"fmt"

	"github.com/fernwood-labs/habitlens/internal/analyzer"
	"github.com/fernwood-labs/habitlens/internal/config"
	"github.com/fernwood-labs/habitlens/internal/output"
	"github.com/fernwood-labs/habitlens/internal/store"
)

// setup loads config and applies output preferences.
func setup() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	switch {
	case flagNoColor, !cfg.Output.Color:
		output.SetNoColor(true)
	default:
		output.AutoDetect()
	}
	return cfg, nil
}

// openDB opens the completion store.
func openDB(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// renderInsufficientData prints the friendly "keep logging" notice for
// an InsufficientDataError and reports whether it handled the error.
// Thin history is an expected state, not a command failure.
func renderInsufficientData(err error) bool {
	var insufficient *analyzer.InsufficientDataError
	if !errors.As(err, &insufficient) {
		return false
	}
	fmt.Printf(" %s\n",
		output.StyleMuted.Render(fmt.Sprintf(
			"Not enough history yet — this analysis needs at least %d records. Keep logging!",
			insufficient.Required)))
	return true
}

// parsePeriod validates a trend period flag value.
func parsePeriod(s string) (analyzer.TrendPeriod, error) {
	switch analyzer.TrendPeriod(s) {
	case analyzer.Trend4Weeks, analyzer.Trend3Months, analyzer.Trend6Months, analyzer.Trend1Year:
		return analyzer.TrendPeriod(s), nil
	}
	return "", fmt.Errorf("invalid period %q (choose 4W, 3M, 6M, or 1Y)", s)
}

// requireHabit fetches a habit by ID, failing with a helpful message
// when it does not exist.
func requireHabit(db *store.DB, id string) (*store.Habit, error) {
	h, err := db.GetHabit(id)
	if err != nil {
		return nil, fmt.Errorf("loading habit: %w", err)
	}
	if h == nil {
		return nil, fmt.Errorf("unknown habit %q — record a completion with 'habitlens log %s' first", id, id)
	}
	return h, nil
}
