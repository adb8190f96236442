package analyzer

import (
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// trendWindow fixes the shape of one trend period: how far back the
// current window reaches, where the comparison window starts, and the
// minimum record count required for a meaningful result.
type trendWindow struct {
	start      func(now time.Time) time.Time // current window start
	comparison func(now time.Time) time.Time // comparison window start
	minRecords int
}

var trendWindows = map[TrendPeriod]trendWindow{
	Trend4Weeks: {
		start:      func(now time.Time) time.Time { return now.AddDate(0, 0, -28) },
		comparison: func(now time.Time) time.Time { return now.AddDate(0, 0, -56) },
		minRecords: 7,
	},
	Trend3Months: {
		start:      func(now time.Time) time.Time { return now.AddDate(0, -3, 0) },
		comparison: func(now time.Time) time.Time { return now.AddDate(0, -6, 0) },
		minRecords: 14,
	},
	Trend6Months: {
		start:      func(now time.Time) time.Time { return now.AddDate(0, -6, 0) },
		comparison: func(now time.Time) time.Time { return now.AddDate(0, -12, 0) },
		minRecords: 30,
	},
	Trend1Year: {
		start:      func(now time.Time) time.Time { return now.AddDate(-1, 0, 0) },
		comparison: func(now time.Time) time.Time { return now.AddDate(-2, 0, 0) },
		minRecords: 60,
	},
}

// stableBand is the ±percentage-change band treated as no movement.
const stableBand = 5.0

// Trend computes the completion trend for one period. now is the
// reference time for all window math so a single call is internally
// consistent and tests are clock-free; callers normally pass time.Now().
//
// Returns InsufficientDataError when the current window holds fewer
// records than the period's minimum. An empty comparison window is not
// an error: absence of older history is valid and yields a previous
// rate of zero.
func Trend(records []habit.CompletionRecord, period TrendPeriod, now time.Time) (TrendData, error) {
	w, ok := trendWindows[period]
	if !ok {
		return TrendData{}, calcErrorf("unknown trend period %q", period)
	}

	now = truncateDay(now)
	windowStart := truncateDay(w.start(now))
	comparisonStart := truncateDay(w.comparison(now))

	current := filterRange(records, windowStart, now)
	if len(current) < w.minRecords {
		return TrendData{}, &InsufficientDataError{Required: w.minRecords}
	}

	completionRate, err := CompletionRate(current, windowStart, now)
	if err != nil {
		return TrendData{}, err
	}

	// Previous window ends the day before the current one starts.
	previous := filterRange(records, comparisonStart, windowStart.AddDate(0, 0, -1))
	previousRate := 0.0
	if len(previous) > 0 {
		previousRate, err = CompletionRate(previous, comparisonStart, windowStart.AddDate(0, 0, -1))
		if err != nil {
			return TrendData{}, err
		}
	}

	change := percentageChange(completionRate, previousRate)

	return TrendData{
		Period:           period,
		CompletionRate:   completionRate,
		AverageProgress:  averageProgress(current, windowStart, now),
		PercentageChange: change,
		Direction:        classifyDirection(change),
		DataPoints:       buildDataPoints(current, windowStart, now),
	}, nil
}

// percentageChange computes the relative change from previous to
// current. With no previous signal, any current activity counts as a
// 100% improvement and none as flat.
func percentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func classifyDirection(change float64) Direction {
	switch {
	case change > stableBand:
		return DirectionUp
	case change < -stableBand:
		return DirectionDown
	default:
		return DirectionStable
	}
}

// averageProgress sums progress values in the window and divides by the
// calendar days spanned, giving an average-per-day figure. Returns nil
// when no record carries progress.
func averageProgress(records []habit.CompletionRecord, start, end time.Time) *float64 {
	sum := 0.0
	seen := false
	for _, r := range records {
		if r.Progress == nil {
			continue
		}
		sum += *r.Progress
		seen = true
	}
	if !seen {
		return nil
	}

	days := daysBetween(start, end) + 1
	avg := sum / float64(days)
	return &avg
}

// buildDataPoints materializes one binary point per calendar day of the
// window, so callers can range over the series repeatedly.
func buildDataPoints(records []habit.CompletionRecord, start, end time.Time) []DataPoint {
	completedDays := make(map[string]bool, len(records))
	for _, r := range records {
		if r.Completed() && !r.Day().IsZero() {
			completedDays[r.DateKey] = true
		}
	}

	points := make([]DataPoint, 0, daysBetween(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := habit.DayKey(day)
		value := 0
		if completedDays[key] {
			value = 1
		}
		points = append(points, DataPoint{Date: key, Value: value})
	}
	return points
}

// filterRange keeps records whose date key falls within [start, end]
// inclusive, silently skipping malformed keys.
func filterRange(records []habit.CompletionRecord, start, end time.Time) []habit.CompletionRecord {
	var filtered []habit.CompletionRecord
	for _, r := range records {
		day := r.Day()
		if day.IsZero() {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
