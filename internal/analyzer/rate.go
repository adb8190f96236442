package analyzer

import (
	"math"
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// CompletionRate computes the percentage of days in [start, end]
// (inclusive) on which a completed record exists. Records with
// malformed date keys are skipped; an invalid range or a NaN result is
// a CalculationError.
func CompletionRate(records []habit.CompletionRecord, start, end time.Time) (float64, error) {
	if start.IsZero() || end.IsZero() {
		return 0, calcErrorf("invalid date range: zero start or end")
	}

	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0, calcErrorf("invalid date range: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	totalDays := daysBetween(start, end) + 1

	completed := 0
	for _, r := range records {
		day := r.Day()
		if day.IsZero() {
			continue // malformed date key, skip without aborting
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		if r.Completed() {
			completed++
		}
	}

	rate := float64(completed) / float64(totalDays) * 100
	if math.IsNaN(rate) {
		return 0, calcErrorf("completion rate is NaN (%d completed over %d days)", completed, totalDays)
	}

	return clampRate(rate), nil
}

// truncateDay normalizes a time to midnight UTC of its calendar date,
// so day arithmetic and range checks are timezone- and DST-free.
// Record date keys parse to midnight UTC already.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b (both truncated).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// clampRate bounds a percentage to [0, 100].
func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
