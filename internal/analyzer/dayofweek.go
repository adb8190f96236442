package analyzer

import (
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// Weekdays is the fixed Monday-to-Sunday iteration order. Best/worst
// day tie-breaks depend on this order, so consumers must not iterate
// the Days map directly.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// MinDayOfWeekRecords is the sample gate for weekday analysis: four
// observations of each weekday.
const MinDayOfWeekRecords = 28

// DayOfWeek buckets completion history by weekday and finds the best
// and worst performing days. Requires MinDayOfWeekRecords records.
func DayOfWeek(records []habit.CompletionRecord) (DayOfWeekStats, error) {
	if len(records) < MinDayOfWeekRecords {
		return DayOfWeekStats{}, &InsufficientDataError{Required: MinDayOfWeekRecords}
	}

	type bucket struct {
		scheduled int
		completed int
	}
	buckets := make(map[string]*bucket, len(Weekdays))
	for _, day := range Weekdays {
		buckets[day] = &bucket{}
	}

	for _, r := range records {
		day := r.Day()
		if day.IsZero() {
			continue
		}
		b := buckets[weekdayName(day.Weekday())]
		b.scheduled++
		if r.Completed() {
			b.completed++
		}
	}

	stats := DayOfWeekStats{Days: make(map[string]DayStats, len(Weekdays))}
	for _, day := range Weekdays {
		b := buckets[day]
		rate := 0.0
		if b.scheduled > 0 {
			rate = float64(b.completed) / float64(b.scheduled) * 100
		}
		stats.Days[day] = DayStats{
			CompletionRate:   rate,
			TotalCompletions: b.completed,
			TotalScheduled:   b.scheduled,
		}
	}

	stats.BestDay, stats.WorstDay = extremeDays(stats.Days)
	return stats, nil
}

// extremeDays scans Monday to Sunday for the highest and lowest rates
// among days with scheduled records. Strict comparisons mean the first
// day at an extreme wins ties; with no scheduled days at all, both
// default to Monday.
func extremeDays(days map[string]DayStats) (best, worst string) {
	best, worst = "monday", "monday"
	bestRate, worstRate := -1.0, 101.0

	for _, day := range Weekdays {
		d := days[day]
		if d.TotalScheduled == 0 {
			continue
		}
		if d.CompletionRate > bestRate {
			bestRate = d.CompletionRate
			best = day
		}
		if d.CompletionRate < worstRate {
			worstRate = d.CompletionRate
			worst = day
		}
	}
	return best, worst
}

func weekdayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
