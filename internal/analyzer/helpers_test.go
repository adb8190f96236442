package analyzer

import (
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// day builds a UTC date for test fixtures.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// record builds a completed or missed record for a date.
func record(t time.Time, completed bool) habit.CompletionRecord {
	return habit.CompletionRecord{
		DateKey:     habit.DayKey(t),
		IsCompleted: &completed,
	}
}

// timedRecord builds a completed record with a completion timestamp at
// the given hour of its date.
func timedRecord(t time.Time, hour int) habit.CompletionRecord {
	completed := true
	return habit.CompletionRecord{
		DateKey:     habit.DayKey(t),
		CompletedAt: time.Date(t.Year(), t.Month(), t.Day(), hour, 30, 0, 0, time.UTC).Format(time.RFC3339),
		IsCompleted: &completed,
	}
}

// dailyRecords builds one record per day for n days starting at start,
// completed on days where complete returns true.
func dailyRecords(start time.Time, n int, complete func(t time.Time) bool) []habit.CompletionRecord {
	records := make([]habit.CompletionRecord, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		records = append(records, record(d, complete(d)))
	}
	return records
}
