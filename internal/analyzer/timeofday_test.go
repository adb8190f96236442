package analyzer

import (
	"reflect"
	"testing"
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

func TestTimeOfDay_Empty(t *testing.T) {
	dist := TimeOfDay(nil)

	if len(dist.HourlyDistribution) != 24 {
		t.Fatalf("expected all 24 hourly buckets, got %d", len(dist.HourlyDistribution))
	}
	for hour, count := range dist.HourlyDistribution {
		if count != 0 {
			t.Errorf("hour %d: expected 0, got %d", hour, count)
		}
	}
	if len(dist.PeakHours) != 0 {
		t.Errorf("expected no peak hours, got %v", dist.PeakHours)
	}
	if len(dist.OptimalReminderTimes) != 0 {
		t.Errorf("expected no reminder times, got %v", dist.OptimalReminderTimes)
	}
}

func TestTimeOfDay_CountsCompletedWithTimestamps(t *testing.T) {
	base := day(2025, time.June, 1)
	records := []habit.CompletionRecord{
		timedRecord(base, 7),
		timedRecord(base.AddDate(0, 0, 1), 7),
		timedRecord(base.AddDate(0, 0, 2), 19),
		record(base.AddDate(0, 0, 3), true),  // completed, no timestamp
		record(base.AddDate(0, 0, 4), false), // not completed
	}
	// A missed record with a timestamp must not count.
	missed := timedRecord(base.AddDate(0, 0, 5), 7)
	notDone := false
	missed.IsCompleted = &notDone
	records = append(records, missed)

	dist := TimeOfDay(records)
	if dist.HourlyDistribution[7] != 2 {
		t.Errorf("hour 7: expected 2, got %d", dist.HourlyDistribution[7])
	}
	if dist.HourlyDistribution[19] != 1 {
		t.Errorf("hour 19: expected 1, got %d", dist.HourlyDistribution[19])
	}
}

func TestTimeOfDay_PeakRankingAndTies(t *testing.T) {
	base := day(2025, time.June, 1)
	var records []habit.CompletionRecord
	addAtHour := func(hour, n int) {
		for i := 0; i < n; i++ {
			records = append(records, timedRecord(base.AddDate(0, 0, len(records)), hour))
		}
	}
	addAtHour(21, 3)
	addAtHour(6, 5)
	addAtHour(9, 3)
	addAtHour(14, 1)

	dist := TimeOfDay(records)

	// Highest count first; the 9 vs 21 tie resolves to the earlier hour.
	want := []int{6, 9, 21}
	if !reflect.DeepEqual(dist.PeakHours, want) {
		t.Errorf("expected peaks %v, got %v", want, dist.PeakHours)
	}
}

func TestTimeOfDay_ReminderTimes(t *testing.T) {
	base := day(2025, time.June, 1)
	var records []habit.CompletionRecord
	for i := 0; i < 4; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, i), 0))
	}
	for i := 0; i < 2; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, 10+i), 8))
	}

	dist := TimeOfDay(records)

	// Midnight peak suggests a 23:00 reminder (wraps around).
	want := []int{23, 7}
	if !reflect.DeepEqual(dist.OptimalReminderTimes, want) {
		t.Errorf("expected reminders %v, got %v", want, dist.OptimalReminderTimes)
	}
}

func TestTimeOfDay_ReminderDeduplication(t *testing.T) {
	base := day(2025, time.June, 1)
	var records []habit.CompletionRecord
	// Peaks at 9 and 10: reminders 8 and 9, no overlap. Peaks at 9
	// with a single record at 10 and 10 records at 9 keep order stable.
	for i := 0; i < 5; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, i), 9))
		records = append(records, timedRecord(base.AddDate(0, 0, 10+i), 10))
	}

	dist := TimeOfDay(records)
	seen := make(map[int]bool)
	for _, r := range dist.OptimalReminderTimes {
		if seen[r] {
			t.Errorf("duplicate reminder time %d", r)
		}
		seen[r] = true
	}
}
