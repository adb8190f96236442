package analyzer

import (
	"sort"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// maxPeakHours caps how many peak hours a distribution reports.
const maxPeakHours = 3

// TimeOfDay buckets completed records by the local hour of their
// completion timestamp. Records without a resolvable timestamp are
// ignored. There is no sample gate here; callers that feed the result
// into insight generation apply their own threshold.
func TimeOfDay(records []habit.CompletionRecord) TimeDistribution {
	hourly := make(map[int]int, 24)
	for hour := 0; hour < 24; hour++ {
		hourly[hour] = 0
	}

	for _, r := range records {
		if !r.Completed() {
			continue
		}
		hour, ok := r.CompletionHour()
		if !ok {
			continue
		}
		hourly[hour]++
	}

	peaks := peakHours(hourly)

	return TimeDistribution{
		HourlyDistribution:   hourly,
		PeakHours:            peaks,
		OptimalReminderTimes: reminderTimes(peaks),
	}
}

// peakHours ranks the non-zero hours by descending count. Building the
// candidates in 0-23 order and sorting stably breaks count ties toward
// the earlier hour.
func peakHours(hourly map[int]int) []int {
	var candidates []int
	for hour := 0; hour < 24; hour++ {
		if hourly[hour] > 0 {
			candidates = append(candidates, hour)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return hourly[candidates[i]] > hourly[candidates[j]]
	})

	if len(candidates) > maxPeakHours {
		candidates = candidates[:maxPeakHours]
	}
	return candidates
}

// reminderTimes suggests the hour before each peak, dropping duplicates
// while preserving first-seen order.
func reminderTimes(peaks []int) []int {
	var times []int
	seen := make(map[int]bool, len(peaks))
	for _, hour := range peaks {
		reminder := (hour - 1 + 24) % 24
		if seen[reminder] {
			continue
		}
		seen[reminder] = true
		times = append(times, reminder)
	}
	return times
}
