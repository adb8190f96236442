package analyzer

import (
	"fmt"
	"math"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// Detector gates and thresholds. Each comparison is strict: a signal
// exactly at its threshold does not produce an insight.
const (
	// minInsightRecords gates insight generation as a whole.
	minInsightRecords = 28

	// dayVarianceThreshold is the best-to-worst weekday rate spread
	// (percentage points) a day-of-week pattern must exceed.
	dayVarianceThreshold = 15.0

	// peakShareThreshold is the share of completions (percent) the peak
	// hours must exceed for a time-of-day pattern.
	peakShareThreshold = 30.0

	// weekendGapThreshold is the weekend-to-weekday rate gap
	// (percentage points) weekend behavior must exceed.
	weekendGapThreshold = 15.0

	// earlyShareThreshold is the before-noon share (percent) timed
	// completions must exceed for a timing-impact insight.
	earlyShareThreshold = 60.0

	// minTimedCompletions is the sample gate for the timing-impact
	// detector: completions that carry a resolvable timestamp.
	minTimedCompletions = 14

	// noonHour splits early from late completions.
	noonHour = 12
)

// GenerateInsights runs the pattern detectors over precomputed stats
// and raw records. Detectors run in a fixed order and each contributes
// at most one insight, so identical input always yields an identical
// list. Below minInsightRecords the result is empty, with no partial
// insights. Absence of a qualifying pattern is never an error.
func GenerateInsights(records []habit.CompletionRecord, days DayOfWeekStats, dist TimeDistribution) []Insight {
	insights := []Insight{}
	if len(records) < minInsightRecords {
		return insights
	}

	detectors := []func() *Insight{
		func() *Insight { return detectDayOfWeekPattern(len(records), days) },
		func() *Insight { return detectTimeOfDayPattern(len(records), dist) },
		func() *Insight { return detectWeekendBehavior(len(records), days) },
		func() *Insight { return detectTimingImpact(records) },
	}
	for _, detect := range detectors {
		if in := detect(); in != nil {
			insights = append(insights, *in)
		}
	}
	return insights
}

// detectDayOfWeekPattern fires when weekday completion rates spread
// wider than dayVarianceThreshold across at least two scheduled days.
func detectDayOfWeekPattern(recordCount int, days DayOfWeekStats) *Insight {
	scheduled := 0
	maxRate, minRate := -1.0, 101.0
	for _, day := range Weekdays {
		d := days.Days[day]
		if d.TotalScheduled == 0 {
			continue
		}
		scheduled++
		if d.CompletionRate > maxRate {
			maxRate = d.CompletionRate
		}
		if d.CompletionRate < minRate {
			minRate = d.CompletionRate
		}
	}
	if scheduled < 2 {
		return nil
	}

	variance := maxRate - minRate
	if variance <= dayVarianceThreshold {
		return nil
	}

	best, worst := days.BestDay, days.WorstDay
	return &Insight{
		ID:   insightID(InsightDayOfWeekPattern),
		Type: InsightDayOfWeekPattern,
		Message: fmt.Sprintf("You complete this habit most reliably on %s (%.0f%%) and least on %s (%.0f%%).",
			titleDay(best), days.Days[best].CompletionRate,
			titleDay(worst), days.Days[worst].CompletionRate),
		Confidence:  Confidence(recordCount, variance),
		DataSupport: recordCount,
		Actionable:  true,
		Recommendation: fmt.Sprintf("Plan something lighter or add a reminder on %s to close the gap.",
			titleDay(worst)),
	}
}

// detectTimeOfDayPattern fires when the peak hours hold more than
// peakShareThreshold percent of all timed completions.
func detectTimeOfDayPattern(recordCount int, dist TimeDistribution) *Insight {
	if len(dist.PeakHours) == 0 {
		return nil
	}

	total := 0
	for _, count := range dist.HourlyDistribution {
		total += count
	}
	if total == 0 {
		return nil
	}

	inPeaks := 0
	for _, hour := range dist.PeakHours {
		inPeaks += dist.HourlyDistribution[hour]
	}

	peakShare := float64(inPeaks) / float64(total) * 100
	if peakShare <= peakShareThreshold {
		return nil
	}

	primary := dist.PeakHours[0]
	reminder := (primary - 1 + 24) % 24
	return &Insight{
		ID:   insightID(InsightTimeOfDayPattern),
		Type: InsightTimeOfDayPattern,
		Message: fmt.Sprintf("%.0f%% of your completions happen around %s.",
			peakShare, formatHour(primary)),
		Confidence:  Confidence(recordCount, peakShare),
		DataSupport: recordCount,
		Actionable:  true,
		Recommendation: fmt.Sprintf("Set a reminder at %s, an hour before your usual time.",
			formatHour(reminder)),
	}
}

// detectWeekendBehavior fires when the average weekend rate differs
// from the average weekday rate by more than weekendGapThreshold
// percentage points. Days with no scheduled records are excluded from
// both averages; either side having none at all skips the detector.
func detectWeekendBehavior(recordCount int, days DayOfWeekStats) *Insight {
	weekdayAvg, ok := averageRate(days, Weekdays[:5])
	if !ok {
		return nil
	}
	weekendAvg, ok := averageRate(days, Weekdays[5:])
	if !ok {
		return nil
	}

	difference := math.Abs(weekendAvg - weekdayAvg)
	if difference <= weekendGapThreshold {
		return nil
	}

	message := fmt.Sprintf("Your weekend completion rate (%.0f%%) runs %.0f points below your weekday rate (%.0f%%).",
		weekendAvg, difference, weekdayAvg)
	recommendation := "Weekends break your routine — try anchoring the habit to a fixed weekend activity."
	if weekendAvg > weekdayAvg {
		message = fmt.Sprintf("Your weekend completion rate (%.0f%%) runs %.0f points above your weekday rate (%.0f%%).",
			weekendAvg, difference, weekdayAvg)
		recommendation = "Busy weekdays hold you back — try moving the habit earlier in the day."
	}

	return &Insight{
		ID:             insightID(InsightWeekendBehavior),
		Type:           InsightWeekendBehavior,
		Message:        message,
		Confidence:     Confidence(recordCount, difference),
		DataSupport:    recordCount,
		Actionable:     true,
		Recommendation: recommendation,
	}
}

// detectTimingImpact fires when more than earlyShareThreshold percent
// of timed completions land before noon. Sample size here is the timed
// completion count, not the full record count.
func detectTimingImpact(records []habit.CompletionRecord) *Insight {
	timed, early := 0, 0
	for _, r := range records {
		if !r.Completed() {
			continue
		}
		hour, ok := r.CompletionHour()
		if !ok {
			continue
		}
		timed++
		if hour < noonHour {
			early++
		}
	}
	if timed < minTimedCompletions {
		return nil
	}

	earlyShare := float64(early) / float64(timed) * 100
	if earlyShare <= earlyShareThreshold {
		return nil
	}

	return &Insight{
		ID:   insightID(InsightTimingImpact),
		Type: InsightTimingImpact,
		Message: fmt.Sprintf("You finish %.0f%% of your completions before noon — mornings work for you.",
			earlyShare),
		Confidence:     Confidence(timed, earlyShare),
		DataSupport:    timed,
		Actionable:     true,
		Recommendation: "Protect your morning slot; schedule new habits there too.",
	}
}

// averageRate means the completion rates of the named days that have
// scheduled records. ok is false when none qualify.
func averageRate(days DayOfWeekStats, names []string) (avg float64, ok bool) {
	sum, n := 0.0, 0
	for _, name := range names {
		d := days.Days[name]
		if d.TotalScheduled == 0 {
			continue
		}
		sum += d.CompletionRate
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// insightID derives a deterministic opaque ID so identical input
// produces bit-identical output.
func insightID(t InsightType) string {
	return "insight-" + string(t)
}

func titleDay(day string) string {
	if day == "" {
		return day
	}
	return string(day[0]-'a'+'A') + day[1:]
}

func formatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
