package analyzer

import (
	"strings"
	"testing"
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// dayStatsFor builds DayOfWeekStats from weekday-name → completion
// rate, with every listed day scheduled 8 times. Best/worst follow the
// Monday-to-Sunday first-extreme rule.
func dayStatsFor(rates map[string]float64) DayOfWeekStats {
	stats := DayOfWeekStats{Days: make(map[string]DayStats, len(Weekdays))}
	for _, day := range Weekdays {
		rate, ok := rates[day]
		if !ok {
			stats.Days[day] = DayStats{}
			continue
		}
		stats.Days[day] = DayStats{
			CompletionRate:   rate,
			TotalCompletions: int(rate / 100 * 8),
			TotalScheduled:   8,
		}
	}
	stats.BestDay, stats.WorstDay = extremeDays(stats.Days)
	return stats
}

func flatRates(rate float64) map[string]float64 {
	rates := make(map[string]float64, len(Weekdays))
	for _, day := range Weekdays {
		rates[day] = rate
	}
	return rates
}

func plainRecords(n int) []habit.CompletionRecord {
	return dailyRecords(day(2025, time.April, 1), n, func(time.Time) bool { return true })
}

func TestGenerateInsights_GateBelowMinimum(t *testing.T) {
	// Strong pattern in the stats, but only 27 records: no insights.
	stats := dayStatsFor(map[string]float64{"monday": 100, "tuesday": 0})

	insights := GenerateInsights(plainRecords(27), stats, TimeOfDay(nil))
	if insights == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(insights) != 0 {
		t.Errorf("expected no insights below the record gate, got %d", len(insights))
	}
}

func TestGenerateInsights_DayOfWeekPattern(t *testing.T) {
	rates := flatRates(80)
	rates["monday"] = 95
	rates["thursday"] = 40
	stats := dayStatsFor(rates)

	insights := GenerateInsights(plainRecords(56), stats, TimeOfDay(nil))
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}

	in := insights[0]
	if in.Type != InsightDayOfWeekPattern {
		t.Errorf("expected day-of-week-pattern, got %q", in.Type)
	}
	// 56 samples with a 55-point spread: high confidence.
	if in.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", in.Confidence)
	}
	if in.DataSupport != 56 {
		t.Errorf("expected data support 56, got %d", in.DataSupport)
	}
	if !in.Actionable || in.Recommendation == "" {
		t.Error("expected an actionable insight with a recommendation")
	}
}

func TestGenerateInsights_DayOfWeekThresholdStrict(t *testing.T) {
	// A spread of exactly 15 points must not fire.
	rates := flatRates(50)
	rates["monday"] = 65
	stats := dayStatsFor(rates)

	insights := GenerateInsights(plainRecords(56), stats, TimeOfDay(nil))
	if len(insights) != 0 {
		t.Errorf("expected no insight at the 15-point boundary, got %d", len(insights))
	}

	// One hundredth past the boundary fires.
	rates["monday"] = 65.01
	stats = dayStatsFor(rates)
	insights = GenerateInsights(plainRecords(56), stats, TimeOfDay(nil))
	if len(insights) != 1 {
		t.Errorf("expected 1 insight past the boundary, got %d", len(insights))
	}
}

func TestGenerateInsights_DayOfWeekNeedsTwoScheduledDays(t *testing.T) {
	// Only Monday has scheduled records; variance is undefined.
	stats := dayStatsFor(map[string]float64{"monday": 100})

	insights := GenerateInsights(plainRecords(56), stats, TimeOfDay(nil))
	if len(insights) != 0 {
		t.Errorf("expected no insight with a single scheduled day, got %d", len(insights))
	}
}

func TestGenerateInsights_TimeOfDayPattern(t *testing.T) {
	base := day(2025, time.April, 1)
	var records []habit.CompletionRecord
	// 40 completions at 07:00 and 16 spread elsewhere: peak share well
	// past 30%.
	for i := 0; i < 40; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, i), 7))
	}
	for i := 0; i < 8; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, 40+i), 13))
		records = append(records, timedRecord(base.AddDate(0, 0, 50+i), 20))
	}

	dist := TimeOfDay(records)
	insights := GenerateInsights(records, dayStatsFor(nil), dist)
	if len(insights) == 0 {
		t.Fatal("expected a time-of-day insight")
	}

	in := insights[0]
	if in.Type != InsightTimeOfDayPattern {
		t.Fatalf("expected time-of-day-pattern, got %q", in.Type)
	}
	// Primary peak 07:00: reminder one hour before.
	if want := "06:00"; !strings.Contains(in.Recommendation, want) {
		t.Errorf("expected recommendation to mention %s, got %q", want, in.Recommendation)
	}
}

func TestGenerateInsights_WeekendBehavior(t *testing.T) {
	rates := flatRates(90)
	rates["saturday"] = 40
	rates["sunday"] = 40
	stats := dayStatsFor(rates)

	insights := GenerateInsights(plainRecords(56), stats, TimeOfDay(nil))

	var weekend *Insight
	for i := range insights {
		if insights[i].Type == InsightWeekendBehavior {
			weekend = &insights[i]
		}
	}
	if weekend == nil {
		t.Fatal("expected a weekend-behavior insight")
	}
	// 50-point gap on 56 records: high confidence.
	if weekend.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", weekend.Confidence)
	}
}

func TestGenerateInsights_WeekendThresholdStrict(t *testing.T) {
	rates := flatRates(60)
	rates["saturday"] = 45
	rates["sunday"] = 45
	stats := dayStatsFor(rates)

	// Exactly 15 points: no insight (day-of-week spread is also exactly 15).
	insights := GenerateInsights(plainRecords(56), stats, TimeOfDay(nil))
	for _, in := range insights {
		if in.Type == InsightWeekendBehavior {
			t.Error("expected no weekend insight at the 15-point boundary")
		}
	}
}

func TestGenerateInsights_TimingImpact(t *testing.T) {
	base := day(2025, time.April, 1)
	var records []habit.CompletionRecord
	// 20 timed completions, 16 before noon (80%).
	for i := 0; i < 16; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, i), 8))
	}
	for i := 0; i < 4; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, 16+i), 15))
	}
	// Pad with untimed records to pass the 28-record gate without
	// changing the timed sample.
	records = append(records, plainRecords(10)...)

	insights := GenerateInsights(records, dayStatsFor(nil), TimeDistribution{})

	var timing *Insight
	for i := range insights {
		if insights[i].Type == InsightTimingImpact {
			timing = &insights[i]
		}
	}
	if timing == nil {
		t.Fatal("expected a timing-impact insight")
	}
	// Sample size is the timed completions, not all records.
	if timing.DataSupport != 20 {
		t.Errorf("expected data support 20, got %d", timing.DataSupport)
	}
}

func TestGenerateInsights_TimingImpactGates(t *testing.T) {
	base := day(2025, time.April, 1)

	// 13 timed completions, all early: below the 14-record gate.
	var few []habit.CompletionRecord
	for i := 0; i < 13; i++ {
		few = append(few, timedRecord(base.AddDate(0, 0, i), 8))
	}
	few = append(few, plainRecords(20)...)
	if insights := GenerateInsights(few, dayStatsFor(nil), TimeDistribution{}); len(insights) != 0 {
		t.Errorf("expected no insight below the timed-completion gate, got %d", len(insights))
	}

	// Exactly 60%% early (12 of 20): boundary does not fire.
	var boundary []habit.CompletionRecord
	for i := 0; i < 12; i++ {
		boundary = append(boundary, timedRecord(base.AddDate(0, 0, i), 8))
	}
	for i := 0; i < 8; i++ {
		boundary = append(boundary, timedRecord(base.AddDate(0, 0, 12+i), 15))
	}
	boundary = append(boundary, plainRecords(10)...)
	if insights := GenerateInsights(boundary, dayStatsFor(nil), TimeDistribution{}); len(insights) != 0 {
		t.Errorf("expected no insight at the 60%% boundary, got %d", len(insights))
	}
}

func TestGenerateInsights_FixedOrder(t *testing.T) {
	// Trigger all four detectors at once.
	rates := flatRates(95)
	rates["saturday"] = 30
	rates["sunday"] = 30
	stats := dayStatsFor(rates)

	base := day(2025, time.April, 1)
	var records []habit.CompletionRecord
	for i := 0; i < 56; i++ {
		records = append(records, timedRecord(base.AddDate(0, 0, i), 7))
	}
	dist := TimeOfDay(records)

	insights := GenerateInsights(records, stats, dist)
	if len(insights) != 4 {
		t.Fatalf("expected 4 insights, got %d", len(insights))
	}

	wantOrder := []InsightType{
		InsightDayOfWeekPattern,
		InsightTimeOfDayPattern,
		InsightWeekendBehavior,
		InsightTimingImpact,
	}
	for i, want := range wantOrder {
		if insights[i].Type != want {
			t.Errorf("position %d: expected %q, got %q", i, want, insights[i].Type)
		}
	}
}

func TestGenerateInsights_Deterministic(t *testing.T) {
	rates := flatRates(95)
	rates["friday"] = 20
	stats := dayStatsFor(rates)
	records := plainRecords(56)

	first := GenerateInsights(records, stats, TimeOfDay(nil))
	second := GenerateInsights(records, stats, TimeOfDay(nil))
	if len(first) != len(second) {
		t.Fatalf("expected identical output lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("insight %d differs between identical calls", i)
		}
	}
}
